package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"slingshot/client"
	"slingshot/domain"
	"slingshot/domain/event"

	"github.com/gookit/color"
	"github.com/gorilla/websocket"
	"github.com/kelseyhightower/envconfig"
	"github.com/olekukonko/tablewriter"
)

// slingctl is a terminal chat viewer. It merges three sources into one table:
// the local badger snapshot from previous runs, the gateway's message list,
// and the broadcast events collected while watching.
type Config struct {
	ServerURL string `envconfig:"SLINGSHOT_URL" default:"http://localhost:8080"`
	Email     string `envconfig:"SLINGSHOT_EMAIL"`
	Password  string `envconfig:"SLINGSHOT_PASSWORD"`
	// SLINGSHOT_PROJECT_ID scopes the view to one project; 0 means all.
	ProjectID int64 `envconfig:"SLINGSHOT_PROJECT_ID" default:"0"`
	CachePath string `envconfig:"SLINGSHOT_CACHE_PATH" default:".slingctl-cache"`
	// SLINGSHOT_WATCH is how long to listen on the broadcast channel before
	// rendering. Zero skips the websocket entirely.
	Watch time.Duration `envconfig:"SLINGSHOT_WATCH" default:"5s"`
	// SLINGSHOT_COLOURS enables colorized output for better readability
	Colours bool `envconfig:"SLINGSHOT_COLOURS" default:"true"`
}

func main() {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatal("Config error: ", err)
	}
	if cfg.Email == "" || cfg.Password == "" {
		log.Fatal("SLINGSHOT_EMAIL and SLINGSHOT_PASSWORD are required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := view(ctx, cfg); err != nil {
		log.Fatal(err)
	}
}

func view(ctx context.Context, cfg Config) error {
	// 1. Local snapshot from previous runs. A missing or fresh cache just
	// yields an empty slice.
	cache, err := client.OpenCache(cfg.CachePath)
	if err != nil {
		return fmt.Errorf("cache opening failed: %w", err)
	}
	defer cache.Close()

	snapshot, err := cache.Snapshot()
	if err != nil {
		return fmt.Errorf("cache reading failed: %w", err)
	}

	// 2. Authenticate and fetch the durable history.
	api := client.NewAPI(cfg.ServerURL)
	if err := api.Login(ctx, cfg.Email, cfg.Password); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	var projectID *int64
	if cfg.ProjectID != 0 {
		projectID = &cfg.ProjectID
	}
	fetched, err := api.Messages(ctx, projectID)
	if err != nil {
		return fmt.Errorf("message fetch failed: %w", err)
	}

	// 3. Listen on the broadcast channel for the watch window.
	var events []event.ChatEvent
	if cfg.Watch > 0 {
		events, err = collectEvents(ctx, cfg.ServerURL, cfg.Watch)
		if err != nil {
			return fmt.Errorf("broadcast listening failed: %w", err)
		}
	}

	entries := client.Reconcile(snapshot, fetched, events)
	render(entries, cfg.Colours)

	// 4. Persist the fetched history so the next run starts warm.
	return cache.Put(fetched...)
}

// collectEvents dials the websocket endpoint and gathers every well-formed
// chat event until the watch window elapses or the context is cancelled.
func collectEvents(ctx context.Context, serverURL string, watch time.Duration) ([]event.ChatEvent, error) {
	wsURL, err := toWebsocketURL(serverURL)
	if err != nil {
		return nil, err
	}

	dialCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	conn, _, err := websocket.DefaultDialer.DialContext(dialCtx, wsURL, nil)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	deadline := time.Now().Add(watch)
	if err := conn.SetReadDeadline(deadline); err != nil {
		return nil, err
	}
	go func() {
		<-ctx.Done()
		_ = conn.SetReadDeadline(time.Now())
	}()

	var events []event.ChatEvent
	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			// The deadline firing is the normal way out of the loop.
			return events, nil
		}
		var e event.ChatEvent
		if err := json.Unmarshal(payload, &e); err != nil || e.Type != event.TypeChatMessage {
			continue
		}
		events = append(events, e)
	}
}

func toWebsocketURL(serverURL string) (string, error) {
	u, err := url.Parse(serverURL)
	if err != nil {
		return "", err
	}
	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	default:
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	u.Path = "/ws"
	return u.String(), nil
}

func render(entries []client.Entry, colours bool) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Time", "Role", "Content"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, e := range entries {
		table.Append([]string{
			e.At.Local().Format("15:04:05"),
			renderRole(e.Role, colours),
			strings.TrimSpace(e.Content),
		})
	}
	table.Render()
}

func renderRole(role domain.Role, colours bool) string {
	if !colours {
		return string(role)
	}
	switch role {
	case domain.RoleUser:
		return color.New(color.FgCyan).Render(string(role))
	case domain.RoleAssistant:
		return color.New(color.FgGreen).Render(string(role))
	default:
		return color.New(color.FgYellow).Render(string(role))
	}
}
