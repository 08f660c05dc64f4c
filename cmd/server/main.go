package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"slingshot/auth"
	"slingshot/domain"
	httpserver "slingshot/infrastructure/http"
	wschannel "slingshot/infrastructure/ws"
	"slingshot/internal"
	"slingshot/realtime"
	"slingshot/repositories"
	"slingshot/repositories/gormstore"
	"slingshot/repositories/memstore"
	"slingshot/services"

	"github.com/Netflix/go-env"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the operating system or service
// manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

const demoUserID = "demo-user-123"

func main() {
	// main is a thin wrapper: call run() and translate its result into an
	// OS exit code, letting all defers execute on the way out.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Slingshot terminated with error: %v\n", err)
	}
	os.Exit(code)
}

func run() (int, error) {
	// 1. Configuration & logger. A .env file is optional.
	_ = godotenv.Load()

	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, err
	}

	logger := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Storage: relational via GORM, or the in-memory fallback. Both sit
	// behind the same repository contracts.
	var (
		users    repositories.IUserRepository
		projects repositories.IProjectRepository
		messages repositories.IMessageRepository
		agents   repositories.IAgentRepository
	)
	switch config.StorageDriver {
	case internal.DriverSQLite:
		store, err := gormstore.Open(config.SQLitePath)
		if err != nil {
			return exitRuntime, fmt.Errorf("database opening failed: %w", err)
		}
		users, projects, messages, agents = store.Users(), store.Projects(), store.Messages(), store.Agents()
	case internal.DriverMemory:
		store := memstore.New()
		users, projects, messages, agents = store.Users(), store.Projects(), store.Messages(), store.Agents()
	}
	logger.Info("Storage ready", "driver", config.StorageDriver)

	// 3. Services and the realtime hub.
	tokens := auth.NewTokenManager(config.JWTSecret, config.AuthTokenDuration)
	hub := realtime.NewHub(logger, config.BroadcastBuffer)

	if config.SeedDemoUser {
		if err := seedDemoUser(ctx, users, logger); err != nil {
			return exitRuntime, fmt.Errorf("demo user seeding failed: %w", err)
		}
	}

	server := httpserver.NewServer(
		logger,
		services.NewChatService(messages),
		services.NewProjectService(projects),
		services.NewAgentService(agents),
		services.NewAuthService(users, tokens),
		services.NewAssistService(config.AssistDelay),
		hub,
		tokens,
	)

	gin.SetMode(gin.ReleaseMode)
	engine := server.Engine()
	wschannel.New(logger, hub).Attach(engine)

	// 4. HTTP server lifecycle with graceful shutdown.
	addr := fmt.Sprintf("%s:%d", config.Host, config.Port)
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	logger.Info("Slingshot server listening", "addr", addr)

	select {
	case <-ctx.Done():
		logger.Info("Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return exitRuntime, err
		}
		return exitOK, nil
	case err := <-errCh:
		return exitRuntime, err
	}
}

// seedDemoUser provisions the development account so a fresh instance can be
// exercised without registering first.
func seedDemoUser(ctx context.Context, users repositories.IUserRepository, logger *slog.Logger) error {
	hash, err := auth.HashPassword("DemoPassw0rd!")
	if err != nil {
		return err
	}
	user, err := users.Upsert(ctx, domain.User{
		ID:              demoUserID,
		Email:           "demo@slingshot.local",
		FirstName:       "Demo",
		LastName:        "User",
		ProfileImageURL: "https://via.placeholder.com/150",
		PasswordHash:    hash,
		Roles:           []string{"user"},
	})
	if err != nil {
		return err
	}
	logger.Info("Demo user ready", "email", user.Email)
	return nil
}
