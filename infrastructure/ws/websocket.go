// Package wschannel attaches the realtime broadcast channel to an HTTP
// endpoint. Frames are ephemeral: nothing received here is persisted, and
// delivery to other listeners is best-effort.
package wschannel

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"slingshot/domain"
	"slingshot/domain/event"
	"slingshot/realtime"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// inboundFrame is what clients send on the socket.
type inboundFrame struct {
	Type    string      `json:"type"`
	Content string      `json:"content"`
	Role    domain.Role `json:"role"`
}

type Channel struct {
	log      *slog.Logger
	hub      *realtime.Hub
	upgrader websocket.Upgrader
}

func New(log *slog.Logger, hub *realtime.Hub) *Channel {
	return &Channel{
		log: log,
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// Attach registers the /ws endpoint on the router. The channel carries no
// authentication; it only ever sees ephemeral chat frames.
func (ch *Channel) Attach(r *gin.Engine) {
	r.GET("/ws", ch.handle)
}

func (ch *Channel) handle(c *gin.Context) {
	conn, err := ch.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		ch.log.Error("websocket upgrade failed", "err", err)
		return
	}

	id, events := ch.hub.Register()
	done := make(chan struct{})
	ch.log.Info("websocket client connected", "listener_id", id)

	defer func() {
		close(done)
		ch.hub.Unregister(id)
		conn.Close()
		ch.log.Info("websocket client disconnected", "listener_id", id)
	}()

	// Single writer goroutine per connection; gorilla conns do not allow
	// concurrent writes.
	go func() {
		for {
			select {
			case evt := <-events:
				if err := conn.WriteJSON(evt); err != nil {
					ch.log.Debug("websocket write failed", "listener_id", id, "err", err)
					return
				}
			case <-done:
				return
			}
		}
	}()

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				ch.log.Error("websocket read error", "listener_id", id, "err", err)
			}
			return
		}

		var frame inboundFrame
		if err := json.Unmarshal(payload, &frame); err != nil {
			// Malformed frames are dropped; the channel must survive them.
			ch.log.Warn("invalid websocket message", "listener_id", id, "err", err)
			continue
		}

		if frame.Type == event.TypeChatMessage {
			ch.hub.Publish(event.NewChatMessage(frame.Content, frame.Role))
		}
	}
}
