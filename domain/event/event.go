// Package event defines the ephemeral frames carried by the realtime channel.
// A ChatEvent may describe the same chat turn as a stored Message but shares
// no identity with it. It can be duplicated, dropped or reordered relative to
// the durable record; it only exists to trigger a client re-fetch.
package event

import (
	"slingshot/domain"
	"time"
)

const TypeChatMessage = "chat_message"

type ChatEvent struct {
	Type      string      `json:"type"`
	Content   string      `json:"content"`
	Role      domain.Role `json:"role"`
	Timestamp time.Time   `json:"timestamp"`
}

// NewChatMessage stamps the event with the channel's own clock. This
// timestamp is deliberately distinct from the store's CreatedAt.
func NewChatMessage(content string, role domain.Role) ChatEvent {
	return ChatEvent{
		Type:      TypeChatMessage,
		Content:   content,
		Role:      role,
		Timestamp: time.Now().UTC(),
	}
}
