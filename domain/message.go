// Package domain contains the core entities of the Slingshot service.
// This file defines chat messages and their validation rules.
// Messages are immutable once stored.
package domain

import (
	"slingshot/errors"
	"strings"
	"time"
)

// Role tags a message with its author kind.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAssistant, RoleSystem:
		return true
	}
	return false
}

// Message is a durable chat turn. The ID is assigned by the store and
// CreatedAt is server-assigned, set once.
type Message struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	Role      Role      `json:"role"`
	UserID    string    `json:"userId"`
	ProjectID *int64    `json:"projectId"`
	CreatedAt time.Time `json:"createdAt"`
}

// ValidateMessage enforces the store-level rules: non-empty content and an
// enumerated role. Both storage variants call this before inserting.
func ValidateMessage(content string, role Role) error {
	if strings.TrimSpace(content) == "" {
		return errors.ErrEmptyContent
	}
	if !role.Valid() {
		return errors.ErrInvalidRole
	}
	return nil
}
