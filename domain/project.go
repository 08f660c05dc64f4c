package domain

import "time"

// Project statuses as used by the dashboard.
const (
	ProjectActive    = "active"
	ProjectCompleted = "completed"
	ProjectPaused    = "paused"
)

type Project struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Progress    int       `json:"progress"`
	OwnerID     string    `json:"ownerId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProjectPatch carries a partial update; nil fields are left untouched.
type ProjectPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Progress    *int    `json:"progress"`
}
