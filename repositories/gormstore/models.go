package gormstore

import (
	"strings"
	"time"

	"slingshot/domain"
)

// UserRecord backs the users table. Roles are stored comma-separated; the
// set is tiny and never queried individually.
type UserRecord struct {
	ID              string `gorm:"primaryKey;size:64"`
	Email           string `gorm:"uniqueIndex;size:255"`
	FirstName       string `gorm:"size:100"`
	LastName        string `gorm:"size:100"`
	ProfileImageURL string `gorm:"size:512"`
	PasswordHash    string `gorm:"size:255"`
	Roles           string `gorm:"size:255"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type ProjectRecord struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"size:200;not null"`
	Description string `gorm:"type:text"`
	Status      string `gorm:"size:32;not null;default:active"`
	Progress    int    `gorm:"default:0"`
	OwnerID     string `gorm:"index;size:64;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type MessageRecord struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Content   string `gorm:"type:text;not null"`
	Role      string `gorm:"size:32;not null"`
	UserID    string `gorm:"index;size:64;not null"`
	ProjectID *int64 `gorm:"index"`
	CreatedAt time.Time
}

type AgentRecord struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"size:200;not null"`
	Type        string `gorm:"size:64;not null"`
	Status      string `gorm:"size:32;not null;default:idle"`
	Description string `gorm:"type:text"`
	ProjectID   *int64 `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (UserRecord) TableName() string    { return "users" }
func (ProjectRecord) TableName() string { return "projects" }
func (MessageRecord) TableName() string { return "messages" }
func (AgentRecord) TableName() string   { return "ai_agents" }

func toUser(r UserRecord) domain.User {
	var roles []string
	if r.Roles != "" {
		roles = strings.Split(r.Roles, ",")
	}
	return domain.User{
		ID:              r.ID,
		Email:           r.Email,
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		ProfileImageURL: r.ProfileImageURL,
		PasswordHash:    r.PasswordHash,
		Roles:           roles,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func fromUser(u domain.User) UserRecord {
	return UserRecord{
		ID:              u.ID,
		Email:           u.Email,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		ProfileImageURL: u.ProfileImageURL,
		PasswordHash:    u.PasswordHash,
		Roles:           strings.Join(u.Roles, ","),
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

func toProject(r ProjectRecord) domain.Project {
	return domain.Project{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Status:      r.Status,
		Progress:    r.Progress,
		OwnerID:     r.OwnerID,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func toMessage(r MessageRecord) domain.Message {
	return domain.Message{
		ID:        r.ID,
		Content:   r.Content,
		Role:      domain.Role(r.Role),
		UserID:    r.UserID,
		ProjectID: r.ProjectID,
		CreatedAt: r.CreatedAt,
	}
}

func toAgent(r AgentRecord) domain.Agent {
	return domain.Agent{
		ID:          r.ID,
		Name:        r.Name,
		Type:        r.Type,
		Status:      r.Status,
		Description: r.Description,
		ProjectID:   r.ProjectID,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
