package gormstore

import (
	"context"
	"time"

	"slingshot/domain"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

type MessageRepository struct {
	db *gorm.DB
}

// Append validates and inserts a message. Identity comes from the
// autoincrement column, the timestamp from the server clock. On validation
// failure nothing is written.
func (r *MessageRepository) Append(ctx context.Context, content string, role domain.Role, userID string, projectID *int64) (domain.Message, error) {
	if err := domain.ValidateMessage(content, role); err != nil {
		return domain.Message{}, err
	}
	record := MessageRecord{
		Content:   content,
		Role:      string(role),
		UserID:    userID,
		ProjectID: projectID,
		CreatedAt: time.Now().UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return domain.Message{}, err
	}
	return toMessage(record), nil
}

// List returns the owner's messages ordered by creation time ascending,
// ties broken by id so repeated calls are order-stable.
func (r *MessageRepository) List(ctx context.Context, userID string, projectID *int64) ([]domain.Message, error) {
	q := r.db.WithContext(ctx).Model(&MessageRecord{}).Where("user_id = ?", userID)
	if projectID != nil {
		q = q.Where("project_id = ?", *projectID)
	}
	var records []MessageRecord
	if err := q.Order("created_at ASC, id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return lo.Map(records, func(rec MessageRecord, _ int) domain.Message { return toMessage(rec) }), nil
}

// Remove deletes by id. Unknown ids are a silent success.
func (r *MessageRepository) Remove(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&MessageRecord{}, id).Error
}
