package gormstore

import (
	"context"
	stderrors "errors"
	"time"

	"slingshot/domain"
	"slingshot/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	db *gorm.DB
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	var existing UserRecord
	err := r.db.WithContext(ctx).Where("email = ?", user.Email).First(&existing).Error
	if err == nil {
		return domain.User{}, errors.ErrUserAlreadyExists
	}
	if !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return domain.User{}, err
	}

	record := fromUser(user)
	now := time.Now().UTC()
	record.CreatedAt = now
	record.UpdatedAt = now
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return domain.User{}, err
	}
	return toUser(record), nil
}

// Upsert inserts the profile or refreshes it in place when the id exists.
func (r *UserRepository) Upsert(ctx context.Context, user domain.User) (domain.User, error) {
	record := fromUser(user)
	record.UpdatedAt = time.Now().UTC()
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"email", "first_name", "last_name", "profile_image_url", "updated_at",
		}),
	}).Create(&record).Error
	if err != nil {
		return domain.User{}, err
	}
	return r.Get(ctx, user.ID)
}

func (r *UserRepository) Get(ctx context.Context, id string) (domain.User, error) {
	var record UserRecord
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return domain.User{}, errors.ErrNotFound
	}
	if err != nil {
		return domain.User{}, err
	}
	return toUser(record), nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	var record UserRecord
	err := r.db.WithContext(ctx).First(&record, "email = ?", email).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return domain.User{}, errors.ErrNotFound
	}
	if err != nil {
		return domain.User{}, err
	}
	return toUser(record), nil
}
