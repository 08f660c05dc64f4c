package gormstore

import (
	"context"
	stderrors "errors"
	"time"

	"slingshot/domain"
	"slingshot/errors"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

type ProjectRepository struct {
	db *gorm.DB
}

func (r *ProjectRepository) List(ctx context.Context, ownerID string) ([]domain.Project, error) {
	var records []ProjectRecord
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("updated_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return lo.Map(records, func(rec ProjectRecord, _ int) domain.Project { return toProject(rec) }), nil
}

func (r *ProjectRepository) Get(ctx context.Context, id int64) (domain.Project, error) {
	var record ProjectRecord
	err := r.db.WithContext(ctx).First(&record, id).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Project{}, errors.ErrNotFound
	}
	if err != nil {
		return domain.Project{}, err
	}
	return toProject(record), nil
}

func (r *ProjectRepository) Create(ctx context.Context, project domain.Project) (domain.Project, error) {
	if project.Status == "" {
		project.Status = domain.ProjectActive
	}
	now := time.Now().UTC()
	record := ProjectRecord{
		Name:        project.Name,
		Description: project.Description,
		Status:      project.Status,
		Progress:    project.Progress,
		OwnerID:     project.OwnerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return domain.Project{}, err
	}
	return toProject(record), nil
}

func (r *ProjectRepository) Update(ctx context.Context, id int64, patch domain.ProjectPatch) (domain.Project, error) {
	var record ProjectRecord
	err := r.db.WithContext(ctx).First(&record, id).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Project{}, errors.ErrNotFound
	}
	if err != nil {
		return domain.Project{}, err
	}

	if patch.Name != nil {
		record.Name = *patch.Name
	}
	if patch.Description != nil {
		record.Description = *patch.Description
	}
	if patch.Status != nil {
		record.Status = *patch.Status
	}
	if patch.Progress != nil {
		record.Progress = *patch.Progress
	}
	record.UpdatedAt = time.Now().UTC()

	if err := r.db.WithContext(ctx).Save(&record).Error; err != nil {
		return domain.Project{}, err
	}
	return toProject(record), nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&ProjectRecord{}, id).Error
}
