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

type AgentRepository struct {
	db *gorm.DB
}

func (r *AgentRepository) List(ctx context.Context, projectID *int64) ([]domain.Agent, error) {
	q := r.db.WithContext(ctx).Model(&AgentRecord{})
	if projectID != nil {
		q = q.Where("project_id = ?", *projectID)
	} else {
		q = q.Order("updated_at DESC")
	}
	var records []AgentRecord
	if err := q.Find(&records).Error; err != nil {
		return nil, err
	}
	return lo.Map(records, func(rec AgentRecord, _ int) domain.Agent { return toAgent(rec) }), nil
}

func (r *AgentRepository) Create(ctx context.Context, agent domain.Agent) (domain.Agent, error) {
	if agent.Status == "" {
		agent.Status = domain.AgentIdle
	}
	now := time.Now().UTC()
	record := AgentRecord{
		Name:        agent.Name,
		Type:        agent.Type,
		Status:      agent.Status,
		Description: agent.Description,
		ProjectID:   agent.ProjectID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return domain.Agent{}, err
	}
	return toAgent(record), nil
}

func (r *AgentRepository) Update(ctx context.Context, id int64, patch domain.AgentPatch) (domain.Agent, error) {
	var record AgentRecord
	err := r.db.WithContext(ctx).First(&record, id).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Agent{}, errors.ErrNotFound
	}
	if err != nil {
		return domain.Agent{}, err
	}

	if patch.Name != nil {
		record.Name = *patch.Name
	}
	if patch.Type != nil {
		record.Type = *patch.Type
	}
	if patch.Status != nil {
		record.Status = *patch.Status
	}
	if patch.Description != nil {
		record.Description = *patch.Description
	}
	if patch.ProjectID != nil {
		record.ProjectID = patch.ProjectID
	}
	record.UpdatedAt = time.Now().UTC()

	if err := r.db.WithContext(ctx).Save(&record).Error; err != nil {
		return domain.Agent{}, err
	}
	return toAgent(record), nil
}

func (r *AgentRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&AgentRecord{}, id).Error
}
