package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/modelshift-ai/modelshift-gateway/pkg/domain"
	"github.com/modelshift-ai/modelshift-gateway/pkg/domain/execution"
)

const defaultListLimit = 50

type ExecutionRepository struct {
	db *gorm.DB
}

func NewExecutionRepository(db *gorm.DB) execution.Repository {
	return &ExecutionRepository{
		db: db,
	}
}

func (r *ExecutionRepository) Create(ctx context.Context, record *execution.Execution) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to create execution: %w", err)
	}
	return nil
}

func (r *ExecutionRepository) Get(ctx context.Context, userID, id uuid.UUID) (*execution.Execution, error) {
	entity := new(execution.Execution)
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("execution", id)
		}
		return nil, err
	}
	return entity, nil
}

func (r *ExecutionRepository) List(
	ctx context.Context,
	userID uuid.UUID,
	filter execution.ListFilter,
) ([]execution.Execution, int64, error) {
	query := r.db.WithContext(ctx).Model(&execution.Execution{}).Where("user_id = ?", userID)
	if filter.Provider != "" {
		query = query.Where("provider = ?", filter.Provider)
	}
	if filter.Success != nil {
		query = query.Where("success = ?", *filter.Success)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count executions: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	var records []execution.Execution
	err := query.
		Order("created_at desc").
		Offset(filter.Offset).
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list executions: %w", err)
	}
	return records, total, nil
}

func (r *ExecutionRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&execution.Execution{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete execution: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("execution", id)
	}
	return nil
}

func (r *ExecutionRepository) DeleteAllByUser(ctx context.Context, userID uuid.UUID) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&execution.Execution{}).Error
	if err != nil {
		return fmt.Errorf("failed to clear executions: %w", err)
	}
	return nil
}
