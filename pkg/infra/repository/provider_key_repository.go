package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/modelshift-ai/modelshift-gateway/pkg/domain"
	"github.com/modelshift-ai/modelshift-gateway/pkg/domain/providerkey"
)

type ProviderKeyRepository struct {
	db *gorm.DB
}

func NewProviderKeyRepository(db *gorm.DB) providerkey.Repository {
	return &ProviderKeyRepository{
		db: db,
	}
}

func (r *ProviderKeyRepository) Create(ctx context.Context, key *providerkey.ProviderKey) error {
	if err := r.db.WithContext(ctx).Create(key).Error; err != nil {
		return fmt.Errorf("failed to create provider key: %w", err)
	}
	return nil
}

func (r *ProviderKeyRepository) Get(ctx context.Context, id uuid.UUID) (*providerkey.ProviderKey, error) {
	entity := new(providerkey.ProviderKey)
	if err := r.db.WithContext(ctx).First(entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("provider key", id)
		}
		return nil, err
	}
	return entity, nil
}

func (r *ProviderKeyRepository) GetActiveByUserAndProvider(
	ctx context.Context,
	userID uuid.UUID,
	provider string,
) (*providerkey.ProviderKey, error) {
	entity := new(providerkey.ProviderKey)
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND provider = ? AND active = ?", userID, provider, true).
		Order("updated_at desc").
		First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNoActiveProviderKey
		}
		return nil, err
	}
	return entity, nil
}

func (r *ProviderKeyRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]providerkey.ProviderKey, error) {
	var keys []providerkey.ProviderKey
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&keys).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list provider keys: %w", err)
	}
	return keys, nil
}

func (r *ProviderKeyRepository) Update(ctx context.Context, key *providerkey.ProviderKey) error {
	result := r.db.WithContext(ctx).Model(&providerkey.ProviderKey{}).
		Where("id = ?", key.ID).
		Updates(map[string]interface{}{
			"encrypted_key": key.EncryptedKey,
			"active":        key.Active,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update provider key: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("provider key", key.ID)
	}
	return nil
}

func (r *ProviderKeyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&providerkey.ProviderKey{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete provider key: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("provider key", id)
	}
	return nil
}
