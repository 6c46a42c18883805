package inventory

import (
	"context"
	"errors"

	"FreshStock-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	InventoryRepository interface {
		GetStorageByOrganization(ctx context.Context, organization string) (*entities.Storage, error)
		CreateStorage(ctx context.Context, storage *entities.Storage) error
		AddItem(ctx context.Context, item *entities.Item) error
		ReplaceItems(ctx context.Context, storageID uuid.UUID, items []*entities.Item) error
		DeleteStorage(ctx context.Context, organization string) error
	}

	inventoryRepository struct {
		db *gorm.DB
	}
)

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) GetStorageByOrganization(ctx context.Context, organization string) (*entities.Storage, error) {
	var storage entities.Storage
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		Where("organization = ?", organization).
		First(&storage).Error
	if err != nil {
		return nil, err
	}
	return &storage, nil
}

func (r *inventoryRepository) CreateStorage(ctx context.Context, storage *entities.Storage) error {
	return r.db.WithContext(ctx).Create(storage).Error
}

func (r *inventoryRepository) AddItem(ctx context.Context, item *entities.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// ReplaceItems persists the mutated item list as-is. The delete and
// re-insert run in one transaction so a partial state is never visible,
// but there is no locking across the surrounding fetch and this write.
func (r *inventoryRepository) ReplaceItems(ctx context.Context, storageID uuid.UUID, items []*entities.Item) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("storage_id = ?", storageID).Delete(&entities.Item{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
}

func (r *inventoryRepository) DeleteStorage(ctx context.Context, organization string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var storage entities.Storage
		if err := tx.Where("organization = ?", organization).First(&storage).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil // deleting a missing storage is a no-op
			}
			return err
		}
		if err := tx.Where("storage_id = ?", storage.ID).Delete(&entities.Item{}).Error; err != nil {
			return err
		}
		return tx.Delete(&storage).Error
	})
}
