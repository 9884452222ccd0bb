package repository

import "agrisync/entities"

type InventoryRepository interface {
	List() ([]entities.InventoryItem, error)
	FindByID(id uint) (*entities.InventoryItem, error)
	Create(it *entities.InventoryItem) error
	Save(it *entities.InventoryItem) error
	Patch(id uint, updates map[string]any) error
	Delete(id uint) error
}
