package repositoryImp

import (
	"gorm.io/gorm"

	"agrisync/entities"
	"agrisync/pkg/inventory/repository"
)

type inventoryRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.InventoryRepository { return &inventoryRepo{db} }

func (r *inventoryRepo) List() ([]entities.InventoryItem, error) {
	out := []entities.InventoryItem{}
	// alphabetical, the upstream default ordering
	if err := r.db.Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *inventoryRepo) FindByID(id uint) (*entities.InventoryItem, error) {
	var it entities.InventoryItem
	if err := r.db.First(&it, id).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *inventoryRepo) Create(it *entities.InventoryItem) error { return r.db.Create(it).Error }

func (r *inventoryRepo) Save(it *entities.InventoryItem) error { return r.db.Save(it).Error }

func (r *inventoryRepo) Patch(id uint, updates map[string]any) error {
	// Updates also stamps last_updated via the autoUpdateTime column
	res := r.db.Model(&entities.InventoryItem{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *inventoryRepo) Delete(id uint) error {
	res := r.db.Delete(&entities.InventoryItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
