package repository

import "agrisync/entities"

type CropRepository interface {
	List() ([]entities.Crop, error)
	FindByID(id uint) (*entities.Crop, error)
	Create(cr *entities.Crop) error
	Save(cr *entities.Crop) error
	Patch(id uint, updates map[string]any) error
	Delete(id uint) error
}
