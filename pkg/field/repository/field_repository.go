package repository

import "agrisync/entities"

type FieldRepository interface {
	List() ([]entities.Field, error)
	FindByID(id uint) (*entities.Field, error)
	Create(f *entities.Field) error
	Save(f *entities.Field) error
	Patch(id uint, updates map[string]any) error
	Delete(id uint) error
}
