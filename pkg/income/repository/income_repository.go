package repository

import "agrisync/entities"

type IncomeRepository interface {
	List() ([]entities.Income, error)
	FindByID(id uint) (*entities.Income, error)
	Create(in *entities.Income) error
	Save(in *entities.Income) error
	Patch(id uint, updates map[string]any) error
	Delete(id uint) error
}
