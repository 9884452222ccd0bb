package repository

import "agrisync/entities"

type InputRepository interface {
	List() ([]entities.InputUsed, error)
	FindByID(id uint) (*entities.InputUsed, error)
	Create(in *entities.InputUsed) error
	Save(in *entities.InputUsed) error
	Patch(id uint, updates map[string]any) error
	Delete(id uint) error
}
