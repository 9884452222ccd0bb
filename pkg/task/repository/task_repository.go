package repository

import "agrisync/entities"

type TaskRepository interface {
	List() ([]entities.Task, error)
	FindByID(id uint) (*entities.Task, error)
	Create(t *entities.Task) error
	Save(t *entities.Task) error
	Patch(id uint, updates map[string]any) error
	Delete(id uint) error
}
