package repository

import "agrisync/entities"

type ExpenseRepository interface {
	List() ([]entities.Expense, error)
	FindByID(id uint) (*entities.Expense, error)
	Create(ex *entities.Expense) error
	Save(ex *entities.Expense) error
	Patch(id uint, updates map[string]any) error
	Delete(id uint) error
}
