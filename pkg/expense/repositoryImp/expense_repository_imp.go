package repositoryImp

import (
	"gorm.io/gorm"

	"agrisync/entities"
	"agrisync/pkg/expense/repository"
)

type expenseRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ExpenseRepository { return &expenseRepo{db} }

func (r *expenseRepo) List() ([]entities.Expense, error) {
	out := []entities.Expense{}
	if err := r.db.Order("date_spent DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *expenseRepo) FindByID(id uint) (*entities.Expense, error) {
	var ex entities.Expense
	if err := r.db.First(&ex, id).Error; err != nil {
		return nil, err
	}
	return &ex, nil
}

func (r *expenseRepo) Create(ex *entities.Expense) error { return r.db.Create(ex).Error }

func (r *expenseRepo) Save(ex *entities.Expense) error { return r.db.Save(ex).Error }

func (r *expenseRepo) Patch(id uint, updates map[string]any) error {
	res := r.db.Model(&entities.Expense{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *expenseRepo) Delete(id uint) error {
	res := r.db.Delete(&entities.Expense{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
