package repositoryImp

import (
	"gorm.io/gorm"

	"agrisync/entities"
	"agrisync/pkg/income/repository"
)

type incomeRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.IncomeRepository { return &incomeRepo{db} }

func (r *incomeRepo) List() ([]entities.Income, error) {
	out := []entities.Income{}
	// newest first, like the upstream listing
	if err := r.db.Order("date_received DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *incomeRepo) FindByID(id uint) (*entities.Income, error) {
	var in entities.Income
	if err := r.db.First(&in, id).Error; err != nil {
		return nil, err
	}
	return &in, nil
}

func (r *incomeRepo) Create(in *entities.Income) error { return r.db.Create(in).Error }

func (r *incomeRepo) Save(in *entities.Income) error { return r.db.Save(in).Error }

func (r *incomeRepo) Patch(id uint, updates map[string]any) error {
	res := r.db.Model(&entities.Income{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *incomeRepo) Delete(id uint) error {
	res := r.db.Delete(&entities.Income{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
