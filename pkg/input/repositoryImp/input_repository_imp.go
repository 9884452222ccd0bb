package repositoryImp

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"agrisync/entities"
	"agrisync/pkg/input/repository"
)

type inputRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.InputRepository { return &inputRepo{db} }

func (r *inputRepo) List() ([]entities.InputUsed, error) {
	out := []entities.InputUsed{}
	if err := r.db.Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *inputRepo) FindByID(id uint) (*entities.InputUsed, error) {
	var in entities.InputUsed
	if err := r.db.First(&in, id).Error; err != nil {
		return nil, err
	}
	return &in, nil
}

func (r *inputRepo) Create(in *entities.InputUsed) error {
	return r.db.Omit(clause.Associations).Create(in).Error
}

func (r *inputRepo) Save(in *entities.InputUsed) error {
	return r.db.Omit(clause.Associations).Save(in).Error
}

func (r *inputRepo) Patch(id uint, updates map[string]any) error {
	res := r.db.Model(&entities.InputUsed{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *inputRepo) Delete(id uint) error {
	res := r.db.Delete(&entities.InputUsed{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
