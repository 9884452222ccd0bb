package repositoryImp

import (
	"gorm.io/gorm"

	"agrisync/entities"
	"agrisync/pkg/field/repository"
)

type fieldRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FieldRepository { return &fieldRepo{db} }

func (r *fieldRepo) List() ([]entities.Field, error) {
	out := []entities.Field{}
	if err := r.db.Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *fieldRepo) FindByID(id uint) (*entities.Field, error) {
	var f entities.Field
	if err := r.db.First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *fieldRepo) Create(f *entities.Field) error { return r.db.Create(f).Error }

func (r *fieldRepo) Save(f *entities.Field) error { return r.db.Save(f).Error }

func (r *fieldRepo) Patch(id uint, updates map[string]any) error {
	res := r.db.Model(&entities.Field{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *fieldRepo) Delete(id uint) error {
	res := r.db.Delete(&entities.Field{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
