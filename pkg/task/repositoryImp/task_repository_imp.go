package repositoryImp

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"agrisync/entities"
	"agrisync/pkg/task/repository"
)

type taskRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.TaskRepository { return &taskRepo{db} }

func (r *taskRepo) List() ([]entities.Task, error) {
	out := []entities.Task{}
	if err := r.db.Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *taskRepo) FindByID(id uint) (*entities.Task, error) {
	var t entities.Task
	if err := r.db.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *taskRepo) Create(t *entities.Task) error {
	return r.db.Omit(clause.Associations).Create(t).Error
}

func (r *taskRepo) Save(t *entities.Task) error {
	return r.db.Omit(clause.Associations).Save(t).Error
}

func (r *taskRepo) Patch(id uint, updates map[string]any) error {
	res := r.db.Model(&entities.Task{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *taskRepo) Delete(id uint) error {
	res := r.db.Delete(&entities.Task{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
