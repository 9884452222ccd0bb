package repositoryImp

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"agrisync/entities"
	"agrisync/pkg/crop/repository"
)

type cropRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CropRepository { return &cropRepo{db} }

// reads embed the owning field and the inputs list
func (r *cropRepo) scope() *gorm.DB {
	return r.db.Preload("Field").Preload("Inputs")
}

func (r *cropRepo) List() ([]entities.Crop, error) {
	out := []entities.Crop{}
	if err := r.scope().Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	for i := range out {
		if out[i].Inputs == nil {
			out[i].Inputs = []entities.InputUsed{}
		}
	}
	return out, nil
}

func (r *cropRepo) FindByID(id uint) (*entities.Crop, error) {
	var cr entities.Crop
	if err := r.scope().First(&cr, id).Error; err != nil {
		return nil, err
	}
	// a crop with no inputs still renders "inputs": []
	if cr.Inputs == nil {
		cr.Inputs = []entities.InputUsed{}
	}
	return &cr, nil
}

// writes only touch the crops row itself, never the field or input rows
// hanging off it
func (r *cropRepo) Create(cr *entities.Crop) error {
	return r.db.Omit(clause.Associations).Create(cr).Error
}

func (r *cropRepo) Save(cr *entities.Crop) error {
	return r.db.Omit(clause.Associations).Save(cr).Error
}

func (r *cropRepo) Patch(id uint, updates map[string]any) error {
	res := r.db.Model(&entities.Crop{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *cropRepo) Delete(id uint) error {
	res := r.db.Delete(&entities.Crop{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
