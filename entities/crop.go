package entities

type CropStatus string

const (
	CropPlanted   CropStatus = "planted"
	CropGrowing   CropStatus = "growing"
	CropHarvested CropStatus = "harvested"
)

func (s CropStatus) Valid() bool {
	switch s {
	case CropPlanted, CropGrowing, CropHarvested:
		return true
	}
	return false
}

// Crop belongs to a Field and owns its InputUsed rows. Reads embed the full
// field record and the inputs list; deleting the field cascades here.
type Crop struct {
	ID                  uint        `gorm:"primaryKey" json:"id"`
	Name                string      `gorm:"size:100" json:"name"`
	FieldID             uint        `gorm:"index" json:"field_id"`
	Field               Field       `gorm:"constraint:OnDelete:CASCADE" json:"field"`
	PlantingDate        Date        `json:"planting_date"`
	ExpectedHarvestDate Date        `json:"expected_harvest_date"`
	Status              CropStatus  `gorm:"size:20;default:planted" json:"status"`
	Inputs              []InputUsed `gorm:"foreignKey:CropID;constraint:OnDelete:CASCADE" json:"inputs"`
}
