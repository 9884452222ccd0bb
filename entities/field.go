package entities

type Field struct {
	ID                  uint   `gorm:"primaryKey" json:"id"`
	Name                string `gorm:"size:100" json:"name"`
	LocationDescription string `json:"location_description"`
}
