package entities

// InputUsed records an input (fertilizer, pesticide, ...) applied to a crop.
// Quantity is free text ("2 sacks", "500 ml"). Cascades with its crop.
type InputUsed struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	CropID   uint   `gorm:"index" json:"crop"`
	Crop     *Crop  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Name     string `gorm:"size:100" json:"name"`
	Quantity string `gorm:"size:100" json:"quantity"`
	DateUsed Date   `json:"date_used"`
}
