package entities

import "time"

type InventoryCategory string

const (
	CategorySeeds      InventoryCategory = "seeds"
	CategoryFertilizer InventoryCategory = "fertilizer"
	CategoryPesticide  InventoryCategory = "pesticide"
	CategoryEquipment  InventoryCategory = "equipment"
	CategoryFuel       InventoryCategory = "fuel"
	CategoryOther      InventoryCategory = "other"
)

func (c InventoryCategory) Valid() bool {
	switch c {
	case CategorySeeds, CategoryFertilizer, CategoryPesticide, CategoryEquipment, CategoryFuel, CategoryOther:
		return true
	}
	return false
}

type InventoryUnit string

const (
	UnitKG     InventoryUnit = "kg"
	UnitG      InventoryUnit = "g"
	UnitLiters InventoryUnit = "liters"
	UnitML     InventoryUnit = "ml"
	UnitUnits  InventoryUnit = "units"
	UnitSacks  InventoryUnit = "sacks"
)

func (u InventoryUnit) Valid() bool {
	switch u {
	case UnitKG, UnitG, UnitLiters, UnitML, UnitUnits, UnitSacks:
		return true
	}
	return false
}

// InventoryItem tracks stock on hand. Quantity is unchecked and may go
// negative; last_updated is stamped on every write.
type InventoryItem struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	Name        string            `gorm:"size:100" json:"name"`
	Category    InventoryCategory `gorm:"size:50;default:other" json:"category"`
	Quantity    Decimal           `gorm:"type:decimal(10,2)" json:"quantity"`
	Unit        InventoryUnit     `gorm:"size:20;default:units" json:"unit"`
	LastUpdated time.Time         `gorm:"autoUpdateTime" json:"last_updated"`
}
