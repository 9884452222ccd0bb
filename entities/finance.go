package entities

type Income struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Source       string  `gorm:"size:100" json:"source"`
	Amount       Decimal `gorm:"type:decimal(10,2)" json:"amount"`
	DateReceived Date    `json:"date_received"`
}

type Expense struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Category  string  `gorm:"size:100" json:"category"`
	Amount    Decimal `gorm:"type:decimal(10,2)" json:"amount"`
	DateSpent Date    `json:"date_spent"`
	Notes     string  `json:"notes"`
}
