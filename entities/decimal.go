package entities

import "github.com/shopspring/decimal"

// Decimal is a fixed-point value that always renders with two fractional
// digits ("5" in, "5.00" out), matching the decimal(10,2) columns it is
// stored in. It accepts both quoted and bare JSON numbers.
type Decimal struct {
	decimal.Decimal
}

func NewDecimalFromInt(v int64) Decimal { return Decimal{decimal.NewFromInt(v)} }

func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.StringFixed(2) + `"`), nil
}

func (d *Decimal) UnmarshalJSON(b []byte) error {
	return d.Decimal.UnmarshalJSON(b)
}
