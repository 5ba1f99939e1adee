package models

// Component represents a catalog item with a name and a quantity-on-hand.
// Quantity is only ever mutated through the guarded repository updates, which
// keep it non-negative.
type Component struct {
	BaseModel
	Name              string  `json:"name" gorm:"uniqueIndex;not null;size:200" validate:"required,min=1,max=200"`
	Quantity          int     `json:"quantity" gorm:"not null;default:0;check:quantity >= 0" validate:"gte=0"`
	Location          string  `json:"location,omitempty" gorm:"size:100"`
	UnitPrice         float64 `json:"unit_price,omitempty"`
	LowStockThreshold int     `json:"low_stock_threshold,omitempty" gorm:"default:0"`
}

// TableName returns the table name for Component
func (Component) TableName() string {
	return "components"
}

// IsLowStock reports whether the quantity has fallen to or below the
// configured threshold. A zero threshold disables the check.
func (c *Component) IsLowStock() bool {
	return c.LowStockThreshold > 0 && c.Quantity <= c.LowStockThreshold
}
