package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderDetail is an immutable snapshot of one cart line taken at submit
// time. Later catalog edits never touch rows that already exist here.
type OrderDetail struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	Name   string          `json:"name"`
	Image  string          `json:"image"`
	Amount decimal.Decimal `gorm:"type:decimal(10,2)" json:"amount"` // unit price
	Number int             `json:"number"`
	Flavor string          `json:"flavor"`

	// exactly one of the two is set
	DishID    *uint `json:"dishId"`
	SetmealID *uint `json:"setmealId"`
}
