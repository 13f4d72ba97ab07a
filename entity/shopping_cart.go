package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ShoppingCart struct {
	gorm.Model
	UserID uint `json:"userId"`
	User   User `json:"-"`

	Name   string          `json:"name"`
	Image  string          `json:"image"`
	Amount decimal.Decimal `gorm:"type:decimal(10,2)" json:"amount"` // unit price snapshot
	Number int             `json:"number"`
	Flavor string          `json:"flavor"`

	// exactly one of the two is set
	DishID    *uint `json:"dishId"`
	SetmealID *uint `json:"setmealId"`
}
