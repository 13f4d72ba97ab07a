package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SetmealDish links a set-meal to a contained dish, with the dish name and
// price denormalized for listing.
type SetmealDish struct {
	gorm.Model
	SetmealID uint            `json:"setmealId"`
	DishID    uint            `json:"dishId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Copies    int             `json:"copies"`
}
