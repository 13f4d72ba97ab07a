package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Setmeal struct {
	gorm.Model
	Name        string          `gorm:"uniqueIndex" json:"name"`
	CategoryID  uint            `json:"categoryId"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Status      int             `json:"status"`

	SetmealDishes []SetmealDish `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"setmealDishes"`
}
