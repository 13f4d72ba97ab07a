package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Catalog enable/disable status, shared by Dish, Setmeal, Category and
// Employee accounts.
const (
	Enable  = 1
	Disable = 0
)

type Dish struct {
	gorm.Model
	Name        string          `gorm:"uniqueIndex" json:"name"`
	CategoryID  uint            `json:"categoryId"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Status      int             `json:"status"`

	Flavors []DishFlavor `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"flavors"`
}
