package entity

import (
	"gorm.io/gorm"
)

// Category types.
const (
	CategoryDish    = 1
	CategorySetmeal = 2
)

type Category struct {
	gorm.Model
	Type   int    `json:"type"` // 1 dish category, 2 set-meal category
	Name   string `gorm:"uniqueIndex" json:"name"`
	Sort   int    `json:"sort"`
	Status int    `json:"status"`
}
