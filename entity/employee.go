package entity

import (
	"gorm.io/gorm"
)

type Employee struct {
	gorm.Model
	Name     string `json:"name"`
	Username string `gorm:"uniqueIndex" json:"username"`
	Password string `json:"-"`
	Phone    string `json:"phone"`
	Sex      string `json:"sex"`
	IDNumber string `json:"idNumber"`
	Status   int    `json:"status"` // 1 enabled, 0 locked
}
