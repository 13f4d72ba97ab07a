package entity

import (
	"gorm.io/gorm"
)

// User is a consumer account, registered lazily on first WeChat login.
type User struct {
	gorm.Model
	OpenID string `gorm:"uniqueIndex" json:"openid"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Sex    string `json:"sex"`
	Avatar string `json:"avatar"`
}
