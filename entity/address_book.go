package entity

import (
	"gorm.io/gorm"
)

type AddressBook struct {
	gorm.Model
	UserID uint `json:"userId"`
	User   User `json:"-"`

	Consignee string `json:"consignee"`
	Sex       string `json:"sex"`
	Phone     string `json:"phone"`

	ProvinceCode string `json:"provinceCode"`
	ProvinceName string `json:"provinceName"`
	CityCode     string `json:"cityCode"`
	CityName     string `json:"cityName"`
	DistrictCode string `json:"districtCode"`
	DistrictName string `json:"districtName"`
	Detail       string `json:"detail"`
	Label        string `json:"label"`

	IsDefault int `json:"isDefault"` // 0/1, at most one per user
}

// FullAddress joins the region names and detail into the single line that
// gets snapshotted onto an order.
func (a *AddressBook) FullAddress() string {
	return a.ProvinceName + a.CityName + a.DistrictName + a.Detail
}
