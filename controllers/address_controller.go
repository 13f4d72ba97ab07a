package controllers

import (
	"github.com/2605335342/sky-take-out/entity"
	"github.com/2605335342/sky-take-out/pkg/resp"
	"github.com/2605335342/sky-take-out/services"
	"github.com/2605335342/sky-take-out/utils"
	"github.com/gin-gonic/gin"
)

type AddressController struct{ Svc *services.AddressService }

func NewAddressController(svc *services.AddressService) *AddressController {
	return &AddressController{Svc: svc}
}

type addressReq struct {
	ID           uint   `json:"id"`
	Consignee    string `json:"consignee" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	Sex          string `json:"sex"`
	ProvinceCode string `json:"provinceCode"`
	ProvinceName string `json:"provinceName"`
	CityCode     string `json:"cityCode"`
	CityName     string `json:"cityName"`
	DistrictCode string `json:"districtCode"`
	DistrictName string `json:"districtName"`
	Detail       string `json:"detail" binding:"required"`
	Label        string `json:"label"`
}

func (r *addressReq) toEntity() *entity.AddressBook {
	a := &entity.AddressBook{
		Consignee:    r.Consignee,
		Phone:        r.Phone,
		Sex:          r.Sex,
		ProvinceCode: r.ProvinceCode,
		ProvinceName: r.ProvinceName,
		CityCode:     r.CityCode,
		CityName:     r.CityName,
		DistrictCode: r.DistrictCode,
		DistrictName: r.DistrictName,
		Detail:       r.Detail,
		Label:        r.Label,
	}
	a.ID = r.ID
	return a
}

func (ac *AddressController) Add(c *gin.Context) {
	var req addressReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	a := req.toEntity()
	if err := ac.Svc.Add(utils.CurrentUserID(c), a); err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, gin.H{"id": a.ID})
}

func (ac *AddressController) List(c *gin.Context) {
	list, err := ac.Svc.List(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, list)
}

func (ac *AddressController) GetByID(c *gin.Context) {
	a, err := ac.Svc.GetByID(utils.CurrentUserID(c), paramUint(c, "id"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, a)
}

func (ac *AddressController) Update(c *gin.Context) {
	var req addressReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.ID == 0 {
		resp.BadRequest(c, "id is required")
		return
	}
	if err := ac.Svc.Update(utils.CurrentUserID(c), req.toEntity()); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, nil)
}

func (ac *AddressController) Delete(c *gin.Context) {
	id := queryUint(c, "id")
	if id == nil {
		resp.BadRequest(c, "id is required")
		return
	}
	if err := ac.Svc.Delete(utils.CurrentUserID(c), *id); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, nil)
}

func (ac *AddressController) SetDefault(c *gin.Context) {
	var req struct {
		ID uint `json:"id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ac.Svc.SetDefault(utils.CurrentUserID(c), req.ID); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, nil)
}

func (ac *AddressController) GetDefault(c *gin.Context) {
	a, err := ac.Svc.GetDefault(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, a)
}
