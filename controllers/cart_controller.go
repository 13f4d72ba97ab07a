package controllers

import (
	"github.com/2605335342/sky-take-out/pkg/resp"
	"github.com/2605335342/sky-take-out/services"
	"github.com/2605335342/sky-take-out/utils"
	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(svc *services.CartService) *CartController { return &CartController{Svc: svc} }

func (cc *CartController) Add(c *gin.Context) {
	var in services.CartItemIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := cc.Svc.Add(utils.CurrentUserID(c), &in); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, nil)
}

func (cc *CartController) Sub(c *gin.Context) {
	var in services.CartItemIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := cc.Svc.Sub(utils.CurrentUserID(c), &in); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, nil)
}

func (cc *CartController) List(c *gin.Context) {
	items, err := cc.Svc.List(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, items)
}

func (cc *CartController) Clean(c *gin.Context) {
	if err := cc.Svc.Clean(utils.CurrentUserID(c)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, nil)
}
