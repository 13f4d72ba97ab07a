package controllers

import (
	"github.com/2605335342/sky-take-out/pkg/resp"
	"github.com/2605335342/sky-take-out/services"
	"github.com/gin-gonic/gin"
)

type UserController struct{ Svc *services.UserService }

func NewUserController(svc *services.UserService) *UserController { return &UserController{Svc: svc} }

type wxLoginReq struct {
	Code string `json:"code" binding:"required"`
}

// Login exchanges a WeChat js_code for a session token, registering the
// user on first sight.
func (uc *UserController) Login(c *gin.Context) {
	var req wxLoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	token, user, err := uc.Svc.WxLogin(req.Code)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{
		"id":     user.ID,
		"openid": user.OpenID,
		"token":  token,
	})
}
