package controllers

import (
	"github.com/2605335342/sky-take-out/pkg/resp"
	"github.com/2605335342/sky-take-out/services"
	"github.com/2605335342/sky-take-out/utils"
	"github.com/gin-gonic/gin"
)

// OrderUserController is the consumer side of the order lifecycle.
type OrderUserController struct{ Svc *services.OrderService }

func NewOrderUserController(svc *services.OrderService) *OrderUserController {
	return &OrderUserController{Svc: svc}
}

func (oc *OrderUserController) Submit(c *gin.Context) {
	var req services.SubmitOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	vo, err := oc.Svc.Submit(utils.CurrentUserID(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, vo)
}

type paymentReq struct {
	OrderNumber string `json:"orderNumber" binding:"required"`
	PayMethod   int    `json:"payMethod"`
}

// Payment marks an order paid. There is no real payment gateway; the
// client calls this after its mock payment flow succeeds.
func (oc *OrderUserController) Payment(c *gin.Context) {
	var req paymentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := oc.Svc.Pay(req.OrderNumber); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, nil)
}

func (oc *OrderUserController) HistoryOrders(c *gin.Context) {
	out, err := oc.Svc.HistoryOrders(
		utils.CurrentUserID(c),
		queryIntDefault(c, "page", 1),
		queryIntDefault(c, "pageSize", 10),
		queryInt(c, "status"),
	)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

func (oc *OrderUserController) Details(c *gin.Context) {
	out, err := oc.Svc.Details(paramUint(c, "id"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

func (oc *OrderUserController) Cancel(c *gin.Context) {
	if err := oc.Svc.UserCancel(utils.CurrentUserID(c), paramUint(c, "id")); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, nil)
}

func (oc *OrderUserController) Repetition(c *gin.Context) {
	if err := oc.Svc.Repetition(utils.CurrentUserID(c), paramUint(c, "id")); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, nil)
}

func (oc *OrderUserController) Reminder(c *gin.Context) {
	if err := oc.Svc.Reminder(utils.CurrentUserID(c), paramUint(c, "id")); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, nil)
}
