package controllers

import (
	"time"

	"github.com/2605335342/sky-take-out/pkg/resp"
	"github.com/2605335342/sky-take-out/repository"
	"github.com/2605335342/sky-take-out/services"
	"github.com/gin-gonic/gin"
)

// OrderAdminController is the merchant side of the order lifecycle.
type OrderAdminController struct{ Svc *services.OrderService }

func NewOrderAdminController(svc *services.OrderService) *OrderAdminController {
	return &OrderAdminController{Svc: svc}
}

const timeLayout = "2006-01-02 15:04:05"

func queryTime(c *gin.Context, key string) *time.Time {
	s := c.Query(key)
	if s == "" {
		return nil
	}
	t, err := time.ParseInLocation(timeLayout, s, time.Local)
	if err != nil {
		return nil
	}
	return &t
}

func (oc *OrderAdminController) ConditionSearch(c *gin.Context) {
	out, err := oc.Svc.ConditionSearch(repository.OrderQuery{
		Number:   c.Query("number"),
		Phone:    c.Query("phone"),
		Status:   queryInt(c, "status"),
		Begin:    queryTime(c, "beginTime"),
		End:      queryTime(c, "endTime"),
		Page:     queryIntDefault(c, "page", 1),
		PageSize: queryIntDefault(c, "pageSize", 10),
	})
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

func (oc *OrderAdminController) Statistics(c *gin.Context) {
	out, err := oc.Svc.Statistics()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

func (oc *OrderAdminController) Details(c *gin.Context) {
	out, err := oc.Svc.Details(paramUint(c, "id"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

type orderIDReq struct {
	ID uint `json:"id" binding:"required"`
}

type orderReasonReq struct {
	ID              uint   `json:"id" binding:"required"`
	RejectionReason string `json:"rejectionReason"`
	CancelReason    string `json:"cancelReason"`
}

func (oc *OrderAdminController) Confirm(c *gin.Context) {
	var req orderIDReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := oc.Svc.Confirm(req.ID); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, nil)
}

func (oc *OrderAdminController) Rejection(c *gin.Context) {
	var req orderReasonReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := oc.Svc.Rejection(req.ID, req.RejectionReason); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, nil)
}

func (oc *OrderAdminController) Cancel(c *gin.Context) {
	var req orderReasonReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := oc.Svc.Cancel(req.ID, req.CancelReason); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, nil)
}

func (oc *OrderAdminController) Delivery(c *gin.Context) {
	if err := oc.Svc.Delivery(paramUint(c, "id")); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, nil)
}

func (oc *OrderAdminController) Complete(c *gin.Context) {
	if err := oc.Svc.Complete(paramUint(c, "id")); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, nil)
}
