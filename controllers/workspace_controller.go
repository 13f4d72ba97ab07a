package controllers

import (
	"time"

	"github.com/2605335342/sky-take-out/pkg/resp"
	"github.com/2605335342/sky-take-out/services"
	"github.com/gin-gonic/gin"
)

// WorkspaceController serves the merchant dashboard: today's numbers plus
// order/dish/set-meal overviews.
type WorkspaceController struct{ Svc *services.WorkspaceService }

func NewWorkspaceController(svc *services.WorkspaceService) *WorkspaceController {
	return &WorkspaceController{Svc: svc}
}

func todayBounds() (time.Time, time.Time) {
	now := time.Now()
	begin := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := begin.Add(24*time.Hour - time.Nanosecond)
	return begin, end
}

func (wc *WorkspaceController) BusinessData(c *gin.Context) {
	begin, end := todayBounds()
	out, err := wc.Svc.BusinessData(begin, end)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

func (wc *WorkspaceController) OverviewOrders(c *gin.Context) {
	begin, _ := todayBounds()
	out, err := wc.Svc.OrderOverView(begin)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

func (wc *WorkspaceController) OverviewDishes(c *gin.Context) {
	out, err := wc.Svc.DishOverView()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

func (wc *WorkspaceController) OverviewSetmeals(c *gin.Context) {
	out, err := wc.Svc.SetmealOverView()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}
