package controllers

import (
	"fmt"
	"log"
	"time"

	"github.com/2605335342/sky-take-out/pkg/resp"
	"github.com/2605335342/sky-take-out/services"
	"github.com/gin-gonic/gin"
)

type ReportController struct{ Svc *services.ReportService }

func NewReportController(svc *services.ReportService) *ReportController {
	return &ReportController{Svc: svc}
}

const dateLayout = "2006-01-02"

// rangeQuery reads the begin/end date params every report endpoint takes.
func rangeQuery(c *gin.Context) (time.Time, time.Time, bool) {
	begin, err := time.ParseInLocation(dateLayout, c.Query("begin"), time.Local)
	if err != nil {
		resp.BadRequest(c, "begin must be a yyyy-MM-dd date")
		return time.Time{}, time.Time{}, false
	}
	end, err := time.ParseInLocation(dateLayout, c.Query("end"), time.Local)
	if err != nil {
		resp.BadRequest(c, "end must be a yyyy-MM-dd date")
		return time.Time{}, time.Time{}, false
	}
	if end.Before(begin) {
		resp.BadRequest(c, "end must not be before begin")
		return time.Time{}, time.Time{}, false
	}
	return begin, end, true
}

func (rc *ReportController) TurnoverStatistics(c *gin.Context) {
	begin, end, ok := rangeQuery(c)
	if !ok {
		return
	}
	out, err := rc.Svc.TurnoverStatistics(begin, end)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

func (rc *ReportController) UserStatistics(c *gin.Context) {
	begin, end, ok := rangeQuery(c)
	if !ok {
		return
	}
	out, err := rc.Svc.UserStatistics(begin, end)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

func (rc *ReportController) OrdersStatistics(c *gin.Context) {
	begin, end, ok := rangeQuery(c)
	if !ok {
		return
	}
	out, err := rc.Svc.OrderStatistics(begin, end)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

func (rc *ReportController) Top10(c *gin.Context) {
	begin, end, ok := rangeQuery(c)
	if !ok {
		return
	}
	out, err := rc.Svc.SalesTop10(begin, end)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

// Export streams the last 30 days of business data as an xlsx download.
func (rc *ReportController) Export(c *gin.Context) {
	filename := fmt.Sprintf("business-data-%s.xlsx", time.Now().Format(dateLayout))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := rc.Svc.ExportBusinessData(c.Writer); err != nil {
		// headers are already out, so all we can do is log
		log.Printf("export business data: %v", err)
	}
}
