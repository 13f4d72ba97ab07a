package services

import (
	"bytes"
	"testing"
	"time"

	"github.com/2605335342/sky-take-out/entity"
	"github.com/2605335342/sky-take-out/repository"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

func newReportServiceForTest(db *gorm.DB) *ReportService {
	orderRepo := repository.NewOrderRepository(db)
	userRepo := repository.NewUserRepository(db)
	workspace := NewWorkspaceService(orderRepo, userRepo, repository.NewDishRepository(db), repository.NewSetmealRepository(db))
	return NewReportService(orderRepo, userRepo, workspace)
}

func day(s string) time.Time {
	d, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		panic(err)
	}
	return d
}

func TestTurnoverStatistics(t *testing.T) {
	db := newTestDB(t)
	svc := newReportServiceForTest(db)
	user := seedUser(t, db, "openid-1")

	// day 1: one completed, one cancelled (excluded); day 2: nothing
	seedOrder(t, db, user.ID, entity.Completed, entity.Paid, "100.50", day("2026-08-01").Add(10*time.Hour))
	seedOrder(t, db, user.ID, entity.Cancelled, entity.Refund, "999.00", day("2026-08-01").Add(11*time.Hour))

	out, err := svc.TurnoverStatistics(day("2026-08-01"), day("2026-08-02"))
	if err != nil {
		t.Fatalf("turnover: %v", err)
	}
	if out.DateList != "2026-08-01,2026-08-02" {
		t.Errorf("dates = %q", out.DateList)
	}
	if out.TurnoverList != "100.50,0.00" {
		t.Errorf("turnover = %q", out.TurnoverList)
	}
}

func TestTurnoverSingleDay(t *testing.T) {
	db := newTestDB(t)
	svc := newReportServiceForTest(db)

	out, err := svc.TurnoverStatistics(day("2026-08-01"), day("2026-08-01"))
	if err != nil {
		t.Fatalf("turnover: %v", err)
	}
	if out.DateList != "2026-08-01" || out.TurnoverList != "0.00" {
		t.Errorf("out = %+v", out)
	}
}

func TestOrderStatistics(t *testing.T) {
	db := newTestDB(t)
	svc := newReportServiceForTest(db)
	user := seedUser(t, db, "openid-1")

	seedOrder(t, db, user.ID, entity.Completed, entity.Paid, "10.00", day("2026-08-01").Add(9*time.Hour))
	seedOrder(t, db, user.ID, entity.Cancelled, entity.Refund, "10.00", day("2026-08-01").Add(10*time.Hour))
	seedOrder(t, db, user.ID, entity.Completed, entity.Paid, "10.00", day("2026-08-02").Add(9*time.Hour))
	seedOrder(t, db, user.ID, entity.ToBeConfirmed, entity.Paid, "10.00", day("2026-08-02").Add(10*time.Hour))

	out, err := svc.OrderStatistics(day("2026-08-01"), day("2026-08-02"))
	if err != nil {
		t.Fatalf("orders: %v", err)
	}
	if out.OrderCountList != "2,2" {
		t.Errorf("counts = %q", out.OrderCountList)
	}
	if out.ValidOrderCountList != "1,1" {
		t.Errorf("valid counts = %q", out.ValidOrderCountList)
	}
	if out.TotalOrderCount != 4 || out.ValidOrderCount != 2 {
		t.Errorf("totals = %d / %d", out.TotalOrderCount, out.ValidOrderCount)
	}
	if out.OrderCompletionRate != 0.5 {
		t.Errorf("rate = %v, want 0.5", out.OrderCompletionRate)
	}
}

func TestOrderStatisticsEmptyRange(t *testing.T) {
	db := newTestDB(t)
	svc := newReportServiceForTest(db)

	out, err := svc.OrderStatistics(day("2026-08-01"), day("2026-08-01"))
	if err != nil {
		t.Fatalf("orders: %v", err)
	}
	if out.OrderCompletionRate != 0.0 {
		t.Errorf("rate = %v, want 0.0 on empty range", out.OrderCompletionRate)
	}
}

func TestUserStatistics(t *testing.T) {
	db := newTestDB(t)
	svc := newReportServiceForTest(db)

	// one user registered on day 1, one on day 2
	u1 := &entity.User{OpenID: "u1"}
	db.Create(u1)
	db.Model(u1).Update("created_at", day("2026-08-01").Add(9*time.Hour))
	u2 := &entity.User{OpenID: "u2"}
	db.Create(u2)
	db.Model(u2).Update("created_at", day("2026-08-02").Add(9*time.Hour))

	out, err := svc.UserStatistics(day("2026-08-01"), day("2026-08-02"))
	if err != nil {
		t.Fatalf("users: %v", err)
	}
	if out.NewUserList != "1,1" {
		t.Errorf("new users = %q", out.NewUserList)
	}
	if out.TotalUserList != "1,2" {
		t.Errorf("total users = %q", out.TotalUserList)
	}
}

func TestSalesTop10(t *testing.T) {
	db := newTestDB(t)
	svc := newReportServiceForTest(db)
	user := seedUser(t, db, "openid-1")

	completed := seedOrder(t, db, user.ID, entity.Completed, entity.Paid, "50.00", day("2026-08-01").Add(9*time.Hour))
	cancelled := seedOrder(t, db, user.ID, entity.Cancelled, entity.Refund, "50.00", day("2026-08-01").Add(10*time.Hour))
	details := []entity.OrderDetail{
		{OrderID: completed.ID, Name: "Kung Pao Chicken", Number: 3},
		{OrderID: completed.ID, Name: "Rice", Number: 5},
		{OrderID: cancelled.ID, Name: "Rice", Number: 99}, // excluded
	}
	if err := db.Create(&details).Error; err != nil {
		t.Fatalf("seed details: %v", err)
	}

	out, err := svc.SalesTop10(day("2026-08-01"), day("2026-08-01"))
	if err != nil {
		t.Fatalf("top10: %v", err)
	}
	if out.NameList != "Rice,Kung Pao Chicken" {
		t.Errorf("names = %q", out.NameList)
	}
	if out.NumberList != "5,3" {
		t.Errorf("numbers = %q", out.NumberList)
	}
}

func TestExportBusinessData(t *testing.T) {
	db := newTestDB(t)
	svc := newReportServiceForTest(db)
	user := seedUser(t, db, "openid-1")
	seedOrder(t, db, user.ID, entity.Completed, entity.Paid, "30.00", time.Now().AddDate(0, 0, -1))

	var buf bytes.Buffer
	if err := svc.ExportBusinessData(&buf); err != nil {
		t.Fatalf("export: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("empty workbook")
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		t.Fatal("no sheets")
	}
	cell, err := f.GetCellValue(sheets[0], "B2")
	if err != nil {
		t.Fatalf("read B2: %v", err)
	}
	if cell == "" {
		t.Error("B2 should carry the report window")
	}
}
