package services

import (
	"testing"
	"time"

	"github.com/2605335342/sky-take-out/entity"
	"github.com/2605335342/sky-take-out/repository"
	"gorm.io/gorm"
)

func newWorkspaceServiceForTest(db *gorm.DB) *WorkspaceService {
	return NewWorkspaceService(
		repository.NewOrderRepository(db),
		repository.NewUserRepository(db),
		repository.NewDishRepository(db),
		repository.NewSetmealRepository(db),
	)
}

func TestBusinessData(t *testing.T) {
	db := newTestDB(t)
	svc := newWorkspaceServiceForTest(db)
	user := seedUser(t, db, "openid-1")

	now := time.Now()
	seedOrder(t, db, user.ID, entity.Completed, entity.Paid, "30.00", now)
	seedOrder(t, db, user.ID, entity.Completed, entity.Paid, "10.00", now)
	seedOrder(t, db, user.ID, entity.Cancelled, entity.Refund, "99.00", now)

	begin := now.Add(-time.Hour)
	end := now.Add(time.Hour)
	out, err := svc.BusinessData(begin, end)
	if err != nil {
		t.Fatalf("business data: %v", err)
	}
	if out.Turnover != 40.0 {
		t.Errorf("turnover = %v, want 40", out.Turnover)
	}
	if out.ValidOrderCount != 2 {
		t.Errorf("valid = %d, want 2", out.ValidOrderCount)
	}
	if out.UnitPrice != 20.0 {
		t.Errorf("unit price = %v, want 20", out.UnitPrice)
	}
}

func TestBusinessDataEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := newWorkspaceServiceForTest(db)

	out, err := svc.BusinessData(time.Now().Add(-time.Hour), time.Now())
	if err != nil {
		t.Fatalf("business data: %v", err)
	}
	if out.Turnover != 0 || out.OrderCompletionRate != 0 || out.UnitPrice != 0 {
		t.Errorf("zeros expected, got %+v", out)
	}
}

func TestItemOverviews(t *testing.T) {
	db := newTestDB(t)
	svc := newWorkspaceServiceForTest(db)
	cat := seedCategory(t, db, "Mains", entity.CategoryDish)

	seedDish(t, db, "Visible", "5.00", cat.ID, entity.Enable)
	seedDish(t, db, "Hidden", "5.00", cat.ID, entity.Disable)
	seedSetmeal(t, db, "Combo", "20.00", cat.ID, entity.Enable)

	dishes, err := svc.DishOverView()
	if err != nil {
		t.Fatalf("dish overview: %v", err)
	}
	if dishes.Sold != 1 || dishes.Discontinued != 1 {
		t.Errorf("dishes = %+v", dishes)
	}

	setmeals, err := svc.SetmealOverView()
	if err != nil {
		t.Fatalf("setmeal overview: %v", err)
	}
	if setmeals.Sold != 1 || setmeals.Discontinued != 0 {
		t.Errorf("setmeals = %+v", setmeals)
	}
}
