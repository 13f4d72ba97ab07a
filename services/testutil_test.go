package services

import (
	"fmt"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/2605335342/sky-take-out/entity"
	"github.com/2605335342/sky-take-out/repository"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	err = db.AutoMigrate(
		&entity.Employee{},
		&entity.User{},
		&entity.Category{},
		&entity.Dish{},
		&entity.DishFlavor{},
		&entity.Setmeal{},
		&entity.SetmealDish{},
		&entity.ShoppingCart{},
		&entity.AddressBook{},
		&entity.Order{},
		&entity.OrderDetail{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newOrderServiceForTest(t *testing.T, db *gorm.DB, notify Notifier) *OrderService {
	t.Helper()
	return NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		repository.NewAddressRepository(db),
		notify,
	)
}

// captureNotifier records broadcast events for assertions.
type captureNotifier struct {
	events []OrderEvent
}

func (n *captureNotifier) Broadcast(payload any) {
	if ev, ok := payload.(OrderEvent); ok {
		n.events = append(n.events, ev)
	}
}

func seedUser(t *testing.T, db *gorm.DB, openid string) *entity.User {
	t.Helper()
	u := &entity.User{OpenID: openid}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func seedAddress(t *testing.T, db *gorm.DB, userID uint) *entity.AddressBook {
	t.Helper()
	a := &entity.AddressBook{
		UserID:       userID,
		Consignee:    "Alice",
		Phone:        "13800000000",
		ProvinceName: "Province",
		CityName:     "City",
		DistrictName: "District",
		Detail:       "1 Main St",
	}
	if err := db.Create(a).Error; err != nil {
		t.Fatalf("seed address: %v", err)
	}
	return a
}

func seedCategory(t *testing.T, db *gorm.DB, name string, catType int) *entity.Category {
	t.Helper()
	c := &entity.Category{Name: name, Type: catType, Status: entity.Enable}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	return c
}

func seedDish(t *testing.T, db *gorm.DB, name string, price string, categoryID uint, status int) *entity.Dish {
	t.Helper()
	d := &entity.Dish{
		Name:       name,
		CategoryID: categoryID,
		Price:      decimal.RequireFromString(price),
		Status:     status,
	}
	if err := db.Create(d).Error; err != nil {
		t.Fatalf("seed dish: %v", err)
	}
	return d
}

func seedSetmeal(t *testing.T, db *gorm.DB, name string, price string, categoryID uint, status int, dishIDs ...uint) *entity.Setmeal {
	t.Helper()
	s := &entity.Setmeal{
		Name:       name,
		CategoryID: categoryID,
		Price:      decimal.RequireFromString(price),
		Status:     status,
	}
	for _, id := range dishIDs {
		s.SetmealDishes = append(s.SetmealDishes, entity.SetmealDish{DishID: id, Copies: 1})
	}
	if err := db.Create(s).Error; err != nil {
		t.Fatalf("seed setmeal: %v", err)
	}
	return s
}

func seedCartLine(t *testing.T, db *gorm.DB, userID uint, name, price string, number int, dishID, setmealID *uint) {
	t.Helper()
	line := entity.ShoppingCart{
		UserID:    userID,
		Name:      name,
		Amount:    decimal.RequireFromString(price),
		Number:    number,
		DishID:    dishID,
		SetmealID: setmealID,
	}
	if err := db.Create(&line).Error; err != nil {
		t.Fatalf("seed cart line: %v", err)
	}
}

var orderSeq atomic.Int64

func seedOrder(t *testing.T, db *gorm.DB, userID uint, status, payStatus int, amount string, orderTime time.Time) *entity.Order {
	t.Helper()
	o := &entity.Order{
		Number:    fmt.Sprintf("TEST%06d", orderSeq.Add(1)),
		Status:    status,
		PayStatus: payStatus,
		Amount:    decimal.RequireFromString(amount),
		UserID:    userID,
		OrderTime: orderTime,
	}
	if err := db.Create(o).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}
	return o
}
