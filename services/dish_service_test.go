package services

import (
	"errors"
	"testing"

	"github.com/2605335342/sky-take-out/entity"
	"github.com/2605335342/sky-take-out/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newDishServiceForTest(db *gorm.DB) *DishService {
	return NewDishService(db, repository.NewDishRepository(db), repository.NewSetmealRepository(db))
}

func newSetmealServiceForTest(db *gorm.DB) *SetmealService {
	return NewSetmealService(db, repository.NewSetmealRepository(db))
}

func TestDishDuplicateName(t *testing.T) {
	db := newTestDB(t)
	svc := newDishServiceForTest(db)
	cat := seedCategory(t, db, "Mains", entity.CategoryDish)

	seedDish(t, db, "Kung Pao Chicken", "10.00", cat.ID, entity.Enable)

	dup := &entity.Dish{Name: "Kung Pao Chicken", CategoryID: cat.ID, Price: decimal.RequireFromString("11.00")}
	err := svc.SaveWithFlavor(dup)
	var dupErr *DuplicateError
	if !errors.As(err, &dupErr) {
		t.Fatalf("err = %v, want DuplicateError", err)
	}
	if dupErr.Value != "Kung Pao Chicken" {
		t.Errorf("value = %q", dupErr.Value)
	}
}

func TestDishUpdateReplacesFlavors(t *testing.T) {
	db := newTestDB(t)
	svc := newDishServiceForTest(db)
	cat := seedCategory(t, db, "Mains", entity.CategoryDish)

	dish := &entity.Dish{
		Name:       "Mapo Tofu",
		CategoryID: cat.ID,
		Price:      decimal.RequireFromString("8.00"),
		Flavors:    []entity.DishFlavor{{Name: "spice", Value: `["mild","hot"]`}},
	}
	if err := svc.SaveWithFlavor(dish); err != nil {
		t.Fatalf("save: %v", err)
	}

	dish.Flavors = []entity.DishFlavor{{Name: "spice", Value: `["extra hot"]`}}
	if err := svc.UpdateWithFlavor(dish); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := svc.GetByIDWithFlavor(dish.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Flavors) != 1 || got.Flavors[0].Value != `["extra hot"]` {
		t.Errorf("flavors = %+v", got.Flavors)
	}
}

func TestDishDeleteGuards(t *testing.T) {
	db := newTestDB(t)
	svc := newDishServiceForTest(db)
	cat := seedCategory(t, db, "Mains", entity.CategoryDish)

	enabled := seedDish(t, db, "Enabled Dish", "5.00", cat.ID, entity.Enable)
	var delErr *DeletionNotAllowedError
	if err := svc.DeleteBatch([]uint{enabled.ID}); !errors.As(err, &delErr) {
		t.Fatalf("enabled dish: err = %v, want DeletionNotAllowedError", err)
	}

	referenced := seedDish(t, db, "Referenced Dish", "5.00", cat.ID, entity.Disable)
	seedSetmeal(t, db, "Combo", "20.00", cat.ID, entity.Disable, referenced.ID)
	if err := svc.DeleteBatch([]uint{referenced.ID}); !errors.As(err, &delErr) {
		t.Fatalf("referenced dish: err = %v, want DeletionNotAllowedError", err)
	}

	free := seedDish(t, db, "Free Dish", "5.00", cat.ID, entity.Disable)
	if err := svc.DeleteBatch([]uint{free.ID}); err != nil {
		t.Fatalf("free dish: %v", err)
	}
	if _, err := svc.GetByIDWithFlavor(free.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("dish should be gone, err = %v", err)
	}
}

func TestDishDisableCascadesSetmeals(t *testing.T) {
	db := newTestDB(t)
	svc := newDishServiceForTest(db)
	cat := seedCategory(t, db, "Mains", entity.CategoryDish)

	dish := seedDish(t, db, "Kung Pao Chicken", "10.00", cat.ID, entity.Enable)
	combo := seedSetmeal(t, db, "Combo", "20.00", cat.ID, entity.Enable, dish.ID)

	if err := svc.StartOrStop(dish.ID, entity.Disable); err != nil {
		t.Fatalf("disable: %v", err)
	}

	var got entity.Setmeal
	db.First(&got, combo.ID)
	if got.Status != entity.Disable {
		t.Errorf("setmeal status = %d, want disabled", got.Status)
	}
}

func TestSetmealEnableBlockedByDisabledDish(t *testing.T) {
	db := newTestDB(t)
	svc := newSetmealServiceForTest(db)
	cat := seedCategory(t, db, "Mains", entity.CategoryDish)

	dish := seedDish(t, db, "Kung Pao Chicken", "10.00", cat.ID, entity.Disable)
	combo := seedSetmeal(t, db, "Combo", "20.00", cat.ID, entity.Disable, dish.ID)

	if err := svc.StartOrStop(combo.ID, entity.Enable); !errors.Is(err, ErrSetmealEnableFailed) {
		t.Fatalf("err = %v, want ErrSetmealEnableFailed", err)
	}

	// enabling the dish unblocks the set-meal
	db.Model(&entity.Dish{}).Where("id = ?", dish.ID).Update("status", entity.Enable)
	if err := svc.StartOrStop(combo.ID, entity.Enable); err != nil {
		t.Fatalf("enable after fix: %v", err)
	}
}

func TestSetmealDeleteGuards(t *testing.T) {
	db := newTestDB(t)
	svc := newSetmealServiceForTest(db)
	cat := seedCategory(t, db, "Combos", entity.CategorySetmeal)

	onSale := seedSetmeal(t, db, "On Sale", "20.00", cat.ID, entity.Enable)
	var delErr *DeletionNotAllowedError
	if err := svc.DeleteBatch([]uint{onSale.ID}); !errors.As(err, &delErr) {
		t.Fatalf("err = %v, want DeletionNotAllowedError", err)
	}

	offSale := seedSetmeal(t, db, "Off Sale", "20.00", cat.ID, entity.Disable)
	if err := svc.DeleteBatch([]uint{offSale.ID}); err != nil {
		t.Fatalf("delete: %v", err)
	}
}

func TestConsumerDishListFiltersDisabled(t *testing.T) {
	db := newTestDB(t)
	svc := newDishServiceForTest(db)
	cat := seedCategory(t, db, "Mains", entity.CategoryDish)

	seedDish(t, db, "Visible", "5.00", cat.ID, entity.Enable)
	seedDish(t, db, "Hidden", "5.00", cat.ID, entity.Disable)

	dishes, err := svc.ListWithFlavor(cat.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(dishes) != 1 || dishes[0].Name != "Visible" {
		t.Errorf("dishes = %+v", dishes)
	}

	// admin picker sees everything
	all, err := svc.ListByCategory(cat.ID)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("all = %d, want 2", len(all))
	}
}
