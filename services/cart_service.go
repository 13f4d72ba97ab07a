package services

import (
	"errors"

	"github.com/2605335342/sky-take-out/entity"
	"github.com/2605335342/sky-take-out/repository"
	"gorm.io/gorm"
)

type CartService struct {
	DB          *gorm.DB
	CartRepo    *repository.CartRepository
	DishRepo    *repository.DishRepository
	SetmealRepo *repository.SetmealRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, dr *repository.DishRepository, sr *repository.SetmealRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, DishRepo: dr, SetmealRepo: sr}
}

type CartItemIn struct {
	DishID    *uint  `json:"dishId"`
	SetmealID *uint  `json:"setmealId"`
	Flavor    string `json:"dishFlavor"`
}

// Add puts one unit of a dish or set-meal into the cart. Repeat-adds of the
// same (item, flavor) pair merge into the existing line.
func (s *CartService) Add(userID uint, in *CartItemIn) error {
	if (in.DishID == nil) == (in.SetmealID == nil) {
		return errors.New("exactly one of dishId/setmealId is required")
	}

	exist, err := s.CartRepo.FindLine(userID, in.DishID, in.SetmealID, in.Flavor)
	if err != nil {
		return err
	}
	if exist != nil {
		return s.CartRepo.UpdateNumber(exist.ID, exist.Number+1)
	}

	// new line: snapshot name/image/price from the catalog
	row := entity.ShoppingCart{
		UserID:    userID,
		Number:    1,
		Flavor:    in.Flavor,
		DishID:    in.DishID,
		SetmealID: in.SetmealID,
	}
	if in.DishID != nil {
		dish, err := s.DishRepo.GetByID(*in.DishID)
		if err != nil {
			return err
		}
		row.Name = dish.Name
		row.Image = dish.Image
		row.Amount = dish.Price
	} else {
		setmeal, err := s.SetmealRepo.GetByID(*in.SetmealID)
		if err != nil {
			return err
		}
		row.Name = setmeal.Name
		row.Image = setmeal.Image
		row.Amount = setmeal.Price
	}

	return s.CartRepo.Create(&row)
}

// Sub removes one unit: quantity 1 deletes the line, more decrements it.
func (s *CartService) Sub(userID uint, in *CartItemIn) error {
	if (in.DishID == nil) == (in.SetmealID == nil) {
		return errors.New("exactly one of dishId/setmealId is required")
	}

	exist, err := s.CartRepo.FindLine(userID, in.DishID, in.SetmealID, in.Flavor)
	if err != nil {
		return err
	}
	if exist == nil {
		return nil
	}

	if exist.Number == 1 {
		return s.CartRepo.DeleteByID(exist.ID)
	}
	return s.CartRepo.UpdateNumber(exist.ID, exist.Number-1)
}

func (s *CartService) List(userID uint) ([]entity.ShoppingCart, error) {
	return s.CartRepo.ListByUser(userID)
}

func (s *CartService) Clean(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.DeleteByUser(tx, userID)
	})
}
