package services

import (
	"errors"

	"github.com/2605335342/sky-take-out/entity"
	"github.com/2605335342/sky-take-out/repository"
	"gorm.io/gorm"
)

type DishService struct {
	DB          *gorm.DB
	Repo        *repository.DishRepository
	SetmealRepo *repository.SetmealRepository
}

func NewDishService(db *gorm.DB, repo *repository.DishRepository, setmealRepo *repository.SetmealRepository) *DishService {
	return &DishService{DB: db, Repo: repo, SetmealRepo: setmealRepo}
}

// SaveWithFlavor writes the dish and its flavor rows together.
func (s *DishService) SaveWithFlavor(dish *entity.Dish) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Create(tx, dish)
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &DuplicateError{Value: dish.Name}
	}
	return err
}

func (s *DishService) PageQuery(q repository.DishQuery) (*PageResult, error) {
	rows, total, err := s.Repo.PageQuery(q)
	if err != nil {
		return nil, err
	}
	return &PageResult{Total: total, Records: rows}, nil
}

func (s *DishService) GetByIDWithFlavor(id uint) (*entity.Dish, error) {
	return s.Repo.GetByID(id)
}

// UpdateWithFlavor rewrites the dish row and replaces its flavors.
func (s *DishService) UpdateWithFlavor(dish *entity.Dish) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Update(tx, dish); err != nil {
			return err
		}
		if err := s.Repo.DeleteFlavors(tx, dish.ID); err != nil {
			return err
		}
		for i := range dish.Flavors {
			dish.Flavors[i].ID = 0
			dish.Flavors[i].DishID = dish.ID
		}
		return s.Repo.InsertFlavors(tx, dish.Flavors)
	})
}

// DeleteBatch removes dishes and their flavors. A dish still enabled, or
// referenced by any set-meal (even a disabled one), blocks the whole batch.
func (s *DishService) DeleteBatch(ids []uint) error {
	for _, id := range ids {
		dish, err := s.Repo.GetByID(id)
		if err != nil {
			return err
		}
		if dish.Status == entity.Enable {
			return &DeletionNotAllowedError{Reason: "dish is on sale and cannot be deleted"}
		}
	}

	setmealIDs, err := s.SetmealRepo.SetmealIDsByDishIDs(ids)
	if err != nil {
		return err
	}
	if len(setmealIDs) > 0 {
		return &DeletionNotAllowedError{Reason: "dish is referenced by a setmeal and cannot be deleted"}
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		for _, id := range ids {
			if err := s.Repo.Delete(tx, id); err != nil {
				return err
			}
			if err := s.Repo.DeleteFlavors(tx, id); err != nil {
				return err
			}
		}
		return nil
	})
}

// StartOrStop flips a dish's status. Disabling cascades: every set-meal
// containing the dish is forced to disabled in the same transaction.
func (s *DishService) StartOrStop(id uint, status int) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.UpdateStatus(tx, id, status); err != nil {
			return err
		}

		if status == entity.Disable {
			setmealIDs, err := s.SetmealRepo.SetmealIDsByDishIDs([]uint{id})
			if err != nil {
				return err
			}
			for _, setmealID := range setmealIDs {
				if err := s.SetmealRepo.UpdateStatus(tx, setmealID, entity.Disable); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// ListByCategory serves the admin picker (all statuses).
func (s *DishService) ListByCategory(categoryID uint) ([]entity.Dish, error) {
	return s.Repo.ListByCategory(categoryID, nil)
}

// ListWithFlavor serves the consumer menu: enabled dishes only, flavors
// preloaded.
func (s *DishService) ListWithFlavor(categoryID uint) ([]entity.Dish, error) {
	status := entity.Enable
	return s.Repo.ListByCategory(categoryID, &status)
}
