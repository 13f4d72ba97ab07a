package services

import (
	"errors"

	"github.com/2605335342/sky-take-out/entity"
	"github.com/2605335342/sky-take-out/repository"
	"gorm.io/gorm"
)

type SetmealService struct {
	DB   *gorm.DB
	Repo *repository.SetmealRepository
}

func NewSetmealService(db *gorm.DB, repo *repository.SetmealRepository) *SetmealService {
	return &SetmealService{DB: db, Repo: repo}
}

// SaveWithDish writes the set-meal and its dish relations together.
func (s *SetmealService) SaveWithDish(setmeal *entity.Setmeal) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Create(tx, setmeal)
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &DuplicateError{Value: setmeal.Name}
	}
	return err
}

func (s *SetmealService) PageQuery(q repository.SetmealQuery) (*PageResult, error) {
	rows, total, err := s.Repo.PageQuery(q)
	if err != nil {
		return nil, err
	}
	return &PageResult{Total: total, Records: rows}, nil
}

func (s *SetmealService) GetByIDWithDish(id uint) (*entity.Setmeal, error) {
	return s.Repo.GetByID(id)
}

// UpdateWithDish rewrites the set-meal row and replaces its relations.
func (s *SetmealService) UpdateWithDish(setmeal *entity.Setmeal) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Update(tx, setmeal); err != nil {
			return err
		}
		if err := s.Repo.DeleteRelations(tx, setmeal.ID); err != nil {
			return err
		}
		for i := range setmeal.SetmealDishes {
			setmeal.SetmealDishes[i].ID = 0
			setmeal.SetmealDishes[i].SetmealID = setmeal.ID
		}
		return s.Repo.InsertRelations(tx, setmeal.SetmealDishes)
	})
}

// DeleteBatch removes set-meals and their relations. An enabled set-meal
// blocks the whole batch.
func (s *SetmealService) DeleteBatch(ids []uint) error {
	for _, id := range ids {
		setmeal, err := s.Repo.GetByID(id)
		if err != nil {
			return err
		}
		if setmeal.Status == entity.Enable {
			return &DeletionNotAllowedError{Reason: "setmeal is on sale and cannot be deleted"}
		}
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		for _, id := range ids {
			if err := s.Repo.Delete(tx, id); err != nil {
				return err
			}
			if err := s.Repo.DeleteRelations(tx, id); err != nil {
				return err
			}
		}
		return nil
	})
}

// StartOrStop flips a set-meal's status. Enabling is refused while any
// contained dish is disabled.
func (s *SetmealService) StartOrStop(id uint, status int) error {
	if status == entity.Enable {
		dishes, err := s.Repo.DishesBySetmealID(id)
		if err != nil {
			return err
		}
		for _, dish := range dishes {
			if dish.Status == entity.Disable {
				return ErrSetmealEnableFailed
			}
		}
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.UpdateStatus(tx, id, status)
	})
}

// List serves the consumer menu: enabled set-meals in a category.
func (s *SetmealService) List(categoryID uint) ([]entity.Setmeal, error) {
	status := entity.Enable
	return s.Repo.ListByCategory(categoryID, &status)
}

// DishItems lists the contained dishes of a set-meal for the consumer
// detail view.
func (s *SetmealService) DishItems(setmealID uint) ([]entity.SetmealDish, error) {
	return s.Repo.RelationsBySetmealID(setmealID)
}
