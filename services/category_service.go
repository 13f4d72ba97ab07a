package services

import (
	"errors"

	"github.com/2605335342/sky-take-out/entity"
	"github.com/2605335342/sky-take-out/repository"
	"gorm.io/gorm"
)

type CategoryService struct {
	Repo        *repository.CategoryRepository
	DishRepo    *repository.DishRepository
	SetmealRepo *repository.SetmealRepository
}

func NewCategoryService(repo *repository.CategoryRepository, dr *repository.DishRepository, sr *repository.SetmealRepository) *CategoryService {
	return &CategoryService{Repo: repo, DishRepo: dr, SetmealRepo: sr}
}

func (s *CategoryService) Create(cat *entity.Category) error {
	cat.Status = entity.Disable // new categories start hidden
	err := s.Repo.Create(cat)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &DuplicateError{Value: cat.Name}
	}
	return err
}

func (s *CategoryService) PageQuery(name string, catType *int, page, pageSize int) (*PageResult, error) {
	rows, total, err := s.Repo.PageQuery(name, catType, page, pageSize)
	if err != nil {
		return nil, err
	}
	return &PageResult{Total: total, Records: rows}, nil
}

func (s *CategoryService) Update(cat *entity.Category) error {
	err := s.Repo.Update(cat)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &DuplicateError{Value: cat.Name}
	}
	return err
}

func (s *CategoryService) StartOrStop(id uint, status int) error {
	return s.Repo.UpdateStatus(id, status)
}

// Delete refuses while any dish or set-meal still sits in the category.
func (s *CategoryService) Delete(id uint) error {
	dishCount, err := s.DishRepo.CountByCategory(id)
	if err != nil {
		return err
	}
	if dishCount > 0 {
		return &DeletionNotAllowedError{Reason: "category has dishes and cannot be deleted"}
	}

	setmealCount, err := s.SetmealRepo.CountByCategory(id)
	if err != nil {
		return err
	}
	if setmealCount > 0 {
		return &DeletionNotAllowedError{Reason: "category has setmeals and cannot be deleted"}
	}

	return s.Repo.Delete(id)
}

func (s *CategoryService) ListByType(catType *int) ([]entity.Category, error) {
	status := entity.Enable
	return s.Repo.ListByType(catType, &status)
}
