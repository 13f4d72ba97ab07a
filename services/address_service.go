package services

import (
	"errors"

	"github.com/2605335342/sky-take-out/entity"
	"github.com/2605335342/sky-take-out/repository"
	"gorm.io/gorm"
)

type AddressService struct {
	DB   *gorm.DB
	Repo *repository.AddressRepository
}

func NewAddressService(db *gorm.DB, repo *repository.AddressRepository) *AddressService {
	return &AddressService{DB: db, Repo: repo}
}

func (s *AddressService) Add(userID uint, a *entity.AddressBook) error {
	a.UserID = userID
	a.IsDefault = 0 // new addresses never arrive as default
	return s.Repo.Create(a)
}

func (s *AddressService) List(userID uint) ([]entity.AddressBook, error) {
	return s.Repo.ListByUser(userID)
}

func (s *AddressService) GetByID(userID, id uint) (*entity.AddressBook, error) {
	a, err := s.Repo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAddressNotFound
	}
	if err != nil {
		return nil, err
	}
	if a.UserID != userID {
		return nil, ErrAddressNotFound
	}
	return a, nil
}

func (s *AddressService) Update(userID uint, a *entity.AddressBook) error {
	exist, err := s.GetByID(userID, a.ID)
	if err != nil {
		return err
	}
	a.UserID = exist.UserID
	a.IsDefault = exist.IsDefault
	return s.Repo.Update(a)
}

func (s *AddressService) Delete(userID, id uint) error {
	return s.Repo.Delete(userID, id)
}

// SetDefault makes one address the default: clear-then-set inside a single
// transaction so at most one flag survives.
func (s *AddressService) SetDefault(userID, id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.ClearDefault(tx, userID); err != nil {
			return err
		}
		affected, err := s.Repo.SetDefault(tx, userID, id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrAddressNotFound
		}
		return nil
	})
}

func (s *AddressService) GetDefault(userID uint) (*entity.AddressBook, error) {
	a, err := s.Repo.GetDefault(userID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrAddressNotFound
	}
	return a, nil
}
