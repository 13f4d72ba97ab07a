package repository

import (
	"errors"

	"github.com/2605335342/sky-take-out/entity"
	"gorm.io/gorm"
)

type AddressRepository struct{ DB *gorm.DB }

func NewAddressRepository(db *gorm.DB) *AddressRepository { return &AddressRepository{DB: db} }

func (r *AddressRepository) Create(a *entity.AddressBook) error {
	return r.DB.Create(a).Error
}

func (r *AddressRepository) ListByUser(userID uint) ([]entity.AddressBook, error) {
	var rows []entity.AddressBook
	err := r.DB.Where("user_id = ?", userID).Find(&rows).Error
	return rows, err
}

func (r *AddressRepository) GetByID(id uint) (*entity.AddressBook, error) {
	var a entity.AddressBook
	if err := r.DB.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AddressRepository) Update(a *entity.AddressBook) error {
	return r.DB.Save(a).Error
}

func (r *AddressRepository) Delete(userID, id uint) error {
	return r.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&entity.AddressBook{}).Error
}

// ClearDefault resets the default flag on every address of the user; the
// caller then flags one row inside the same transaction.
func (r *AddressRepository) ClearDefault(tx *gorm.DB, userID uint) error {
	return tx.Model(&entity.AddressBook{}).
		Where("user_id = ?", userID).
		Update("is_default", 0).Error
}

func (r *AddressRepository) SetDefault(tx *gorm.DB, userID, id uint) (int64, error) {
	res := tx.Model(&entity.AddressBook{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_default", 1)
	return res.RowsAffected, res.Error
}

func (r *AddressRepository) GetDefault(userID uint) (*entity.AddressBook, error) {
	var a entity.AddressBook
	err := r.DB.Where("user_id = ? AND is_default = 1", userID).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}
