package repository

import (
	"errors"

	"github.com/2605335342/sky-take-out/entity"
	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

func (r *CartRepository) ListByUser(userID uint) ([]entity.ShoppingCart, error) {
	var rows []entity.ShoppingCart
	err := r.DB.Where("user_id = ?", userID).Order("created_at").Find(&rows).Error
	return rows, err
}

// FindLine locates the cart row for the same item + flavor, the merge key
// for repeat adds. Returns (nil, nil) when there is no such line.
func (r *CartRepository) FindLine(userID uint, dishID, setmealID *uint, flavor string) (*entity.ShoppingCart, error) {
	db := r.DB.Where("user_id = ? AND flavor = ?", userID, flavor)
	if dishID != nil {
		db = db.Where("dish_id = ?", *dishID)
	} else {
		db = db.Where("setmeal_id = ?", *setmealID)
	}

	var row entity.ShoppingCart
	err := db.First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *CartRepository) Create(row *entity.ShoppingCart) error {
	return r.DB.Create(row).Error
}

func (r *CartRepository) InsertBatch(tx *gorm.DB, rows []entity.ShoppingCart) error {
	return tx.Create(&rows).Error
}

func (r *CartRepository) UpdateNumber(id uint, number int) error {
	return r.DB.Model(&entity.ShoppingCart{}).Where("id = ?", id).Update("number", number).Error
}

func (r *CartRepository) DeleteByID(id uint) error {
	return r.DB.Delete(&entity.ShoppingCart{}, id).Error
}

func (r *CartRepository) DeleteByUser(tx *gorm.DB, userID uint) error {
	return tx.Where("user_id = ?", userID).Delete(&entity.ShoppingCart{}).Error
}
