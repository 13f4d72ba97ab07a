package repository

import (
	"time"

	"github.com/2605335342/sky-take-out/entity"
	"gorm.io/gorm"
)

type SetmealRepository struct{ DB *gorm.DB }

func NewSetmealRepository(db *gorm.DB) *SetmealRepository { return &SetmealRepository{DB: db} }

type SetmealQuery struct {
	Name       string
	CategoryID *uint
	Status     *int
	Page       int
	PageSize   int
}

type SetmealPageRow struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	CategoryID   uint      `json:"categoryId"`
	CategoryName string    `json:"categoryName"`
	Price        string    `json:"price"`
	Image        string    `json:"image"`
	Description  string    `json:"description"`
	Status       int       `json:"status"`
	UpdatedAt    time.Time `json:"updateTime"`
}

func (r *SetmealRepository) Create(tx *gorm.DB, s *entity.Setmeal) error {
	return tx.Create(s).Error
}

func (r *SetmealRepository) GetByID(id uint) (*entity.Setmeal, error) {
	var s entity.Setmeal
	if err := r.DB.Preload("SetmealDishes").First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SetmealRepository) PageQuery(q SetmealQuery) ([]SetmealPageRow, int64, error) {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.PageSize <= 0 || q.PageSize > 200 {
		q.PageSize = 10
	}
	offset := (q.Page - 1) * q.PageSize

	base := func() *gorm.DB {
		db := r.DB.Table("setmeals AS s").Where("s.deleted_at IS NULL")
		if q.Name != "" {
			db = db.Where("s.name LIKE ?", "%"+q.Name+"%")
		}
		if q.CategoryID != nil {
			db = db.Where("s.category_id = ?", *q.CategoryID)
		}
		if q.Status != nil {
			db = db.Where("s.status = ?", *q.Status)
		}
		return db
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []SetmealPageRow
	err := base().
		Select("s.id, s.name, s.category_id, c.name AS category_name, s.price, s.image, s.description, s.status, s.updated_at").
		Joins("LEFT JOIN categories c ON c.id = s.category_id").
		Order("s.updated_at DESC").Limit(q.PageSize).Offset(offset).
		Scan(&rows).Error
	return rows, total, err
}

func (r *SetmealRepository) Update(tx *gorm.DB, s *entity.Setmeal) error {
	return tx.Model(&entity.Setmeal{}).Where("id = ?", s.ID).
		Select("Name", "CategoryID", "Price", "Image", "Description").
		Updates(s).Error
}

func (r *SetmealRepository) UpdateStatus(tx *gorm.DB, id uint, status int) error {
	return tx.Model(&entity.Setmeal{}).Where("id = ?", id).Update("status", status).Error
}

func (r *SetmealRepository) Delete(tx *gorm.DB, id uint) error {
	return tx.Delete(&entity.Setmeal{}, id).Error
}

func (r *SetmealRepository) ListByCategory(categoryID uint, status *int) ([]entity.Setmeal, error) {
	db := r.DB.Where("category_id = ?", categoryID)
	if status != nil {
		db = db.Where("status = ?", *status)
	}
	var setmeals []entity.Setmeal
	err := db.Order("created_at").Find(&setmeals).Error
	return setmeals, err
}

func (r *SetmealRepository) CountByStatus(status int) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Setmeal{}).Where("status = ?", status).Count(&cnt).Error
	return cnt, err
}

func (r *SetmealRepository) CountByCategory(categoryID uint) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Setmeal{}).Where("category_id = ?", categoryID).Count(&cnt).Error
	return cnt, err
}

// ---------------- Relations ----------------

// SetmealIDsByDishIDs finds every set-meal containing any of the dishes,
// enabled or not.
func (r *SetmealRepository) SetmealIDsByDishIDs(dishIDs []uint) ([]uint, error) {
	if len(dishIDs) == 0 {
		return nil, nil
	}
	var ids []uint
	err := r.DB.Model(&entity.SetmealDish{}).
		Distinct("setmeal_id").
		Where("dish_id IN ?", dishIDs).
		Pluck("setmeal_id", &ids).Error
	return ids, err
}

// DishesBySetmealID loads the dish rows linked to a set-meal.
func (r *SetmealRepository) DishesBySetmealID(setmealID uint) ([]entity.Dish, error) {
	var dishes []entity.Dish
	err := r.DB.Table("dishes AS d").
		Joins("JOIN setmeal_dishes sd ON sd.dish_id = d.id").
		Where("sd.setmeal_id = ? AND d.deleted_at IS NULL", setmealID).
		Find(&dishes).Error
	return dishes, err
}

func (r *SetmealRepository) RelationsBySetmealID(setmealID uint) ([]entity.SetmealDish, error) {
	var rows []entity.SetmealDish
	err := r.DB.Where("setmeal_id = ?", setmealID).Find(&rows).Error
	return rows, err
}

func (r *SetmealRepository) DeleteRelations(tx *gorm.DB, setmealID uint) error {
	return tx.Where("setmeal_id = ?", setmealID).Delete(&entity.SetmealDish{}).Error
}

func (r *SetmealRepository) InsertRelations(tx *gorm.DB, rows []entity.SetmealDish) error {
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}
