package repository

import (
	"time"

	"github.com/2605335342/sky-take-out/entity"
	"gorm.io/gorm"
)

type DishRepository struct{ DB *gorm.DB }

func NewDishRepository(db *gorm.DB) *DishRepository { return &DishRepository{DB: db} }

// DishQuery is the criteria struct for the admin dish page.
type DishQuery struct {
	Name       string
	CategoryID *uint
	Status     *int
	Page       int
	PageSize   int
}

// DishPageRow is a dish row with the category name joined in for listing.
type DishPageRow struct {
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

func (r *DishRepository) Create(tx *gorm.DB, d *entity.Dish) error {
	return tx.Create(d).Error
}

func (r *DishRepository) GetByID(id uint) (*entity.Dish, error) {
	var d entity.Dish
	if err := r.DB.Preload("Flavors").First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DishRepository) PageQuery(q DishQuery) ([]DishPageRow, int64, error) {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.PageSize <= 0 || q.PageSize > 200 {
		q.PageSize = 10
	}
	offset := (q.Page - 1) * q.PageSize

	base := func() *gorm.DB {
		db := r.DB.Table("dishes AS d").Where("d.deleted_at IS NULL")
		if q.Name != "" {
			db = db.Where("d.name LIKE ?", "%"+q.Name+"%")
		}
		if q.CategoryID != nil {
			db = db.Where("d.category_id = ?", *q.CategoryID)
		}
		if q.Status != nil {
			db = db.Where("d.status = ?", *q.Status)
		}
		return db
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []DishPageRow
	err := base().
		Select("d.id, d.name, d.category_id, c.name AS category_name, d.price, d.image, d.description, d.status, d.updated_at").
		Joins("LEFT JOIN categories c ON c.id = d.category_id").
		Order("d.updated_at DESC").Limit(q.PageSize).Offset(offset).
		Scan(&rows).Error
	return rows, total, err
}

func (r *DishRepository) Update(tx *gorm.DB, d *entity.Dish) error {
	return tx.Model(&entity.Dish{}).Where("id = ?", d.ID).
		Select("Name", "CategoryID", "Price", "Image", "Description").
		Updates(d).Error
}

func (r *DishRepository) UpdateStatus(tx *gorm.DB, id uint, status int) error {
	return tx.Model(&entity.Dish{}).Where("id = ?", id).Update("status", status).Error
}

func (r *DishRepository) Delete(tx *gorm.DB, id uint) error {
	return tx.Delete(&entity.Dish{}, id).Error
}

func (r *DishRepository) ListByCategory(categoryID uint, status *int) ([]entity.Dish, error) {
	db := r.DB.Where("category_id = ?", categoryID)
	if status != nil {
		db = db.Where("status = ?", *status)
	}
	var dishes []entity.Dish
	err := db.Preload("Flavors").Order("created_at").Find(&dishes).Error
	return dishes, err
}

func (r *DishRepository) CountByStatus(status int) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Dish{}).Where("status = ?", status).Count(&cnt).Error
	return cnt, err
}

func (r *DishRepository) CountByCategory(categoryID uint) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Dish{}).Where("category_id = ?", categoryID).Count(&cnt).Error
	return cnt, err
}

// ---------------- Flavors ----------------

func (r *DishRepository) DeleteFlavors(tx *gorm.DB, dishID uint) error {
	return tx.Where("dish_id = ?", dishID).Delete(&entity.DishFlavor{}).Error
}

func (r *DishRepository) InsertFlavors(tx *gorm.DB, flavors []entity.DishFlavor) error {
	if len(flavors) == 0 {
		return nil
	}
	return tx.Create(&flavors).Error
}
