package repository

import (
	"github.com/2605335342/sky-take-out/entity"
	"gorm.io/gorm"
)

type CategoryRepository struct{ DB *gorm.DB }

func NewCategoryRepository(db *gorm.DB) *CategoryRepository { return &CategoryRepository{DB: db} }

func (r *CategoryRepository) Create(cat *entity.Category) error {
	return r.DB.Create(cat).Error
}

func (r *CategoryRepository) GetByID(id uint) (*entity.Category, error) {
	var cat entity.Category
	if err := r.DB.First(&cat, id).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *CategoryRepository) PageQuery(name string, catType *int, page, pageSize int) ([]entity.Category, int64, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 200 {
		pageSize = 10
	}

	base := func() *gorm.DB {
		db := r.DB.Model(&entity.Category{})
		if name != "" {
			db = db.Where("name LIKE ?", "%"+name+"%")
		}
		if catType != nil {
			db = db.Where("type = ?", *catType)
		}
		return db
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []entity.Category
	err := base().Order("sort").Limit(pageSize).Offset((page - 1) * pageSize).Find(&rows).Error
	return rows, total, err
}

func (r *CategoryRepository) Update(cat *entity.Category) error {
	return r.DB.Model(&entity.Category{}).Where("id = ?", cat.ID).
		Select("Type", "Name", "Sort").
		Updates(cat).Error
}

func (r *CategoryRepository) UpdateStatus(id uint, status int) error {
	return r.DB.Model(&entity.Category{}).Where("id = ?", id).Update("status", status).Error
}

func (r *CategoryRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Category{}, id).Error
}

func (r *CategoryRepository) ListByType(catType *int, status *int) ([]entity.Category, error) {
	db := r.DB.Model(&entity.Category{})
	if catType != nil {
		db = db.Where("type = ?", *catType)
	}
	if status != nil {
		db = db.Where("status = ?", *status)
	}
	var rows []entity.Category
	err := db.Order("sort").Find(&rows).Error
	return rows, err
}
