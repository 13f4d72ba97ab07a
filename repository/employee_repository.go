package repository

import (
	"github.com/2605335342/sky-take-out/entity"
	"gorm.io/gorm"
)

type EmployeeRepository struct{ DB *gorm.DB }

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository { return &EmployeeRepository{DB: db} }

func (r *EmployeeRepository) Create(e *entity.Employee) error {
	return r.DB.Create(e).Error
}

func (r *EmployeeRepository) GetByUsername(username string) (*entity.Employee, error) {
	var e entity.Employee
	if err := r.DB.Where("username = ?", username).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeRepository) GetByID(id uint) (*entity.Employee, error) {
	var e entity.Employee
	if err := r.DB.First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeRepository) PageQuery(name string, page, pageSize int) ([]entity.Employee, int64, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 200 {
		pageSize = 10
	}

	base := func() *gorm.DB {
		db := r.DB.Model(&entity.Employee{})
		if name != "" {
			db = db.Where("name LIKE ?", "%"+name+"%")
		}
		return db
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []entity.Employee
	err := base().Order("created_at DESC").Limit(pageSize).Offset((page - 1) * pageSize).Find(&rows).Error
	return rows, total, err
}

func (r *EmployeeRepository) Update(e *entity.Employee) error {
	return r.DB.Model(&entity.Employee{}).Where("id = ?", e.ID).
		Select("Name", "Username", "Phone", "Sex", "IDNumber").
		Updates(e).Error
}

func (r *EmployeeRepository) UpdateStatus(id uint, status int) error {
	return r.DB.Model(&entity.Employee{}).Where("id = ?", id).Update("status", status).Error
}
