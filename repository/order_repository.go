package repository

import (
	"time"

	"github.com/2605335342/sky-take-out/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// OrderQuery is the explicit criteria struct for order searches. Every
// field is optional except the page pair; no string-keyed parameter maps.
type OrderQuery struct {
	Number   string
	Phone    string
	Status   *int
	UserID   *uint
	Begin    *time.Time
	End      *time.Time
	Page     int
	PageSize int
}

func (q OrderQuery) apply(db *gorm.DB) *gorm.DB {
	if q.Number != "" {
		db = db.Where("number LIKE ?", "%"+q.Number+"%")
	}
	if q.Phone != "" {
		db = db.Where("phone LIKE ?", "%"+q.Phone+"%")
	}
	if q.Status != nil {
		db = db.Where("status = ?", *q.Status)
	}
	if q.UserID != nil {
		db = db.Where("user_id = ?", *q.UserID)
	}
	if q.Begin != nil {
		db = db.Where("order_time >= ?", *q.Begin)
	}
	if q.End != nil {
		db = db.Where("order_time <= ?", *q.End)
	}
	return db
}

// ---------------- Orders ----------------

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetByID(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetByNumber(number string) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("number = ?", number).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND user_id = ?", orderID, userID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) PageQuery(q OrderQuery) ([]entity.Order, int64, error) {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.PageSize <= 0 || q.PageSize > 200 {
		q.PageSize = 10
	}
	offset := (q.Page - 1) * q.PageSize

	var total int64
	if err := q.apply(r.DB.Model(&entity.Order{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []entity.Order
	err := q.apply(r.DB.Model(&entity.Order{})).
		Order("order_time DESC").Limit(q.PageSize).Offset(offset).
		Find(&orders).Error
	return orders, total, err
}

// Updates applies the given column set to one order row.
func (r *OrderRepository) Updates(tx *gorm.DB, orderID uint, values map[string]any) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).Updates(values).Error
}

// UpdateStatusGuard flips status only when the current value matches.
// Returns the affected row count so callers can detect a lost race.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to int) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// ---------------- Order details ----------------

func (r *OrderRepository) CreateDetails(tx *gorm.DB, details []entity.OrderDetail) error {
	return tx.Create(&details).Error
}

func (r *OrderRepository) DetailsByOrderID(orderID uint) ([]entity.OrderDetail, error) {
	var details []entity.OrderDetail
	err := r.DB.Where("order_id = ?", orderID).Find(&details).Error
	return details, err
}

// ---------------- Aggregation (reports, workspace) ----------------

func (r *OrderRepository) CountByStatus(status int) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Order{}).Where("status = ?", status).Count(&cnt).Error
	return cnt, err
}

// CountInRange counts orders placed inside [begin, end], optionally
// restricted to one status.
func (r *OrderRepository) CountInRange(begin, end time.Time, status *int) (int64, error) {
	db := r.DB.Model(&entity.Order{}).
		Where("order_time >= ? AND order_time <= ?", begin, end)
	if status != nil {
		db = db.Where("status = ?", *status)
	}
	var cnt int64
	err := db.Count(&cnt).Error
	return cnt, err
}

// SumAmount totals the amount of orders in [begin, end] with the given
// status. Empty ranges come back as 0, not NULL.
func (r *OrderRepository) SumAmount(begin, end time.Time, status int) (float64, error) {
	var sum float64
	err := r.DB.Model(&entity.Order{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("order_time >= ? AND order_time <= ? AND status = ?", begin, end, status).
		Scan(&sum).Error
	return sum, err
}

// ItemSale is one row of the by-quantity item ranking.
type ItemSale struct {
	Name   string `json:"name"`
	Number int    `json:"number"`
}

// SalesTop ranks item names by quantity sold across completed orders in
// [begin, end].
func (r *OrderRepository) SalesTop(begin, end time.Time, limit int) ([]ItemSale, error) {
	var out []ItemSale
	err := r.DB.Table("order_details AS od").
		Select("od.name, SUM(od.number) AS number").
		Joins("JOIN orders o ON o.id = od.order_id").
		Where("o.status = ? AND o.order_time >= ? AND o.order_time <= ?", entity.Completed, begin, end).
		Group("od.name").
		Order("number DESC").
		Limit(limit).
		Scan(&out).Error
	return out, err
}
