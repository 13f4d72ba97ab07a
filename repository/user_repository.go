package repository

import (
	"errors"
	"time"

	"github.com/2605335342/sky-take-out/entity"
	"gorm.io/gorm"
)

type UserRepository struct{ DB *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{DB: db} }

// GetByOpenID returns (nil, nil) for an unknown openid so the caller can
// auto-register.
func (r *UserRepository) GetByOpenID(openid string) (*entity.User, error) {
	var u entity.User
	err := r.DB.Where("open_id = ?", openid).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

func (r *UserRepository) GetByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// CountCreatedBefore counts users registered up to and including t
// ("total users as of day end").
func (r *UserRepository) CountCreatedBefore(t time.Time) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.User{}).Where("created_at <= ?", t).Count(&cnt).Error
	return cnt, err
}

func (r *UserRepository) CountCreatedBetween(begin, end time.Time) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.User{}).
		Where("created_at >= ? AND created_at <= ?", begin, end).
		Count(&cnt).Error
	return cnt, err
}
