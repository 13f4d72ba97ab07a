package configs

import (
	"log"

	"github.com/2605335342/sky-take-out/entity"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first employee account so the console is reachable
// on a fresh database.
func SeedAdmin(cfg *Config) error {
	db := DB()
	if cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.Employee{}).Where("username = ?", cfg.AdminUsername).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", cfg.AdminUsername)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	admin := entity.Employee{
		Name:     "Administrator",
		Username: cfg.AdminUsername,
		Password: string(hash),
		Status:   entity.Enable,
	}
	return db.Create(&admin).Error
}
