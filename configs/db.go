package configs

import (
	"github.com/2605335342/sky-take-out/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	// TranslateError turns unique-index violations into
	// gorm.ErrDuplicatedKey so the service layer can raise a typed
	// duplicate error instead of parsing driver messages.
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{TranslateError: true})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	db.AutoMigrate(
		&entity.Employee{}, &entity.User{},
		&entity.Category{},
		&entity.Dish{}, &entity.DishFlavor{},
		&entity.Setmeal{}, &entity.SetmealDish{},
		&entity.ShoppingCart{}, &entity.AddressBook{},
		&entity.Order{}, &entity.OrderDetail{},
	)
}
