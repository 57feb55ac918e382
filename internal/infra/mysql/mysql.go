package mysql

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"pos-service/internal/domain"
)

func NewMySQLFromEnv() (*gorm.DB, error) {
	user := os.Getenv("MYSQL_USER")
	pass := os.Getenv("MYSQL_PASSWORD")
	host := os.Getenv("MYSQL_HOST")
	port := os.Getenv("MYSQL_PORT")
	dbname := os.Getenv("MYSQL_DATABASE")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local", user, pass, host, port, dbname)
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		// TranslateError turns driver duplicate-key errors into
		// gorm.ErrDuplicatedKey; the order-number retry depends on it.
		TranslateError: true,
		NamingStrategy: schema.NamingStrategy{
			SingularTable: false,
		},
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&domain.BusinessUnit{},
		&domain.Table{},
		&domain.MenuItem{},
		&domain.Order{},
		&domain.OrderItem{},
		&domain.KitchenOrder{},
		&domain.KitchenOrderItem{},
		&domain.BarOrder{},
		&domain.BarOrderItem{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
