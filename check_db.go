package main

import (
	"backend/internal/app/ds"
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	dsn := "host=localhost user=postgres password=password dbname=admin_db port=5432 sslmode=disable TimeZone=Europe/Moscow"
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	var products []ds.Product
	err = db.Where("is_deleted = ?", false).Find(&products).Error
	if err != nil {
		log.Fatal("Failed to get products:", err)
	}

	fmt.Println("Products in database:")
	for _, product := range products {
		fmt.Printf("ID: %d, Name: %s, Price: %.2f %s\n", product.ID, product.Name, product.Price, product.Unit)
	}
}
