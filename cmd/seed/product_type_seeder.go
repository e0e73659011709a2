package main

import (
	"log"

	"brandkit-admin-be/internal/model"

	"gorm.io/gorm"
)

func ptr(s string) *string { return &s }

// SeedProductTypes inserts the default merchandise product types.
func SeedProductTypes(db *gorm.DB) {
	productTypes := []model.ProductType{
		{Name: "Logo", Description: ptr("Primary brand mark")},
		{Name: "T-Shirt", Description: ptr("Front print, centered")},
		{Name: "Mug", Description: ptr("Wraparound print")},
		{Name: "Poster", Description: ptr("A2 portrait")},
		{Name: "Sticker", Description: ptr("Die-cut vinyl")},
	}

	for _, pt := range productTypes {
		var existing model.ProductType
		if err := db.Where("name = ?", pt.Name).First(&existing).Error; err == nil {
			log.Printf("Product type '%s' already exists, skipping...", pt.Name)
			continue
		}

		if err := db.Create(&pt).Error; err != nil {
			log.Printf("Error creating product type '%s': %v", pt.Name, err)
		} else {
			log.Printf("Created product type: %s", pt.Name)
		}
	}

	log.Println("Product type seeding completed!")
}
