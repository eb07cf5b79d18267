package main

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/moghost88/cozy-corner-goods/catalog"
	"github.com/moghost88/cozy-corner-goods/config"
	"github.com/moghost88/cozy-corner-goods/models"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main migrates the schema, syncs the built-in catalog into the products
// table and creates a demo seller account.
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("COZY CORNER GOODS - Database Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	log.Println("✓ Connected to database")

	if err := config.StoreGorm.AutoMigrate(
		&models.User{},
		&models.SellerProduct{},
		&models.Purchase{},
	); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}
	log.Println("✓ Schema migrated")

	seller := seedDemoSeller()
	seedCatalogProducts(seller.ID)

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Seed Complete!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("Demo seller: %s (password: cozycorner)\n", seller.Email)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Login at POST /api/v1/auth/login with the demo seller")
	fmt.Println("3. Browse the storefront at GET /api/v1/store/products")
	fmt.Println()
}

// seedDemoSeller creates (or reuses) the demo seller account that owns the
// built-in catalog rows.
func seedDemoSeller() models.User {
	email := "seller@cozycornergoods.shop"

	var existing models.User
	err := config.StoreGorm.Where("email = ?", email).First(&existing).Error
	if err == nil {
		log.Printf("✓ Demo seller already exists: %s", email)
		return existing
	}
	if err != gorm.ErrRecordNotFound {
		log.Fatalf("Database error: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("cozycorner"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	hashStr := string(hash)

	seller := models.User{
		ID:           uuid.Must(uuid.NewV7()),
		Email:        email,
		Name:         "Cozy Corner Studio",
		PasswordHash: &hashStr,
		Provider:     "local",
	}
	if err := config.StoreGorm.Create(&seller).Error; err != nil {
		log.Fatalf("Failed to create demo seller: %v", err)
	}
	log.Printf("✓ Demo seller created: %s", email)
	return seller
}

// seedCatalogProducts mirrors the static storefront catalog into the
// products table so the seller dashboard has rows to manage. Existing rows
// are left alone, keyed by name.
func seedCatalogProducts(creatorID uuid.UUID) {
	created := 0
	for _, p := range catalog.Default().Products() {
		var count int64
		if err := config.StoreGorm.Model(&models.SellerProduct{}).
			Where("name = ? AND creator_id = ?", p.Name, creatorID).
			Count(&count).Error; err != nil {
			log.Fatalf("Database error: %v", err)
		}
		if count > 0 {
			continue
		}

		row := models.SellerProduct{
			CreatorID:   creatorID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Category:    p.Category,
		}
		if p.Subcategory != "" {
			sub := p.Subcategory
			row.Subcategory = &sub
		}
		if p.Image != "" {
			img := p.Image
			row.Image = &img
		}
		if err := config.StoreGorm.Create(&row).Error; err != nil {
			log.Fatalf("Failed to seed product %q: %v", p.Name, err)
		}
		created++
	}
	log.Printf("✓ Catalog synced, %d new product rows", created)
}
