package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SellerProduct is a product listed through the seller dashboard. These live
// in the database, unlike the static storefront catalog.
type SellerProduct struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	CreatorID   uuid.UUID `json:"creator_id" gorm:"type:uuid;not null;index"`
	Name        string    `json:"name" gorm:"not null;index"`
	Description string    `json:"description" gorm:"not null"`
	Price       float64   `json:"price" gorm:"type:numeric(12,2);not null;check:price >= 0"`
	Category    string    `json:"category" gorm:"type:varchar(100);not null;index"`
	Subcategory *string   `json:"subcategory,omitempty" gorm:"type:varchar(100)"`
	Image       *string   `json:"image,omitempty" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (SellerProduct) TableName() string {
	return "products"
}

func (p *SellerProduct) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type SellerProductRequest struct {
	Name        string  `json:"name" binding:"required" example:"Pantry Label Pack"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"required,min=0" example:"9.99"`
	Category    string  `json:"category" binding:"required" example:"kitchen"`
	Subcategory *string `json:"subcategory,omitempty"`
	Image       *string `json:"image,omitempty"`
}

type UpdateSellerProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,min=0"`
	Category    *string  `json:"category"`
	Subcategory *string  `json:"subcategory"`
	Image       *string  `json:"image"`
}
