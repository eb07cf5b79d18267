package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PurchaseItem is one cart line frozen into a purchase record.
type PurchaseItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Subtotal    float64 `json:"subtotal"`
}

// PurchaseItemList is stored as a JSONB column.
type PurchaseItemList []PurchaseItem

func (l *PurchaseItemList) Scan(value interface{}) error {
	if value == nil {
		*l = make(PurchaseItemList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan PurchaseItemList")
	}
	return json.Unmarshal(bytes, l)
}

func (l PurchaseItemList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]PurchaseItem{})
	}
	return json.Marshal(l)
}

// Purchase is a completed checkout, keyed by the buying user.
type Purchase struct {
	ID             uuid.UUID        `json:"id" gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID        `json:"user_id" gorm:"type:uuid;not null;index"`
	PurchaseNumber string           `json:"purchase_number" gorm:"type:varchar(40);uniqueIndex;not null"`
	Items          PurchaseItemList `json:"items" gorm:"type:jsonb;not null;default:'[]'"`
	Contact        datatypes.JSON   `json:"contact,omitempty" gorm:"type:jsonb"` // shipping/contact form snapshot
	Total          float64          `json:"total" gorm:"type:numeric(12,2);not null;check:total >= 0"`
	Status         string           `json:"status" gorm:"type:varchar(30);not null;default:'completed'"`
	CreatedAt      time.Time        `json:"created_at" gorm:"autoCreateTime;index"`
}

func (Purchase) TableName() string {
	return "purchases"
}

func (p *Purchase) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// ═══════════════════════════════════════════════════════════
// Request / Response Models
// ═══════════════════════════════════════════════════════════

// CheckoutRequest carries the shipping form from the checkout page. Payment
// itself is out of scope; the storefront simulates it before calling us.
type CheckoutRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Street   string `json:"street" binding:"required"`
	City     string `json:"city" binding:"required"`
	ZipCode  string `json:"zip_code" binding:"required"`
	Country  string `json:"country" binding:"required"`
}

// PurchaseHistoryResponse is the order-history list view.
type PurchaseHistoryResponse struct {
	ID             uuid.UUID `json:"id"`
	PurchaseNumber string    `json:"purchase_number"`
	Status         string    `json:"status"`
	Total          float64   `json:"total"`
	ItemCount      int       `json:"item_count"`
	CreatedAt      time.Time `json:"created_at"`
}
