package db_models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Template is a purchasable website design asset bundle. IsActive=false
// soft-hides it from catalog listings without breaking existing order items.
type Template struct {
	BaseModel
	Name             string `gorm:"not null"`
	Slug             string `gorm:"uniqueIndex;not null"`
	Description      string `gorm:"type:text;not null"`
	ShortDescription string
	Price            decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CategoryID       *uuid.UUID      `gorm:"type:uuid;index"`
	AuthorID         uuid.UUID       `gorm:"type:uuid;index"`

	PreviewImages datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Tags          datatypes.JSONSlice[string] `gorm:"type:jsonb"`

	DemoURL     string
	DownloadURL string
	FileSize    string

	IsActive   bool `gorm:"default:true;index"`
	IsFeatured bool `gorm:"default:false"`

	// Incremented once per template per completed order.
	Downloads int `gorm:"default:0"`

	Category *Category `gorm:"foreignKey:CategoryID"`
	Author   User      `gorm:"foreignKey:AuthorID"`
}
