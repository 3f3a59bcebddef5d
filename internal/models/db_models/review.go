package db_models

import "github.com/google/uuid"

// Review holds a 1-5 star rating. The composite unique index backs the
// one-review-per-user-per-template rule enforced in the service layer.
type Review struct {
	BaseModel
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_user_template"`
	TemplateID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_user_template"`
	Rating     int       `gorm:"not null"`
	Comment    string    `gorm:"type:text"`

	User     User     `gorm:"foreignKey:UserID"`
	Template Template `gorm:"foreignKey:TemplateID"`
}
