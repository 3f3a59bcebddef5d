package db_models

type User struct {
	BaseModel
	Email           string `gorm:"uniqueIndex;not null"`
	PasswordHash    string
	FirstName       string
	LastName        string
	ProfileImageURL string
	IsAdmin         bool `gorm:"default:false"`

	// Set lazily the first time the user goes through checkout.
	StripeCustomerID string

	Templates []Template `gorm:"foreignKey:AuthorID"`
	Orders    []Order    `gorm:"foreignKey:UserID"`
	Reviews   []Review   `gorm:"foreignKey:UserID"`
}
