package db_models

// Category groups templates in the catalog. Rows are created by admins and
// are read-heavy; templates keep referencing them via a nullable FK.
type Category struct {
	BaseModel
	Name        string `gorm:"not null"`
	Slug        string `gorm:"uniqueIndex;not null"`
	Icon        string
	Description string `gorm:"type:text"`

	Templates []Template `gorm:"foreignKey:CategoryID"`
}
