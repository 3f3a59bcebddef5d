package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"templify/internal/models/db_models"
)

// CatalogSort is the closed set of sort orders the catalog accepts. Raw
// query values are parsed into it at the service boundary; anything else is
// rejected there.
type CatalogSort string

const (
	SortPriceAsc  CatalogSort = "price_asc"
	SortPriceDesc CatalogSort = "price_desc"
	SortNewest    CatalogSort = "newest"
	SortPopular   CatalogSort = "popular"
	SortRating    CatalogSort = "rating"
)

// CatalogQuery is the shared filter+sort+limit primitive behind both the
// general listing and every curated view.
type CatalogQuery struct {
	CategoryID   *uuid.UUID
	Search       string
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	Sort         CatalogSort
	FeaturedOnly bool
	Limit        int
}

// TemplateWithStats is a template row joined with its live review
// aggregates. AvgRating is nil when the template has no reviews.
type TemplateWithStats struct {
	db_models.Template
	AvgRating   *float64 `gorm:"column:avg_rating"`
	ReviewCount int64    `gorm:"column:review_count"`
}

type TemplateRepository interface {
	ListTemplates(ctx context.Context, query CatalogQuery) ([]TemplateWithStats, error)
	GetTemplateByID(ctx context.Context, id uuid.UUID) (*TemplateWithStats, error)
	GetTemplateBySlug(ctx context.Context, slug string) (*TemplateWithStats, error)
	GetTemplatesByIDs(ctx context.Context, ids []uuid.UUID) ([]db_models.Template, error)
	ListTemplatesByAuthor(ctx context.Context, authorID uuid.UUID) ([]db_models.Template, error)
	CreateTemplate(ctx context.Context, template *db_models.Template) error
	UpdateTemplate(ctx context.Context, template *db_models.Template) error
	DeleteTemplate(ctx context.Context, id uuid.UUID) error
}

type templateRepository struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) TemplateRepository {
	return &templateRepository{db: db}
}

const templateStatsSelect = "templates.*, AVG(reviews.rating) AS avg_rating, COUNT(reviews.id) AS review_count"

func (r *templateRepository) statsQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&db_models.Template{}).
		Select(templateStatsSelect).
		Joins("LEFT JOIN reviews ON reviews.template_id = templates.id").
		Group("templates.id")
}

func (r *templateRepository) ListTemplates(ctx context.Context, query CatalogQuery) ([]TemplateWithStats, error) {
	tx := r.statsQuery(ctx).Where("templates.is_active = TRUE")

	if query.CategoryID != nil {
		tx = tx.Where("templates.category_id = ?", *query.CategoryID)
	}
	if query.Search != "" {
		pattern := "%" + query.Search + "%"
		tx = tx.Where("templates.name ILIKE ? OR templates.description ILIKE ?", pattern, pattern)
	}
	if query.MinPrice != nil {
		tx = tx.Where("templates.price >= ?", *query.MinPrice)
	}
	if query.MaxPrice != nil {
		tx = tx.Where("templates.price <= ?", *query.MaxPrice)
	}
	if query.FeaturedOnly {
		tx = tx.Where("templates.is_featured = TRUE")
	}

	switch query.Sort {
	case SortPriceAsc:
		tx = tx.Order("templates.price ASC")
	case SortPriceDesc:
		tx = tx.Order("templates.price DESC")
	case SortPopular:
		// Tie-break on creation time, newest first.
		tx = tx.Order("templates.downloads DESC, templates.created_at DESC")
	case SortRating:
		tx = tx.Order("AVG(reviews.rating) DESC NULLS LAST")
	default:
		tx = tx.Order("templates.created_at DESC")
	}

	if query.Limit > 0 {
		tx = tx.Limit(query.Limit)
	}

	var rows []TemplateWithStats
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Single lookups intentionally skip the is_active filter so a purchased but
// since-deactivated template stays resolvable from order history.
func (r *templateRepository) GetTemplateByID(ctx context.Context, id uuid.UUID) (*TemplateWithStats, error) {
	var row TemplateWithStats
	err := r.statsQuery(ctx).
		Where("templates.id = ?", id).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *templateRepository) GetTemplateBySlug(ctx context.Context, slug string) (*TemplateWithStats, error) {
	var row TemplateWithStats
	err := r.statsQuery(ctx).
		Where("templates.slug = ?", slug).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *templateRepository) GetTemplatesByIDs(ctx context.Context, ids []uuid.UUID) ([]db_models.Template, error) {
	var templates []db_models.Template
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&templates).Error
	return templates, err
}

func (r *templateRepository) ListTemplatesByAuthor(ctx context.Context, authorID uuid.UUID) ([]db_models.Template, error) {
	var templates []db_models.Template
	err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&templates).Error
	return templates, err
}

func (r *templateRepository) CreateTemplate(ctx context.Context, template *db_models.Template) error {
	return r.db.WithContext(ctx).Create(template).Error
}

func (r *templateRepository) UpdateTemplate(ctx context.Context, template *db_models.Template) error {
	result := r.db.WithContext(ctx).Save(template)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *templateRepository) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Template{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}
