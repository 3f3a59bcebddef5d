package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"templify/internal/models/db_models"
)

type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]db_models.Category, error)
	GetCategoryByID(ctx context.Context, id uuid.UUID) (*db_models.Category, error)
	GetCategoriesByIDs(ctx context.Context, ids []uuid.UUID) ([]db_models.Category, error)
	CreateCategory(ctx context.Context, category *db_models.Category) error
	UpdateCategory(ctx context.Context, category *db_models.Category) error
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) ListCategories(ctx context.Context) ([]db_models.Category, error) {
	var categories []db_models.Category
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) GetCategoryByID(ctx context.Context, id uuid.UUID) (*db_models.Category, error) {
	var category db_models.Category
	err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetCategoriesByIDs(ctx context.Context, ids []uuid.UUID) ([]db_models.Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var categories []db_models.Category
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) CreateCategory(ctx context.Context, category *db_models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, category *db_models.Category) error {
	result := r.db.WithContext(ctx).Save(category)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *categoryRepository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Category{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}
