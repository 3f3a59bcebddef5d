package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"templify/internal/models/db_models"
)

type ReviewRepository interface {
	CreateReview(ctx context.Context, review *db_models.Review) error
	ListTemplateReviews(ctx context.Context, templateID uuid.UUID) ([]db_models.Review, error)
	GetUserReview(ctx context.Context, userID, templateID uuid.UUID) (*db_models.Review, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) CreateReview(ctx context.Context, review *db_models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) ListTemplateReviews(ctx context.Context, templateID uuid.UUID) ([]db_models.Review, error) {
	var reviews []db_models.Review
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("template_id = ?", templateID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) GetUserReview(ctx context.Context, userID, templateID uuid.UUID) (*db_models.Review, error) {
	var review db_models.Review
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND template_id = ?", userID, templateID).
		First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}
