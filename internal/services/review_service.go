package services

import (
	"context"
	"log"

	"github.com/google/uuid"
	"templify/internal/models/db_models"
	"templify/internal/models/response_models"
	"templify/internal/repositories"
	"templify/pkg/utils"
)

type ReviewServiceInterface interface {
	// AddReview enforces, in order: no prior review by this user for the
	// template, then a completed purchase of it, then the rating range.
	AddReview(ctx context.Context, userID, templateID uuid.UUID, rating int, comment string) (*response_models.ReviewResponse, error)
	ListTemplateReviews(ctx context.Context, templateID uuid.UUID) ([]response_models.ReviewResponse, error)
}

type ReviewService struct {
	reviewRepo   repositories.ReviewRepository
	orderRepo    repositories.OrderRepository
	templateRepo repositories.TemplateRepository
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	orderRepo repositories.OrderRepository,
	templateRepo repositories.TemplateRepository,
) ReviewServiceInterface {
	return &ReviewService{
		reviewRepo:   reviewRepo,
		orderRepo:    orderRepo,
		templateRepo: templateRepo,
	}
}

func (s *ReviewService) AddReview(ctx context.Context, userID, templateID uuid.UUID, rating int, comment string) (*response_models.ReviewResponse, error) {
	existing, err := s.reviewRepo.GetUserReview(ctx, userID, templateID)
	if err != nil {
		log.Printf("review: lookup existing: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrDuplicateReview
	}

	purchased, err := s.orderRepo.HasCompletedPurchase(ctx, userID, templateID)
	if err != nil {
		log.Printf("review: purchase check: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if !purchased {
		return nil, utils.ErrPurchaseRequired
	}

	if rating < 1 || rating > 5 {
		return nil, utils.ErrInvalidRating
	}

	review := &db_models.Review{
		UserID:     userID,
		TemplateID: templateID,
		Rating:     rating,
		Comment:    comment,
	}
	if err := s.reviewRepo.CreateReview(ctx, review); err != nil {
		log.Printf("review: create: %v", err)
		return nil, utils.ErrDatabaseError
	}

	response := toReviewResponse(*review)
	return &response, nil
}

func (s *ReviewService) ListTemplateReviews(ctx context.Context, templateID uuid.UUID) ([]response_models.ReviewResponse, error) {
	template, err := s.templateRepo.GetTemplateByID(ctx, templateID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if template == nil {
		return nil, utils.ErrTemplateNotFound
	}

	reviews, err := s.reviewRepo.ListTemplateReviews(ctx, templateID)
	if err != nil {
		log.Printf("review: list for %s: %v", templateID, err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		responses = append(responses, toReviewResponse(review))
	}
	return responses, nil
}

func toReviewResponse(review db_models.Review) response_models.ReviewResponse {
	return response_models.ReviewResponse{
		ID:      review.ID,
		Rating:  review.Rating,
		Comment: review.Comment,
		User: response_models.ReviewerResponse{
			ID:              review.UserID,
			FirstName:       review.User.FirstName,
			LastName:        review.User.LastName,
			ProfileImageURL: review.User.ProfileImageURL,
		},
		CreatedAt: review.CreatedAt,
	}
}
