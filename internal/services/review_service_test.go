package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"templify/internal/models/db_models"
	"templify/pkg/utils"
)

func newReviewFixture() (*fakeTemplateRepo, *fakeOrderRepo, *fakeReviewRepo, ReviewServiceInterface) {
	templateRepo := newFakeTemplateRepo()
	orderRepo := newFakeOrderRepo(templateRepo)
	reviewRepo := newFakeReviewRepo()
	service := NewReviewService(reviewRepo, orderRepo, templateRepo)
	return templateRepo, orderRepo, reviewRepo, service
}

func completedOrderFor(orderRepo *fakeOrderRepo, userID uuid.UUID, templateID uuid.UUID) {
	order := &db_models.Order{
		UserID:      userID,
		Status:      db_models.OrderStatusCompleted,
		TotalAmount: decimal.RequireFromString("10.00"),
	}
	_ = orderRepo.CreateOrderWithItems(context.Background(), order, []db_models.OrderItem{
		{TemplateID: templateID, Price: decimal.RequireFromString("10.00")},
	})
}

func TestAddReviewRequiresCompletedPurchase(t *testing.T) {
	templateRepo, _, _, service := newReviewFixture()
	template := templateRepo.add(activeTemplate("t1", "10.00"))

	_, err := service.AddReview(context.Background(), uuid.New(), template.ID, 5, "great")
	assert.ErrorIs(t, err, utils.ErrPurchaseRequired)
}

func TestAddReviewOncePerUserPerTemplate(t *testing.T) {
	templateRepo, orderRepo, _, service := newReviewFixture()
	template := templateRepo.add(activeTemplate("t1", "10.00"))
	userID := uuid.New()
	completedOrderFor(orderRepo, userID, template.ID)

	review, err := service.AddReview(context.Background(), userID, template.ID, 4, "solid")
	require.NoError(t, err)
	assert.Equal(t, 4, review.Rating)

	_, err = service.AddReview(context.Background(), userID, template.ID, 5, "changed my mind")
	assert.ErrorIs(t, err, utils.ErrDuplicateReview)
}

func TestAddReviewRatingBounds(t *testing.T) {
	templateRepo, orderRepo, _, service := newReviewFixture()
	template := templateRepo.add(activeTemplate("t1", "10.00"))
	userID := uuid.New()
	completedOrderFor(orderRepo, userID, template.ID)

	for _, rating := range []int{0, -1, 6, 100} {
		_, err := service.AddReview(context.Background(), userID, template.ID, rating, "")
		assert.ErrorIs(t, err, utils.ErrInvalidRating, "rating %d", rating)
	}

	_, err := service.AddReview(context.Background(), userID, template.ID, 1, "")
	assert.NoError(t, err)
}

func TestAddReviewPendingOrderDoesNotCount(t *testing.T) {
	templateRepo, orderRepo, _, service := newReviewFixture()
	template := templateRepo.add(activeTemplate("t1", "10.00"))
	userID := uuid.New()

	order := &db_models.Order{
		UserID:      userID,
		Status:      db_models.OrderStatusPending,
		TotalAmount: decimal.RequireFromString("10.00"),
	}
	_ = orderRepo.CreateOrderWithItems(context.Background(), order, []db_models.OrderItem{
		{TemplateID: template.ID, Price: decimal.RequireFromString("10.00")},
	})

	_, err := service.AddReview(context.Background(), userID, template.ID, 5, "")
	assert.ErrorIs(t, err, utils.ErrPurchaseRequired)
}

func TestListTemplateReviewsUnknownTemplate(t *testing.T) {
	_, _, _, service := newReviewFixture()

	_, err := service.ListTemplateReviews(context.Background(), uuid.New())
	assert.ErrorIs(t, err, utils.ErrTemplateNotFound)
}

func TestListTemplateReviews(t *testing.T) {
	templateRepo, orderRepo, _, service := newReviewFixture()
	template := templateRepo.add(activeTemplate("t1", "10.00"))
	other := templateRepo.add(activeTemplate("t2", "15.00"))

	first := uuid.New()
	second := uuid.New()
	completedOrderFor(orderRepo, first, template.ID)
	completedOrderFor(orderRepo, second, template.ID)
	completedOrderFor(orderRepo, second, other.ID)

	_, err := service.AddReview(context.Background(), first, template.ID, 5, "love it")
	require.NoError(t, err)
	_, err = service.AddReview(context.Background(), second, template.ID, 3, "fine")
	require.NoError(t, err)
	_, err = service.AddReview(context.Background(), second, other.ID, 4, "")
	require.NoError(t, err)

	reviews, err := service.ListTemplateReviews(context.Background(), template.ID)
	require.NoError(t, err)
	assert.Len(t, reviews, 2)
}
