package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"templify/internal/models/db_models"
)

func TestGetStatsRevenueCountsCompletedOnly(t *testing.T) {
	templateRepo := newFakeTemplateRepo()
	orderRepo := newFakeOrderRepo(templateRepo)
	adminRepo := &fakeAdminRepo{orderRepo: orderRepo, userCount: 3}
	service := NewAdminService(adminRepo, orderRepo)

	templateRepo.add(activeTemplate("t1", "10.00"))
	templateRepo.add(activeTemplate("t2", "15.00"))

	addOrder := func(status db_models.OrderStatus, amount string) {
		order := &db_models.Order{
			UserID:      uuid.New(),
			Status:      status,
			TotalAmount: decimal.RequireFromString(amount),
		}
		require.NoError(t, orderRepo.CreateOrderWithItems(context.Background(), order, nil))
	}
	addOrder(db_models.OrderStatusCompleted, "10.00")
	addOrder(db_models.OrderStatusCompleted, "15.50")
	addOrder(db_models.OrderStatusPending, "99.00")
	addOrder(db_models.OrderStatusCancelled, "42.00")
	addOrder(db_models.OrderStatusRefunded, "13.00")

	stats, err := service.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "25.50", stats.TotalRevenue)
	assert.Equal(t, int64(5), stats.TotalOrders)
	assert.Equal(t, int64(2), stats.TotalTemplates)
	assert.Equal(t, int64(3), stats.TotalUsers)
}

func TestRecentOrdersIncludesBuyerIdentity(t *testing.T) {
	templateRepo := newFakeTemplateRepo()
	orderRepo := newFakeOrderRepo(templateRepo)
	adminRepo := &fakeAdminRepo{orderRepo: orderRepo}
	service := NewAdminService(adminRepo, orderRepo)

	buyer := db_models.User{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		Email:     "buyer@example.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
	}
	orderRepo.users[buyer.ID] = buyer

	template := templateRepo.add(activeTemplate("t1", "10.00"))
	order := &db_models.Order{
		UserID:      buyer.ID,
		Status:      db_models.OrderStatusCompleted,
		TotalAmount: decimal.RequireFromString("10.00"),
	}
	require.NoError(t, orderRepo.CreateOrderWithItems(context.Background(), order, []db_models.OrderItem{
		{TemplateID: template.ID, Price: decimal.RequireFromString("10.00")},
	}))

	orders, err := service.RecentOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "buyer@example.com", orders[0].UserEmail)
	assert.Equal(t, "Ada Lovelace", orders[0].UserName)
	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, "10.00", orders[0].Items[0].Price)
}

func TestRecentOrdersLimitedToTen(t *testing.T) {
	templateRepo := newFakeTemplateRepo()
	orderRepo := newFakeOrderRepo(templateRepo)
	adminRepo := &fakeAdminRepo{orderRepo: orderRepo}
	service := NewAdminService(adminRepo, orderRepo)

	for i := 0; i < 14; i++ {
		order := &db_models.Order{
			UserID:      uuid.New(),
			Status:      db_models.OrderStatusCompleted,
			TotalAmount: decimal.RequireFromString("1.00"),
		}
		require.NoError(t, orderRepo.CreateOrderWithItems(context.Background(), order, nil))
	}

	orders, err := service.RecentOrders(context.Background())
	require.NoError(t, err)
	assert.Len(t, orders, 10)
}
