package services

import (
	"context"
	"log"
	"strings"

	"templify/internal/models/response_models"
	"templify/internal/repositories"
	"templify/pkg/utils"
)

const recentOrdersLimit = 10

type AdminServiceInterface interface {
	GetStats(ctx context.Context) (*response_models.MarketplaceStats, error)
	RecentOrders(ctx context.Context) ([]response_models.RecentOrderResponse, error)
}

type AdminService struct {
	adminRepo repositories.AdminRepository
	orderRepo repositories.OrderRepository
}

func NewAdminService(adminRepo repositories.AdminRepository, orderRepo repositories.OrderRepository) AdminServiceInterface {
	return &AdminService{
		adminRepo: adminRepo,
		orderRepo: orderRepo,
	}
}

func (s *AdminService) GetStats(ctx context.Context) (*response_models.MarketplaceStats, error) {
	revenue, err := s.adminRepo.CompletedRevenue(ctx)
	if err != nil {
		log.Printf("stats: revenue: %v", err)
		return nil, utils.ErrDatabaseError
	}
	orders, err := s.adminRepo.CountOrders(ctx)
	if err != nil {
		log.Printf("stats: orders: %v", err)
		return nil, utils.ErrDatabaseError
	}
	templates, err := s.adminRepo.CountTemplates(ctx)
	if err != nil {
		log.Printf("stats: templates: %v", err)
		return nil, utils.ErrDatabaseError
	}
	users, err := s.adminRepo.CountUsers(ctx)
	if err != nil {
		log.Printf("stats: users: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return &response_models.MarketplaceStats{
		TotalRevenue:   revenue.StringFixed(2),
		TotalOrders:    orders,
		TotalTemplates: templates,
		TotalUsers:     users,
	}, nil
}

func (s *AdminService) RecentOrders(ctx context.Context) ([]response_models.RecentOrderResponse, error) {
	orders, err := s.orderRepo.ListRecentOrders(ctx, recentOrdersLimit)
	if err != nil {
		log.Printf("recent orders: %v", err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.RecentOrderResponse, 0, len(orders))
	for _, order := range orders {
		items := make([]response_models.OrderItemResponse, 0, len(order.Items))
		for _, item := range order.Items {
			items = append(items, response_models.OrderItemResponse{
				ID:           item.ID,
				TemplateID:   item.TemplateID,
				Price:        item.Price.StringFixed(2),
				TemplateName: item.Template.Name,
			})
		}
		responses = append(responses, response_models.RecentOrderResponse{
			ID:          order.ID,
			Status:      string(order.Status),
			TotalAmount: order.TotalAmount.StringFixed(2),
			UserEmail:   order.User.Email,
			UserName:    strings.TrimSpace(order.User.FirstName + " " + order.User.LastName),
			Items:       items,
			CreatedAt:   order.CreatedAt,
		})
	}
	return responses, nil
}
