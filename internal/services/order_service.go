package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"templify/internal/models/db_models"
	"templify/internal/models/response_models"
	"templify/internal/repositories"
	"templify/pkg/utils"
)

type OrderServiceInterface interface {
	// CreateCheckout re-validates every template id, snapshots current
	// prices into order items, persists the pending order atomically and
	// opens a payment intent with the processor.
	CreateCheckout(ctx context.Context, userID uuid.UUID, templateIDs []string) (*response_models.CheckoutResponse, error)
	// ConfirmPayment verifies the intent with the processor and completes
	// the order. Confirming an already-completed order is a success no-op.
	ConfirmPayment(ctx context.Context, userID, orderID uuid.UUID, paymentIntentID string) (*response_models.OrderResponse, error)
	ListUserOrders(ctx context.Context, userID uuid.UUID) ([]response_models.OrderResponse, error)
	ListUserPurchases(ctx context.Context, userID uuid.UUID) ([]response_models.TemplateResponse, error)
}

type OrderService struct {
	orderRepo    repositories.OrderRepository
	templateRepo repositories.TemplateRepository
	provider     PaymentProvider
	mail         MailServiceInterface
}

func NewOrderService(
	orderRepo repositories.OrderRepository,
	templateRepo repositories.TemplateRepository,
	provider PaymentProvider,
	mail MailServiceInterface,
) OrderServiceInterface {
	return &OrderService{
		orderRepo:    orderRepo,
		templateRepo: templateRepo,
		provider:     provider,
		mail:         mail,
	}
}

func (s *OrderService) CreateCheckout(ctx context.Context, userID uuid.UUID, templateIDs []string) (*response_models.CheckoutResponse, error) {
	if len(templateIDs) == 0 {
		return nil, utils.ErrEmptyCart
	}

	ids := make([]uuid.UUID, 0, len(templateIDs))
	for _, raw := range templateIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", utils.ErrTemplateNotFound, raw)
		}
		ids = append(ids, id)
	}

	templates, err := s.templateRepo.GetTemplatesByIDs(ctx, ids)
	if err != nil {
		log.Printf("checkout: load templates: %v", err)
		return nil, utils.ErrDatabaseError
	}
	byID := make(map[uuid.UUID]db_models.Template, len(templates))
	for _, template := range templates {
		byID[template.ID] = template
	}

	// If any id no longer resolves the whole checkout fails; no partial
	// order may exist.
	total := decimal.Zero
	items := make([]db_models.OrderItem, 0, len(ids))
	for _, id := range ids {
		template, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", utils.ErrTemplateNotFound, id)
		}
		items = append(items, db_models.OrderItem{
			TemplateID: template.ID,
			Price:      template.Price,
		})
		total = total.Add(template.Price)
	}

	order := &db_models.Order{
		UserID:      userID,
		Status:      db_models.OrderStatusPending,
		TotalAmount: total,
	}
	if err := s.orderRepo.CreateOrderWithItems(ctx, order, items); err != nil {
		log.Printf("checkout: create order: %v", err)
		return nil, utils.ErrDatabaseError
	}

	// Processor failure leaves the order pending; the client retries
	// intent creation, nothing is retried here.
	intent, err := s.provider.CreateIntent(ctx, utils.MinorUnits(total), order.ID)
	if err != nil {
		log.Printf("checkout: create intent for order %s: %v", order.ID, err)
		return nil, fmt.Errorf("%w: %v", utils.ErrPaymentProvider, err)
	}

	if err := s.orderRepo.SetPaymentIntent(ctx, order.ID, intent.ID); err != nil {
		log.Printf("checkout: store intent id for order %s: %v", order.ID, err)
		return nil, utils.ErrDatabaseError
	}

	return &response_models.CheckoutResponse{
		ClientSecret: intent.ClientSecret,
		OrderID:      order.ID,
		TotalAmount:  total.StringFixed(2),
	}, nil
}

func (s *OrderService) ConfirmPayment(ctx context.Context, userID, orderID uuid.UUID, paymentIntentID string) (*response_models.OrderResponse, error) {
	order, err := s.orderRepo.GetOrderWithItems(ctx, orderID)
	if err != nil {
		log.Printf("confirm: load order %s: %v", orderID, err)
		return nil, utils.ErrDatabaseError
	}
	if order == nil || order.UserID != userID {
		return nil, utils.ErrOrderNotFound
	}

	// Idempotency: a second confirmation of a completed order succeeds
	// without touching download counters again.
	if order.Status == db_models.OrderStatusCompleted {
		response := toOrderResponse(*order)
		return &response, nil
	}
	if order.Status != db_models.OrderStatusPending {
		return nil, utils.ErrOrderNotPayable
	}

	if order.StripePaymentIntentID == "" || order.StripePaymentIntentID != paymentIntentID {
		return nil, utils.ErrPaymentMismatch
	}

	succeeded, err := s.provider.IntentSucceeded(ctx, paymentIntentID)
	if err != nil {
		log.Printf("confirm: query intent %s: %v", paymentIntentID, err)
		return nil, fmt.Errorf("%w: %v", utils.ErrPaymentProvider, err)
	}
	if !succeeded {
		return nil, utils.ErrPaymentNotSucceeded
	}

	won, err := s.orderRepo.CompleteOrder(ctx, orderID)
	if err != nil {
		log.Printf("confirm: complete order %s: %v", orderID, err)
		return nil, utils.ErrDatabaseError
	}

	if won && s.mail != nil {
		names := make([]string, 0, len(order.Items))
		for _, item := range order.Items {
			names = append(names, item.Template.Name)
		}
		go func(email string, orderID uuid.UUID, total string) {
			if err := s.mail.SendPurchaseConfirmation(email, orderID.String(), names, total); err != nil {
				log.Printf("confirm: send mail for order %s: %v", orderID, err)
			}
		}(order.User.Email, orderID, order.TotalAmount.StringFixed(2))
	}

	order.Status = db_models.OrderStatusCompleted
	response := toOrderResponse(*order)
	return &response, nil
}

func (s *OrderService) ListUserOrders(ctx context.Context, userID uuid.UUID) ([]response_models.OrderResponse, error) {
	orders, err := s.orderRepo.ListUserOrders(ctx, userID)
	if err != nil {
		log.Printf("list orders for %s: %v", userID, err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.OrderResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, toOrderResponse(order))
	}
	return responses, nil
}

func (s *OrderService) ListUserPurchases(ctx context.Context, userID uuid.UUID) ([]response_models.TemplateResponse, error) {
	templates, err := s.orderRepo.ListUserPurchases(ctx, userID)
	if err != nil {
		log.Printf("list purchases for %s: %v", userID, err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.TemplateResponse, 0, len(templates))
	for _, template := range templates {
		responses = append(responses, toTemplateResponse(repositories.TemplateWithStats{Template: template}, nil))
	}
	return responses, nil
}

func toOrderResponse(order db_models.Order) response_models.OrderResponse {
	items := make([]response_models.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, response_models.OrderItemResponse{
			ID:           item.ID,
			TemplateID:   item.TemplateID,
			Price:        item.Price.StringFixed(2),
			TemplateName: item.Template.Name,
		})
	}
	return response_models.OrderResponse{
		ID:          order.ID,
		Status:      string(order.Status),
		TotalAmount: order.TotalAmount.StringFixed(2),
		Items:       items,
		CreatedAt:   order.CreatedAt,
	}
}
