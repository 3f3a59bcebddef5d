package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"templify/internal/models/db_models"
)

type OrderRepository interface {
	// CreateOrderWithItems persists the order and every item in one
	// transaction; either everything commits or nothing does.
	CreateOrderWithItems(ctx context.Context, order *db_models.Order, items []db_models.OrderItem) error
	GetOrderWithItems(ctx context.Context, id uuid.UUID) (*db_models.Order, error)
	SetPaymentIntent(ctx context.Context, orderID uuid.UUID, intentID string) error
	// CompleteOrder flips pending->completed and increments downloads for
	// every ordered template. Returns false when the order was no longer
	// pending, in which case nothing was incremented.
	CompleteOrder(ctx context.Context, orderID uuid.UUID) (bool, error)
	ListUserOrders(ctx context.Context, userID uuid.UUID) ([]db_models.Order, error)
	ListUserPurchases(ctx context.Context, userID uuid.UUID) ([]db_models.Template, error)
	HasCompletedPurchase(ctx context.Context, userID, templateID uuid.UUID) (bool, error)
	ListRecentOrders(ctx context.Context, limit int) ([]db_models.Order, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) CreateOrderWithItems(ctx context.Context, order *db_models.Order, items []db_models.OrderItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *orderRepository) GetOrderWithItems(ctx context.Context, id uuid.UUID) (*db_models.Order, error) {
	var order db_models.Order
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Items").
		Preload("Items.Template").
		First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) SetPaymentIntent(ctx context.Context, orderID uuid.UUID, intentID string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Order{}).
		Where("id = ?", orderID).
		Update("stripe_payment_intent_id", intentID).Error
}

func (r *orderRepository) CompleteOrder(ctx context.Context, orderID uuid.UUID) (bool, error) {
	won := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Compare-and-swap on status: only the request that flips the row
		// out of pending runs the download increments.
		result := tx.Model(&db_models.Order{}).
			Where("id = ? AND status = ?", orderID, db_models.OrderStatusPending).
			Update("status", db_models.OrderStatusCompleted)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		won = true

		var items []db_models.OrderItem
		if err := tx.Where("order_id = ?", orderID).Find(&items).Error; err != nil {
			return err
		}
		for _, item := range items {
			if err := tx.Model(&db_models.Template{}).
				Where("id = ?", item.TemplateID).
				UpdateColumn("downloads", gorm.Expr("downloads + 1")).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return won, err
}

func (r *orderRepository) ListUserOrders(ctx context.Context, userID uuid.UUID) ([]db_models.Order, error) {
	var orders []db_models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Template").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) ListUserPurchases(ctx context.Context, userID uuid.UUID) ([]db_models.Template, error) {
	var templates []db_models.Template
	err := r.db.WithContext(ctx).
		Table("templates").
		Select("DISTINCT templates.*").
		Joins("JOIN order_items ON order_items.template_id = templates.id").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.user_id = ? AND orders.status = ?", userID, db_models.OrderStatusCompleted).
		Find(&templates).Error
	return templates, err
}

func (r *orderRepository) HasCompletedPurchase(ctx context.Context, userID, templateID uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Table("order_items").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.user_id = ? AND orders.status = ? AND order_items.template_id = ?",
			userID, db_models.OrderStatusCompleted, templateID).
		Count(&n).Error
	return n > 0, err
}

func (r *orderRepository) ListRecentOrders(ctx context.Context, limit int) ([]db_models.Order, error) {
	var orders []db_models.Order
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Items").
		Preload("Items.Template").
		Order("created_at DESC").
		Limit(limit).
		Find(&orders).Error
	return orders, err
}
