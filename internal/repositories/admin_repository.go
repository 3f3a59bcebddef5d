package repositories

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"templify/internal/models/db_models"
)

type AdminRepository interface {
	// CompletedRevenue sums total_amount over completed orders only;
	// pending, cancelled and refunded orders never contribute.
	CompletedRevenue(ctx context.Context) (decimal.Decimal, error)
	CountOrders(ctx context.Context) (int64, error)
	CountTemplates(ctx context.Context) (int64, error)
	CountUsers(ctx context.Context) (int64, error)
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) CompletedRevenue(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&db_models.Order{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("status = ?", db_models.OrderStatusCompleted).
		Scan(&total).Error
	return total, err
}

func (r *adminRepository) CountOrders(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.Order{}).Count(&n).Error
	return n, err
}

func (r *adminRepository) CountTemplates(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.Template{}).Count(&n).Error
	return n, err
}

func (r *adminRepository) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.User{}).Count(&n).Error
	return n, err
}
