package response_models

import "github.com/google/uuid"

// MarketplaceStats is a single-snapshot read aggregation. TotalRevenue sums
// completed orders only.
type MarketplaceStats struct {
	TotalRevenue   string `json:"total_revenue"`
	TotalOrders    int64  `json:"total_orders"`
	TotalTemplates int64  `json:"total_templates"`
	TotalUsers     int64  `json:"total_users"`
}

type RecentOrderResponse struct {
	ID          uuid.UUID           `json:"id"`
	Status      string              `json:"status"`
	TotalAmount string              `json:"total_amount"`
	UserEmail   string              `json:"user_email"`
	UserName    string              `json:"user_name"`
	Items       []OrderItemResponse `json:"items"`
	CreatedAt   int64               `json:"created_at"`
}
