package response_models

import "github.com/google/uuid"

// CheckoutResponse hands the Stripe client secret back to the browser so it
// can finish the charge through the processor UI.
type CheckoutResponse struct {
	ClientSecret string    `json:"client_secret"`
	OrderID      uuid.UUID `json:"order_id"`
	TotalAmount  string    `json:"total_amount"`
}

type OrderItemResponse struct {
	ID         uuid.UUID `json:"id"`
	TemplateID uuid.UUID `json:"template_id"`
	// Price snapshot taken at order creation.
	Price        string `json:"price"`
	TemplateName string `json:"template_name,omitempty"`
}

type OrderResponse struct {
	ID          uuid.UUID           `json:"id"`
	Status      string              `json:"status"`
	TotalAmount string              `json:"total_amount"`
	Items       []OrderItemResponse `json:"items,omitempty"`
	CreatedAt   int64               `json:"created_at"`
}
