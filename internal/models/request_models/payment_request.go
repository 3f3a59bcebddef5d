package request_models

type CreatePaymentIntentRequest struct {
	TemplateIDs []string `json:"templateIds" binding:"required,min=1"`
}

type ConfirmPaymentRequest struct {
	OrderID         string `json:"orderId" binding:"required,uuid4"`
	PaymentIntentID string `json:"paymentIntentId" binding:"required"`
}
