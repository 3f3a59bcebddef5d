package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"net/http"
	"templify/internal/models/request_models"
	"templify/internal/services"
	"templify/pkg/utils"
)

type OrderController struct {
	orderService services.OrderServiceInterface
}

func NewOrderController(orderService services.OrderServiceInterface) *OrderController {
	return &OrderController{
		orderService: orderService,
	}
}

func (o *OrderController) CreatePaymentIntent(c *gin.Context) {
	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	var request request_models.CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Template IDs are required")
		return
	}

	checkout, err := o.orderService.CreateCheckout(c.Request.Context(), userID, request.TemplateIDs)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, checkout, "Payment intent created successfully")
}

func (o *OrderController) ConfirmPayment(c *gin.Context) {
	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	var request request_models.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Order ID and payment intent ID are required")
		return
	}

	orderID, err := uuid.Parse(request.OrderID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid order ID")
		return
	}

	order, err := o.orderService.ConfirmPayment(c.Request.Context(), userID, orderID, request.PaymentIntentID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, order, "Payment confirmed")
}

func (o *OrderController) MyOrders(c *gin.Context) {
	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	orders, err := o.orderService.ListUserOrders(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, orders, "Orders fetched successfully")
}

func (o *OrderController) MyPurchases(c *gin.Context) {
	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	purchases, err := o.orderService.ListUserPurchases(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, purchases, "Purchases fetched successfully")
}
