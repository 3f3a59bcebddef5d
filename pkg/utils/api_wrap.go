package utils

import (
	"errors"
	"github.com/gin-gonic/gin"
	"log"
	"net/http"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError translates service sentinels into the HTTP taxonomy:
// 400 validation, 403 authorization, 404 not found, 409 conflict,
// 502 payment provider, 500 everything else.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrTemplateNotFound),
		errors.Is(err, ErrCategoryNotFound),
		errors.Is(err, ErrOrderNotFound),
		errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrDuplicateReview), errors.Is(err, ErrOrderNotPayable):
		RespondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrPurchaseRequired), errors.Is(err, ErrForbidden):
		RespondError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrInvalidRating),
		errors.Is(err, ErrEmptyCart),
		errors.Is(err, ErrInvalidSort),
		errors.Is(err, ErrInvalidPrice),
		errors.Is(err, ErrInvalidUpload),
		errors.Is(err, ErrPaymentNotSucceeded),
		errors.Is(err, ErrPaymentMismatch):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrPaymentProvider):
		log.Printf("Payment provider error: %v", err)
		RespondError(c, http.StatusBadGateway, err.Error())
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
