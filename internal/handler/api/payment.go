package api

import (
	"errors"
	"net/http"

	reqdto "doctors-portal/internal/handler/dto/request"
	resdto "doctors-portal/internal/handler/dto/response"
	"doctors-portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentUseCase usecase.PaymentUseCase
}

func NewPaymentHandler(paymentUseCase usecase.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{
		paymentUseCase: paymentUseCase,
	}
}

// @Summary Create payment intent
// @Description Create a card payment intent for the given price
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePaymentIntentRequest true "Payment amount"
// @Success 200 {object} resdto.PaymentIntentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /payments/intent [post]
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var req reqdto.CreatePaymentIntentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	clientSecret, err := h.paymentUseCase.CreatePaymentIntent(c.Request.Context(), req.Price)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPaymentUpstream):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Payment processor unavailable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, &resdto.PaymentIntentResponse{ClientSecret: clientSecret})
}
