package handler

import (
	"manufacturer-backend/internal/apperr"
	"manufacturer-backend/internal/dto"
	"manufacturer-backend/internal/service"
	"net/http"

	"github.com/labstack/echo/v4"
)

type PaymentHandler struct {
	paymentService service.PaymentService
}

func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.PaymentIntentRequest
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("invalid request body")
	}

	clientSecret, err := h.paymentService.CreateIntent(ctx, req.UpdatedPrice)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.PaymentIntentResponse{ClientSecret: clientSecret})
}
