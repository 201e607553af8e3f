package handler

import (
	"manufacturer-backend/internal/apperr"
	"manufacturer-backend/internal/dto"
	"manufacturer-backend/internal/middleware"
	"manufacturer-backend/internal/model"
	"manufacturer-backend/internal/service"
	"net/http"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

func (h *OrderHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var order model.Order
	if err := c.Bind(&order); err != nil {
		return apperr.BadRequest("invalid request body")
	}

	created, err := h.orderService.Create(ctx, &order)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, created)
}

func (h *OrderHandler) ListAll(c echo.Context) error {
	ctx := c.Request().Context()

	orders, err := h.orderService.List(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, orders)
}

// ListMine serves /order?userEmail=X. A mismatch between the queried
// email and the verified identity is forbidden, not an empty result.
func (h *OrderHandler) ListMine(c echo.Context) error {
	ctx := c.Request().Context()

	userEmail := c.QueryParam("userEmail")
	if userEmail != middleware.EmailFromContext(c) {
		return apperr.Forbidden("forbidden access")
	}

	orders, err := h.orderService.ListByUserEmail(ctx, userEmail)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	order, err := h.orderService.Get(ctx, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.orderService.Delete(ctx, c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.DeleteResponse{Deleted: true})
}

func (h *OrderHandler) MarkShipped(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.orderService.MarkShipped(ctx, c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "SHIPPED"})
}

func (h *OrderHandler) CompletePayment(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CompletePaymentRequest
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("invalid request body")
	}

	order, err := h.orderService.CompletePayment(ctx,
		c.Param("id"), req.TransactionID, req.UserEmail, req.Amount)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, order)
}
