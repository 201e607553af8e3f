package handler

import (
	"manufacturer-backend/internal/apperr"
	"manufacturer-backend/internal/model"
	"manufacturer-backend/internal/service"
	"net/http"

	"github.com/labstack/echo/v4"
)

type ReviewHandler struct {
	reviewService service.ReviewService
}

func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

func (h *ReviewHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	reviews, err := h.reviewService.List(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var review model.Review
	if err := c.Bind(&review); err != nil {
		return apperr.BadRequest("invalid request body")
	}

	created, result, err := h.reviewService.Create(ctx, &review)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": created,
		"review":  result,
	})
}
