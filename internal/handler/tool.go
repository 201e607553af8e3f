package handler

import (
	"manufacturer-backend/internal/apperr"
	"manufacturer-backend/internal/dto"
	"manufacturer-backend/internal/model"
	"manufacturer-backend/internal/service"
	"net/http"

	"github.com/labstack/echo/v4"
)

type ToolHandler struct {
	toolService service.ToolService
}

func NewToolHandler(toolService service.ToolService) *ToolHandler {
	return &ToolHandler{
		toolService: toolService,
	}
}

func (h *ToolHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	tools, err := h.toolService.List(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tools)
}

func (h *ToolHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	tool, err := h.toolService.Get(ctx, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tool)
}

func (h *ToolHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var tool model.Tool
	if err := c.Bind(&tool); err != nil {
		return apperr.BadRequest("invalid request body")
	}

	created, err := h.toolService.Create(ctx, &tool)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, created)
}

func (h *ToolHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.toolService.Delete(ctx, c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.DeleteResponse{Deleted: true})
}

func (h *ToolHandler) UpdateQuantity(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.UpdateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("invalid request body")
	}

	tool, err := h.toolService.UpdateQuantity(ctx, c.Param("id"), req.Quantity)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tool)
}
