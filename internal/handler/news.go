package handler

import (
	"manufacturer-backend/internal/service"
	"net/http"

	"github.com/labstack/echo/v4"
)

type NewsHandler struct {
	newsService service.NewsService
}

func NewNewsHandler(newsService service.NewsService) *NewsHandler {
	return &NewsHandler{
		newsService: newsService,
	}
}

func (h *NewsHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	news, err := h.newsService.List(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, news)
}
