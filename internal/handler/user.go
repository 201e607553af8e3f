package handler

import (
	"manufacturer-backend/internal/apperr"
	"manufacturer-backend/internal/dto"
	"manufacturer-backend/internal/service"
	"net/http"

	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Upsert doubles as registration and login: it writes the profile and
// always answers with a fresh access token for the target email.
func (h *UserHandler) Upsert(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.UpsertUserRequest
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("invalid request body")
	}

	user, token, err := h.userService.Upsert(ctx, c.Param("email"), req.Name, req.Photo)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"result":      user,
		"accessToken": token,
	})
}

func (h *UserHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := h.userService.Get(ctx, c.Param("email"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	users, err := h.userService.List(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, users)
}

func (h *UserHandler) GrantAdmin(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.userService.GrantAdmin(ctx, c.Param("email")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"role": "admin"})
}

func (h *UserHandler) AdminStatus(c echo.Context) error {
	ctx := c.Request().Context()

	isAdmin, err := h.userService.IsAdmin(ctx, c.Param("email"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.AdminStatusResponse{Admin: isAdmin})
}
