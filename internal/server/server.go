package server

import (
	"errors"
	"manufacturer-backend/internal/apperr"
	"manufacturer-backend/internal/auth"
	"manufacturer-backend/internal/handler"
	appmiddleware "manufacturer-backend/internal/middleware"
	"manufacturer-backend/internal/repository"
	"manufacturer-backend/internal/service"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo           *echo.Echo
	toolHandler    *handler.ToolHandler
	orderHandler   *handler.OrderHandler
	userHandler    *handler.UserHandler
	reviewHandler  *handler.ReviewHandler
	newsHandler    *handler.NewsHandler
	paymentHandler *handler.PaymentHandler

	requireToken echo.MiddlewareFunc
	requireAdmin echo.MiddlewareFunc
}

func NewServer(
	tokens *auth.Manager,
	userRepo repository.UserRepository,
	toolService service.ToolService,
	orderService service.OrderService,
	userService service.UserService,
	reviewService service.ReviewService,
	newsService service.NewsService,
	paymentService service.PaymentService,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = errorHandler

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:           e,
		toolHandler:    handler.NewToolHandler(toolService),
		orderHandler:   handler.NewOrderHandler(orderService),
		userHandler:    handler.NewUserHandler(userService),
		reviewHandler:  handler.NewReviewHandler(reviewService),
		newsHandler:    handler.NewNewsHandler(newsService),
		paymentHandler: handler.NewPaymentHandler(paymentService),

		requireToken: appmiddleware.RequireToken(tokens),
		requireAdmin: appmiddleware.RequireAdmin(userRepo),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	e := s.echo

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Running for Manufacturer website")
	})

	e.POST("/create-payment-intent", s.paymentHandler.CreateIntent, s.requireToken)

	// -------- tools --------
	e.GET("/tool", s.toolHandler.List)
	e.GET("/tool/:id", s.toolHandler.Get)
	e.POST("/tool", s.toolHandler.Create, s.requireToken)
	e.DELETE("/tool/:id", s.toolHandler.Delete, s.requireToken)
	e.PUT("/tool/:id", s.toolHandler.UpdateQuantity)

	// -------- orders --------
	e.POST("/order", s.orderHandler.Create)
	e.GET("/orders", s.orderHandler.ListAll)
	e.GET("/order", s.orderHandler.ListMine, s.requireToken)
	e.GET("/order/:id", s.orderHandler.Get, s.requireToken)
	e.PUT("/order/:id", s.orderHandler.MarkShipped)
	e.PATCH("/order/:id", s.orderHandler.CompletePayment, s.requireToken)
	e.DELETE("/order/:id", s.orderHandler.Delete, s.requireToken)

	// -------- users --------
	e.GET("/user", s.userHandler.List, s.requireToken)
	e.GET("/user/:email", s.userHandler.Get, s.requireToken)
	e.PUT("/user/:email", s.userHandler.Upsert)
	e.GET("/admin/:email", s.userHandler.AdminStatus)
	e.PUT("/user/admin/:email", s.userHandler.GrantAdmin, s.requireToken, s.requireAdmin)

	// -------- reviews / news --------
	e.GET("/review", s.reviewHandler.List)
	e.POST("/review", s.reviewHandler.Create)
	e.GET("/news", s.newsHandler.List)
}

// errorHandler renders the error taxonomy as a structured JSON body with
// a distinct status per kind instead of an opaque 500.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		_ = c.JSON(apperr.StatusCode(appErr), map[string]string{
			"error":   string(appErr.Kind),
			"message": appErr.Message,
		})
		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		_ = c.JSON(httpErr.Code, map[string]any{
			"error":   "http_error",
			"message": httpErr.Message,
		})
		return
	}

	c.Logger().Error(err)
	_ = c.JSON(http.StatusInternalServerError, map[string]string{
		"error":   string(apperr.KindInternal),
		"message": "internal server error",
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
