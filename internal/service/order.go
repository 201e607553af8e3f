package service

import (
	"context"
	"errors"
	"manufacturer-backend/internal/apperr"
	"manufacturer-backend/internal/model"
	"manufacturer-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderService interface {
	Create(ctx context.Context, order *model.Order) (*model.Order, error)
	List(ctx context.Context) ([]*model.Order, error)
	ListByUserEmail(ctx context.Context, userEmail string) ([]*model.Order, error)
	Get(ctx context.Context, orderID string) (*model.Order, error)
	Delete(ctx context.Context, orderID string) error
	MarkShipped(ctx context.Context, orderID string) error
	// CompletePayment records the charge and flips the order to paid in
	// one transaction; either both happen or neither does.
	CompletePayment(ctx context.Context, orderID, transactionID, userEmail string, amount float64) (*model.Order, error)
}

type orderServiceImpl struct {
	db          *gorm.DB
	orderRepo   repository.OrderRepository
	paymentRepo repository.PaymentRepository
}

func NewOrderService(
	db *gorm.DB,
	orderRepo repository.OrderRepository,
	paymentRepo repository.PaymentRepository,
) OrderService {
	return &orderServiceImpl{
		db:          db,
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
	}
}

func (s *orderServiceImpl) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	if order.UserEmail == "" {
		return nil, apperr.BadRequest("userEmail is required")
	}
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	if order.Status == "" {
		order.Status = "pending"
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

func (s *orderServiceImpl) List(ctx context.Context) ([]*model.Order, error) {
	return s.orderRepo.List(ctx)
}

func (s *orderServiceImpl) ListByUserEmail(ctx context.Context, userEmail string) ([]*model.Order, error) {
	return s.orderRepo.ListByUserEmail(ctx, userEmail)
}

func (s *orderServiceImpl) Get(ctx context.Context, orderID string) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("order not found")
	}
	if err != nil {
		return nil, err
	}

	return order, nil
}

func (s *orderServiceImpl) Delete(ctx context.Context, orderID string) error {
	err := s.orderRepo.Delete(ctx, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("order not found")
	}

	return err
}

func (s *orderServiceImpl) MarkShipped(ctx context.Context, orderID string) error {
	err := s.orderRepo.MarkShipped(ctx, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("order not found")
	}

	return err
}

func (s *orderServiceImpl) CompletePayment(ctx context.Context, orderID, transactionID, userEmail string, amount float64) (*model.Order, error) {
	if transactionID == "" {
		return nil, apperr.BadRequest("transactionId is required")
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.paymentRepo.Create(ctx, tx, &model.Payment{
			ID:            uuid.NewString(),
			OrderID:       orderID,
			TransactionID: transactionID,
			UserEmail:     userEmail,
			Amount:        amount,
		}); err != nil {
			return err
		}

		return s.orderRepo.MarkPaid(ctx, tx, orderID, transactionID)
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("order not found")
	}
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, orderID)
}
