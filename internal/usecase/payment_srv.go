package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxTransactionIDAttempts = 5

type PaymentService interface {
	ProcessPayment(ctx context.Context, requesterID uuid.UUID, role string, req *request.ProcessPaymentRequest) (*response.PaymentResponse, error)
	GetPaymentByBooking(ctx context.Context, bookingID, requesterID uuid.UUID, role string) (*response.PaymentResponse, error)

	// Admin endpoints
	RefundPayment(ctx context.Context, paymentID uuid.UUID) error
}

type paymentService struct {
	repo *repository.Repository
	rng  *rand.Rand
	log  *zap.Logger
}

func NewPaymentService(repo *repository.Repository, rng *rand.Rand, log *zap.Logger) PaymentService {
	return &paymentService{
		repo: repo,
		rng:  rng,
		log:  log.With(zap.String("service", "payment")),
	}
}

func (s *paymentService) ProcessPayment(ctx context.Context, requesterID uuid.UUID, role string, req *request.ProcessPaymentRequest) (*response.PaymentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Process payment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrInvalidArgument, utils.FormatValidationErrors(errs))
	}

	bookingID, err := utils.ParseUUID(req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid booking id %s", ErrInvalidArgument, req.BookingID)
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: booking %s", ErrNotFound, bookingID)
	}

	if booking.UserID != requesterID && role != string(entity.RoleAdmin) {
		return nil, fmt.Errorf("%w: booking belongs to another user", ErrForbidden)
	}

	payment, err := s.repo.Payment.FindByBookingID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("find payment: %w", err)
	}
	if payment == nil {
		return nil, fmt.Errorf("%w: payment for booking %s", ErrNotFound, bookingID)
	}

	// Only a pending payment can be taken; completed, failed and refunded are
	// terminal.
	switch payment.Status {
	case entity.PaymentStatusPending:
	case entity.PaymentStatusCompleted:
		return nil, fmt.Errorf("%w: payment is already completed", ErrInvalidState)
	default:
		return nil, fmt.Errorf("%w: payment in status %s cannot be processed", ErrInvalidState, payment.Status)
	}

	transactionID, err := s.uniqueTransactionID(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	payment.Method = &req.Method
	payment.TransactionID = &transactionID
	payment.Status = entity.PaymentStatusCompleted
	payment.PaymentDate = &now
	payment.UpdatedAt = now
	if req.CardNumber != nil {
		last := utils.CardLastDigits(*req.CardNumber)
		payment.CardLastDigits = &last
	}

	if err := s.repo.Payment.Update(ctx, payment); err != nil {
		return nil, fmt.Errorf("update payment: %w", err)
	}

	s.log.Info("Payment processed",
		zap.String("payment_id", payment.ID.String()),
		zap.String("booking_id", bookingID.String()),
		zap.String("transaction_id", transactionID))

	resp := response.PaymentToResponse(payment)
	return &resp, nil
}

func (s *paymentService) uniqueTransactionID(ctx context.Context) (string, error) {
	for i := 0; i < maxTransactionIDAttempts; i++ {
		transactionID := utils.GenerateTransactionID(s.rng, time.Now().UnixMilli())
		existing, err := s.repo.Payment.FindByTransactionID(ctx, transactionID)
		if err != nil {
			return "", fmt.Errorf("check transaction id: %w", err)
		}
		if existing == nil {
			return transactionID, nil
		}
	}
	return "", fmt.Errorf("%w: could not allocate a unique transaction id", ErrConflict)
}

func (s *paymentService) GetPaymentByBooking(ctx context.Context, bookingID, requesterID uuid.UUID, role string) (*response.PaymentResponse, error) {
	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: booking %s", ErrNotFound, bookingID)
	}

	if booking.UserID != requesterID && role != string(entity.RoleAdmin) {
		return nil, fmt.Errorf("%w: booking belongs to another user", ErrForbidden)
	}

	payment, err := s.repo.Payment.FindByBookingID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("find payment: %w", err)
	}
	if payment == nil {
		return nil, fmt.Errorf("%w: payment for booking %s", ErrNotFound, bookingID)
	}

	resp := response.PaymentToResponse(payment)
	return &resp, nil
}

func (s *paymentService) RefundPayment(ctx context.Context, paymentID uuid.UUID) error {
	payment, err := s.repo.Payment.FindByID(ctx, paymentID)
	if err != nil {
		return fmt.Errorf("find payment: %w", err)
	}
	if payment == nil {
		return fmt.Errorf("%w: payment %s", ErrNotFound, paymentID)
	}

	if payment.Status != entity.PaymentStatusCompleted {
		return fmt.Errorf("%w: only completed payments can be refunded", ErrInvalidState)
	}

	if err := s.repo.Payment.RefundWithBookingCancel(ctx, paymentID, payment.BookingID); err != nil {
		return fmt.Errorf("refund payment: %w", err)
	}

	s.log.Info("Payment refunded",
		zap.String("payment_id", paymentID.String()),
		zap.String("booking_id", payment.BookingID.String()))
	return nil
}
