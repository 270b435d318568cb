package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	dateLayout           = "2006-01-02"
	maxReferenceAttempts = 5
)

type BookingService interface {
	CreateBooking(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetUserBookings(ctx context.Context, userID uuid.UUID, status string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetBooking(ctx context.Context, bookingID, requesterID uuid.UUID, role string) (*response.BookingResponse, error)
	GetBookingByReference(ctx context.Context, reference string, requesterID uuid.UUID, role string) (*response.BookingResponse, error)
	CancelBooking(ctx context.Context, bookingID, requesterID uuid.UUID, role string) error
	CheckAvailability(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (bool, error)

	// Admin endpoints
	UpdateBookingStatus(ctx context.Context, bookingID uuid.UUID, req *request.UpdateBookingStatusRequest) error
	GetHotelBookings(ctx context.Context, hotelID uuid.UUID, start, end time.Time) ([]response.BookingResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	rng  *rand.Rand
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, rng *rand.Rand, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		rng:  rng,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrInvalidArgument, utils.FormatValidationErrors(errs))
	}

	roomID, err := utils.ParseUUID(req.RoomID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid room id %s", ErrInvalidArgument, req.RoomID)
	}

	checkIn, err := time.Parse(dateLayout, req.CheckInDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid check-in date %s", ErrInvalidArgument, req.CheckInDate)
	}
	checkOut, err := time.Parse(dateLayout, req.CheckOutDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid check-out date %s", ErrInvalidArgument, req.CheckOutDate)
	}

	if !checkOut.After(checkIn) {
		return nil, fmt.Errorf("%w: check-out must be after check-in", ErrInvalidArgument)
	}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if checkIn.Before(today) {
		return nil, fmt.Errorf("%w: check-in date is in the past", ErrInvalidArgument)
	}

	room, err := s.repo.Room.FindByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("find room: %w", err)
	}
	if room == nil {
		return nil, fmt.Errorf("%w: room %s", ErrNotFound, roomID)
	}
	if room.Status == entity.RoomStatusMaintenance {
		return nil, fmt.Errorf("%w: room is under maintenance", ErrInvalidState)
	}

	hotel, err := s.repo.Hotel.FindByID(ctx, room.HotelID)
	if err != nil {
		return nil, fmt.Errorf("find hotel: %w", err)
	}
	if hotel == nil {
		return nil, fmt.Errorf("%w: hotel %s", ErrNotFound, room.HotelID)
	}
	if hotel.Status != entity.HotelStatusActive {
		return nil, fmt.Errorf("%w: hotel is not accepting bookings", ErrInvalidState)
	}

	if req.Adults+req.Children > room.Capacity {
		return nil, fmt.Errorf("%w: party of %d exceeds room capacity %d",
			ErrInvalidArgument, req.Adults+req.Children, room.Capacity)
	}

	// Fast pre-check; the insert transaction rechecks under a row lock, so a
	// race between two bookings still cannot double-book the room.
	booked, err := s.repo.Booking.IsRoomBooked(ctx, roomID, checkIn, checkOut)
	if err != nil {
		return nil, fmt.Errorf("check availability: %w", err)
	}
	if booked {
		return nil, fmt.Errorf("%w: room is not available for the selected dates", ErrConflict)
	}

	nights := int64(checkOut.Sub(checkIn).Hours() / 24)
	totalPrice := room.PricePerNight.Mul(decimal.NewFromInt(nights))

	reference, err := s.uniqueReference(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	booking := &entity.Booking{
		BookingReference: reference,
		UserID:           userID,
		RoomID:           roomID,
		CheckInDate:      checkIn,
		CheckOutDate:     checkOut,
		Adults:           req.Adults,
		Children:         req.Children,
		TotalPrice:       totalPrice,
		Status:           entity.BookingStatusConfirmed,
	}
	booking.ID = utils.GenerateUUID()
	booking.CreatedAt = now
	booking.UpdatedAt = now
	booking.SpecialRequests = req.SpecialRequests

	payment := &entity.Payment{
		BookingID: booking.ID,
		Amount:    totalPrice,
		Status:    entity.PaymentStatusPending,
	}
	payment.ID = utils.GenerateUUID()
	payment.CreatedAt = now
	payment.UpdatedAt = now

	if err := s.repo.Booking.CreateWithPayment(ctx, booking, payment); err != nil {
		if errors.Is(err, repository.ErrRoomUnavailable) {
			return nil, fmt.Errorf("%w: room is not available for the selected dates", ErrConflict)
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("reference", reference),
		zap.String("room_id", roomID.String()))

	paymentResp := response.PaymentToResponse(payment)
	resp := response.BookingToResponse(booking, room.RoomNumber, hotel.Name, &paymentResp)
	return &resp, nil
}

// uniqueReference draws references until one is free. Collisions in an
// 8-digit space are rare enough that running out of attempts means something
// is broken upstream.
func (s *bookingService) uniqueReference(ctx context.Context) (string, error) {
	for i := 0; i < maxReferenceAttempts; i++ {
		reference := utils.GenerateBookingReference(s.rng)
		existing, err := s.repo.Booking.FindByReference(ctx, reference)
		if err != nil {
			return "", fmt.Errorf("check reference: %w", err)
		}
		if existing == nil {
			return reference, nil
		}
	}
	return "", fmt.Errorf("%w: could not allocate a unique booking reference", ErrConflict)
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID uuid.UUID, status string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	if status != "" {
		if !entity.ValidBookingStatus(entity.BookingStatus(status)) {
			return nil, fmt.Errorf("%w: unknown status %s", ErrInvalidArgument, status)
		}

		bookings, err := s.repo.Booking.FindByUserIDAndStatus(ctx, userID, entity.BookingStatus(status))
		if err != nil {
			return nil, fmt.Errorf("list bookings: %w", err)
		}

		items, err := s.toResponses(ctx, bookings)
		if err != nil {
			return nil, err
		}
		return response.NewPaginatedResponse(items, 1, len(items), int64(len(items))), nil
	}

	bookings, err := s.repo.Booking.FindByUserID(ctx, userID, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	total, err := s.repo.Booking.CountByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	items, err := s.toResponses(ctx, bookings)
	if err != nil {
		return nil, err
	}
	return response.NewPaginatedResponse(items, req.Page, req.Limit(), total), nil
}

func (s *bookingService) GetBooking(ctx context.Context, bookingID, requesterID uuid.UUID, role string) (*response.BookingResponse, error) {
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

	return s.toResponse(ctx, booking)
}

func (s *bookingService) GetBookingByReference(ctx context.Context, reference string, requesterID uuid.UUID, role string) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByReference(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: booking %s", ErrNotFound, reference)
	}

	if booking.UserID != requesterID && role != string(entity.RoleAdmin) {
		return nil, fmt.Errorf("%w: booking belongs to another user", ErrForbidden)
	}

	return s.toResponse(ctx, booking)
}

func (s *bookingService) CancelBooking(ctx context.Context, bookingID, requesterID uuid.UUID, role string) error {
	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return fmt.Errorf("%w: booking %s", ErrNotFound, bookingID)
	}

	if booking.UserID != requesterID && role != string(entity.RoleAdmin) {
		return fmt.Errorf("%w: booking belongs to another user", ErrForbidden)
	}

	switch booking.Status {
	case entity.BookingStatusConfirmed:
		// cancellable
	case entity.BookingStatusCancelled:
		return fmt.Errorf("%w: booking is already cancelled", ErrInvalidState)
	default:
		return fmt.Errorf("%w: booking in status %s cannot be cancelled", ErrInvalidState, booking.Status)
	}

	if err := s.repo.Booking.CancelWithRefund(ctx, bookingID); err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}

	s.log.Info("Booking cancelled",
		zap.String("booking_id", bookingID.String()),
		zap.String("reference", booking.BookingReference))
	return nil
}

func (s *bookingService) CheckAvailability(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (bool, error) {
	if !checkOut.After(checkIn) {
		return false, fmt.Errorf("%w: check-out must be after check-in", ErrInvalidArgument)
	}

	room, err := s.repo.Room.FindByID(ctx, roomID)
	if err != nil {
		return false, fmt.Errorf("find room: %w", err)
	}
	if room == nil {
		return false, fmt.Errorf("%w: room %s", ErrNotFound, roomID)
	}

	booked, err := s.repo.Booking.IsRoomBooked(ctx, roomID, checkIn, checkOut)
	if err != nil {
		return false, fmt.Errorf("check availability: %w", err)
	}
	return !booked, nil
}

func (s *bookingService) UpdateBookingStatus(ctx context.Context, bookingID uuid.UUID, req *request.UpdateBookingStatusRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidArgument, utils.FormatValidationErrors(errs))
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return fmt.Errorf("%w: booking %s", ErrNotFound, bookingID)
	}

	status := entity.BookingStatus(req.Status)

	// The override is unconditional, but cancellation still runs through the
	// refund coupling so a completed payment cannot stay completed on a
	// cancelled booking.
	if status == entity.BookingStatusCancelled {
		return s.repo.Booking.CancelWithRefund(ctx, bookingID)
	}

	if err := s.repo.Booking.UpdateStatus(ctx, bookingID, status); err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}

	s.log.Info("Booking status updated",
		zap.String("booking_id", bookingID.String()),
		zap.String("from", string(booking.Status)),
		zap.String("to", string(status)))
	return nil
}

func (s *bookingService) GetHotelBookings(ctx context.Context, hotelID uuid.UUID, start, end time.Time) ([]response.BookingResponse, error) {
	hotel, err := s.repo.Hotel.FindByID(ctx, hotelID)
	if err != nil {
		return nil, fmt.Errorf("find hotel: %w", err)
	}
	if hotel == nil {
		return nil, fmt.Errorf("%w: hotel %s", ErrNotFound, hotelID)
	}

	bookings, err := s.repo.Booking.FindByHotelAndDateRange(ctx, hotelID, start, end)
	if err != nil {
		return nil, fmt.Errorf("list hotel bookings: %w", err)
	}

	return s.toResponses(ctx, bookings)
}

func (s *bookingService) toResponse(ctx context.Context, booking *entity.Booking) (*response.BookingResponse, error) {
	var roomNumber, hotelName string

	room, err := s.repo.Room.FindByID(ctx, booking.RoomID)
	if err != nil {
		return nil, fmt.Errorf("find room: %w", err)
	}
	if room != nil {
		roomNumber = room.RoomNumber
		hotel, err := s.repo.Hotel.FindByID(ctx, room.HotelID)
		if err != nil {
			return nil, fmt.Errorf("find hotel: %w", err)
		}
		if hotel != nil {
			hotelName = hotel.Name
		}
	}

	var paymentResp *response.PaymentResponse
	payment, err := s.repo.Payment.FindByBookingID(ctx, booking.ID)
	if err != nil {
		return nil, fmt.Errorf("find payment: %w", err)
	}
	if payment != nil {
		p := response.PaymentToResponse(payment)
		paymentResp = &p
	}

	resp := response.BookingToResponse(booking, roomNumber, hotelName, paymentResp)
	return &resp, nil
}

func (s *bookingService) toResponses(ctx context.Context, bookings []*entity.Booking) ([]response.BookingResponse, error) {
	items := make([]response.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		resp, err := s.toResponse(ctx, booking)
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}
	return items, nil
}
