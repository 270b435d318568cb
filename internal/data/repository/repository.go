package repository

import (
	"errors"

	"hotel-booking/pkg/database"

	"go.uber.org/zap"
)

// ErrRoomUnavailable is returned by BookingRepository.CreateWithPayment when
// an overlapping blocking booking is found inside the insert transaction.
var ErrRoomUnavailable = errors.New("room is not available for the selected dates")

// ErrDuplicateReview is returned by ReviewRepository.Create when the unique
// index on reviews.booking_id rejects a second review for the same booking.
var ErrDuplicateReview = errors.New("booking already has a review")

type Repository struct {
	User     UserRepository
	Hotel    HotelRepository
	RoomType RoomTypeRepository
	Room     RoomRepository
	Booking  BookingRepository
	Payment  PaymentRepository
	Review   ReviewRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Hotel:    NewHotelRepository(db, log),
		RoomType: NewRoomTypeRepository(db, log),
		Room:     NewRoomRepository(db, log),
		Booking:  NewBookingRepository(db, log),
		Payment:  NewPaymentRepository(db, log),
		Review:   NewReviewRepository(db, log),
	}
}
