package usecase

import (
	"math/rand"
	"time"

	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	User    UserService
	Hotel   HotelService
	Room    RoomService
	Booking BookingService
	Payment PaymentService
	Review  ReviewService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	return &Service{
		Auth:    NewAuthService(repo, config, log),
		User:    NewUserService(repo, log),
		Hotel:   NewHotelService(repo, log),
		Room:    NewRoomService(repo, log),
		Booking: NewBookingService(repo, rng, log),
		Payment: NewPaymentService(repo, rng, log),
		Review:  NewReviewService(repo, log),
	}
}
