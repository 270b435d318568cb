package adaptor

import (
	"errors"
	"net/http"

	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	User    *UserHandler
	Hotel   *HotelHandler
	Room    *RoomHandler
	Booking *BookingHandler
	Payment *PaymentHandler
	Review  *ReviewHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		User:    NewUserHandler(service.User, log),
		Hotel:   NewHotelHandler(service.Hotel, log),
		Room:    NewRoomHandler(service.Room, log),
		Booking: NewBookingHandler(service.Booking, log),
		Payment: NewPaymentHandler(service.Payment, log),
		Review:  NewReviewHandler(service.Review, log),
	}
}

// handleServiceError maps service errors onto HTTP status codes. Anything
// outside the known set is a 500 and gets logged with the failing operation.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, op string) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		utils.ResponseNotFound(w, err.Error())
	case errors.Is(err, usecase.ErrInvalidArgument):
		utils.ResponseBadRequest(w, err.Error(), nil)
	case errors.Is(err, usecase.ErrConflict), errors.Is(err, usecase.ErrInvalidState):
		utils.ResponseConflict(w, err.Error())
	case errors.Is(err, usecase.ErrForbidden):
		utils.ResponseForbidden(w, err.Error())
	default:
		log.Error("Service error", zap.String("operation", op), zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
