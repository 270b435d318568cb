package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireHotel(
	r chi.Router,
	hotelHandler *adaptor.HotelHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/hotels", hotelHandler.ListHotels)
	r.Get("/api/hotels/{id}", hotelHandler.GetHotel)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/hotels", func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))
		r.Use(middleware.Admin(log))

		r.Post("/", hotelHandler.CreateHotel)
		r.Put("/{id}", hotelHandler.UpdateHotel)
		r.Delete("/{id}", hotelHandler.DeleteHotel)
	})
}
