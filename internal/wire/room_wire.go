package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRoom(
	r chi.Router,
	roomHandler *adaptor.RoomHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/hotels/{id}/rooms", roomHandler.ListRooms)
	r.Get("/api/hotels/{id}/available-rooms", roomHandler.FindAvailableRooms)
	r.Get("/api/rooms/{id}", roomHandler.GetRoom)
	r.Get("/api/room-types", roomHandler.ListRoomTypes)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))
		r.Use(middleware.Admin(log))

		r.Post("/api/admin/rooms", roomHandler.CreateRoom)
		r.Put("/api/admin/rooms/{id}", roomHandler.UpdateRoom)
		r.Delete("/api/admin/rooms/{id}", roomHandler.DeleteRoom)
		r.Post("/api/admin/room-types", roomHandler.CreateRoomType)
	})
}
