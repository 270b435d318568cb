package adaptor

import (
	"encoding/json"
	"net/http"
	"time"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

type RoomHandler struct {
	service usecase.RoomService
	log     *zap.Logger
}

func NewRoomHandler(service usecase.RoomService, log *zap.Logger) *RoomHandler {
	return &RoomHandler{
		service: service,
		log:     log.With(zap.String("handler", "room")),
	}
}

// ListRooms handles GET /api/hotels/{id}/rooms (public)
func (h *RoomHandler) ListRooms(w http.ResponseWriter, r *http.Request) {
	hotelID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid hotel ID", nil)
		return
	}

	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("perPage"), 10),
	}

	rooms, err := h.service.ListRooms(r.Context(), hotelID, req)
	if err != nil {
		handleServiceError(w, h.log, err, "list rooms")
		return
	}

	utils.ResponseSuccess(w, "success", rooms)
}

// FindAvailableRooms handles GET /api/hotels/{id}/available-rooms (public)
func (h *RoomHandler) FindAvailableRooms(w http.ResponseWriter, r *http.Request) {
	hotelID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid hotel ID", nil)
		return
	}

	query := r.URL.Query()
	checkIn, err := time.Parse(dateLayout, query.Get("checkIn"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid checkIn date, expected YYYY-MM-DD", nil)
		return
	}
	checkOut, err := time.Parse(dateLayout, query.Get("checkOut"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid checkOut date, expected YYYY-MM-DD", nil)
		return
	}

	rooms, err := h.service.FindAvailableRooms(r.Context(), hotelID, checkIn, checkOut)
	if err != nil {
		handleServiceError(w, h.log, err, "find available rooms")
		return
	}

	utils.ResponseSuccess(w, "success", rooms)
}

// GetRoom handles GET /api/rooms/{id} (public)
func (h *RoomHandler) GetRoom(w http.ResponseWriter, r *http.Request) {
	roomID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid room ID", nil)
		return
	}

	room, err := h.service.GetRoom(r.Context(), roomID)
	if err != nil {
		handleServiceError(w, h.log, err, "get room")
		return
	}

	utils.ResponseSuccess(w, "success", room)
}

// ListRoomTypes handles GET /api/room-types (public)
func (h *RoomHandler) ListRoomTypes(w http.ResponseWriter, r *http.Request) {
	roomTypes, err := h.service.ListRoomTypes(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list room types")
		return
	}

	utils.ResponseSuccess(w, "success", roomTypes)
}

// CreateRoom handles POST /api/admin/rooms (admin)
func (h *RoomHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	room, err := h.service.CreateRoom(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create room")
		return
	}

	utils.ResponseCreated(w, "success", room)
}

// UpdateRoom handles PUT /api/admin/rooms/{id} (admin)
func (h *RoomHandler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	roomID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid room ID", nil)
		return
	}

	var req request.UpdateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	room, err := h.service.UpdateRoom(r.Context(), roomID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update room")
		return
	}

	utils.ResponseSuccess(w, "success", room)
}

// DeleteRoom handles DELETE /api/admin/rooms/{id} (admin)
func (h *RoomHandler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	roomID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid room ID", nil)
		return
	}

	if err := h.service.DeleteRoom(r.Context(), roomID); err != nil {
		handleServiceError(w, h.log, err, "delete room")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// CreateRoomType handles POST /api/admin/room-types (admin)
func (h *RoomHandler) CreateRoomType(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRoomTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	roomType, err := h.service.CreateRoomType(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create room type")
		return
	}

	utils.ResponseCreated(w, "success", roomType)
}
