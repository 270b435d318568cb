package adaptor

import (
	"encoding/json"
	"net/http"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type HotelHandler struct {
	service usecase.HotelService
	log     *zap.Logger
}

func NewHotelHandler(service usecase.HotelService, log *zap.Logger) *HotelHandler {
	return &HotelHandler{
		service: service,
		log:     log.With(zap.String("handler", "hotel")),
	}
}

// ListHotels handles GET /api/hotels (public)
func (h *HotelHandler) ListHotels(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("perPage"), 10),
	}

	hotels, err := h.service.ListHotels(r.Context(), query.Get("city"), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list hotels")
		return
	}

	utils.ResponseSuccess(w, "success", hotels)
}

// GetHotel handles GET /api/hotels/{id} (public)
func (h *HotelHandler) GetHotel(w http.ResponseWriter, r *http.Request) {
	hotelID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid hotel ID", nil)
		return
	}

	hotel, err := h.service.GetHotel(r.Context(), hotelID)
	if err != nil {
		handleServiceError(w, h.log, err, "get hotel")
		return
	}

	utils.ResponseSuccess(w, "success", hotel)
}

// CreateHotel handles POST /api/admin/hotels (admin)
func (h *HotelHandler) CreateHotel(w http.ResponseWriter, r *http.Request) {
	var req request.CreateHotelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	hotel, err := h.service.CreateHotel(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create hotel")
		return
	}

	utils.ResponseCreated(w, "success", hotel)
}

// UpdateHotel handles PUT /api/admin/hotels/{id} (admin)
func (h *HotelHandler) UpdateHotel(w http.ResponseWriter, r *http.Request) {
	hotelID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid hotel ID", nil)
		return
	}

	var req request.UpdateHotelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	hotel, err := h.service.UpdateHotel(r.Context(), hotelID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update hotel")
		return
	}

	utils.ResponseSuccess(w, "success", hotel)
}

// DeleteHotel handles DELETE /api/admin/hotels/{id} (admin)
func (h *HotelHandler) DeleteHotel(w http.ResponseWriter, r *http.Request) {
	hotelID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid hotel ID", nil)
		return
	}

	if err := h.service.DeleteHotel(r.Context(), hotelID); err != nil {
		handleServiceError(w, h.log, err, "delete hotel")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
