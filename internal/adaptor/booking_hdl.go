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

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /api/bookings (protected)
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "success", booking)
}

// GetUserBookings handles GET /api/bookings (protected)
func (h *BookingHandler) GetUserBookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("perPage"), 10),
	}

	bookings, err := h.service.GetUserBookings(r.Context(), userID, query.Get("status"), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get user bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetBooking handles GET /api/bookings/{id} (protected)
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}
	role, _ := utils.GetRoleFromContext(r.Context())

	bookingID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid booking ID", nil)
		return
	}

	booking, err := h.service.GetBooking(r.Context(), bookingID, userID, role)
	if err != nil {
		handleServiceError(w, h.log, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// GetBookingByReference handles GET /api/bookings/reference/{reference} (protected)
func (h *BookingHandler) GetBookingByReference(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}
	role, _ := utils.GetRoleFromContext(r.Context())

	booking, err := h.service.GetBookingByReference(r.Context(), chi.URLParam(r, "reference"), userID, role)
	if err != nil {
		handleServiceError(w, h.log, err, "get booking by reference")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// CancelBooking handles POST /api/bookings/{id}/cancel (protected)
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}
	role, _ := utils.GetRoleFromContext(r.Context())

	bookingID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid booking ID", nil)
		return
	}

	if err := h.service.CancelBooking(r.Context(), bookingID, userID, role); err != nil {
		handleServiceError(w, h.log, err, "cancel booking")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// CheckAvailability handles GET /api/rooms/{id}/availability (public)
func (h *BookingHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	roomID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid room ID", nil)
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

	available, err := h.service.CheckAvailability(r.Context(), roomID, checkIn, checkOut)
	if err != nil {
		handleServiceError(w, h.log, err, "check availability")
		return
	}

	utils.ResponseSuccess(w, "success", map[string]bool{"available": available})
}

// UpdateBookingStatus handles PUT /api/admin/bookings/{id}/status (admin)
func (h *BookingHandler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	bookingID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid booking ID", nil)
		return
	}

	var req request.UpdateBookingStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.UpdateBookingStatus(r.Context(), bookingID, &req); err != nil {
		handleServiceError(w, h.log, err, "update booking status")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// GetHotelBookings handles GET /api/admin/hotels/{id}/bookings (admin)
func (h *BookingHandler) GetHotelBookings(w http.ResponseWriter, r *http.Request) {
	hotelID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid hotel ID", nil)
		return
	}

	query := r.URL.Query()
	start, err := time.Parse(dateLayout, query.Get("start"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid start date, expected YYYY-MM-DD", nil)
		return
	}
	end, err := time.Parse(dateLayout, query.Get("end"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid end date, expected YYYY-MM-DD", nil)
		return
	}

	bookings, err := h.service.GetHotelBookings(r.Context(), hotelID, start, end)
	if err != nil {
		handleServiceError(w, h.log, err, "get hotel bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}
