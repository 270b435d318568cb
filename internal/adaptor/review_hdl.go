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

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// SubmitReview handles POST /api/reviews (protected)
func (h *ReviewHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.SubmitReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	review, err := h.service.SubmitReview(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "submit review")
		return
	}

	utils.ResponseCreated(w, "success", review)
}

// GetHotelReviews handles GET /api/hotels/{id}/reviews (public)
func (h *ReviewHandler) GetHotelReviews(w http.ResponseWriter, r *http.Request) {
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

	reviews, err := h.service.GetHotelReviews(r.Context(), hotelID, req)
	if err != nil {
		handleServiceError(w, h.log, err, "get hotel reviews")
		return
	}

	utils.ResponseSuccess(w, "success", reviews)
}

// GetHotelReviewStats handles GET /api/hotels/{id}/reviews/stats (public)
func (h *ReviewHandler) GetHotelReviewStats(w http.ResponseWriter, r *http.Request) {
	hotelID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid hotel ID", nil)
		return
	}

	stats, err := h.service.GetHotelReviewStats(r.Context(), hotelID)
	if err != nil {
		handleServiceError(w, h.log, err, "get hotel review stats")
		return
	}

	utils.ResponseSuccess(w, "success", stats)
}

// GetUserReviews handles GET /api/user/reviews (protected)
func (h *ReviewHandler) GetUserReviews(w http.ResponseWriter, r *http.Request) {
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

	reviews, err := h.service.GetUserReviews(r.Context(), userID, req)
	if err != nil {
		handleServiceError(w, h.log, err, "get user reviews")
		return
	}

	utils.ResponseSuccess(w, "success", reviews)
}

// DeleteReview handles DELETE /api/reviews/{id} (protected)
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}
	role, _ := utils.GetRoleFromContext(r.Context())

	reviewID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid review ID", nil)
		return
	}

	if err := h.service.DeleteReview(r.Context(), reviewID, userID, role); err != nil {
		handleServiceError(w, h.log, err, "delete review")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// GetPendingReviews handles GET /api/admin/reviews/pending (admin)
func (h *ReviewHandler) GetPendingReviews(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("perPage"), 10),
	}

	reviews, err := h.service.GetPendingReviews(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get pending reviews")
		return
	}

	utils.ResponseSuccess(w, "success", reviews)
}

// ApproveReview handles POST /api/admin/reviews/{id}/approve (admin)
func (h *ReviewHandler) ApproveReview(w http.ResponseWriter, r *http.Request) {
	reviewID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid review ID", nil)
		return
	}

	if err := h.service.ApproveReview(r.Context(), reviewID); err != nil {
		handleServiceError(w, h.log, err, "approve review")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// AddManagementResponse handles POST /api/admin/reviews/{id}/response (admin)
func (h *ReviewHandler) AddManagementResponse(w http.ResponseWriter, r *http.Request) {
	reviewID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid review ID", nil)
		return
	}

	var req request.ManagementResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	review, err := h.service.AddManagementResponse(r.Context(), reviewID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "add management response")
		return
	}

	utils.ResponseSuccess(w, "success", review)
}
