package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/hotels/{id}/reviews", reviewHandler.GetHotelReviews)
	r.Get("/api/hotels/{id}/reviews/stats", reviewHandler.GetHotelReviewStats)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))

		r.Post("/api/reviews", reviewHandler.SubmitReview)
		r.Get("/api/user/reviews", reviewHandler.GetUserReviews)
		r.Delete("/api/reviews/{id}", reviewHandler.DeleteReview)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/reviews", func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))
		r.Use(middleware.Admin(log))

		r.Get("/pending", reviewHandler.GetPendingReviews)
		r.Post("/{id}/approve", reviewHandler.ApproveReview)
		r.Post("/{id}/response", reviewHandler.AddManagementResponse)
	})
}
