package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewService interface {
	SubmitReview(ctx context.Context, userID uuid.UUID, req *request.SubmitReviewRequest) (*response.ReviewResponse, error)
	GetHotelReviews(ctx context.Context, hotelID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error)
	GetUserReviews(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) ([]response.ReviewResponse, error)
	GetHotelReviewStats(ctx context.Context, hotelID uuid.UUID) (*response.HotelReviewStats, error)
	DeleteReview(ctx context.Context, reviewID, requesterID uuid.UUID, role string) error

	// Admin endpoints
	GetPendingReviews(ctx context.Context, req *request.PaginatedRequest) ([]response.ReviewResponse, error)
	ApproveReview(ctx context.Context, reviewID uuid.UUID) error
	AddManagementResponse(ctx context.Context, reviewID uuid.UUID, req *request.ManagementResponseRequest) (*response.ReviewResponse, error)
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) SubmitReview(ctx context.Context, userID uuid.UUID, req *request.SubmitReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Submit review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrInvalidArgument, utils.FormatValidationErrors(errs))
	}

	bookingID, err := utils.ParseUUID(req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid booking id %s", ErrInvalidArgument, req.BookingID)
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: booking %s", ErrNotFound, bookingID)
	}

	if booking.UserID != userID {
		return nil, fmt.Errorf("%w: booking belongs to another user", ErrForbidden)
	}

	if booking.Status != entity.BookingStatusCheckedOut {
		return nil, fmt.Errorf("%w: only completed stays can be reviewed", ErrInvalidState)
	}

	existing, err := s.repo.Review.FindByBookingID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("check review: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: booking already has a review", ErrInvalidState)
	}

	room, err := s.repo.Room.FindByID(ctx, booking.RoomID)
	if err != nil {
		return nil, fmt.Errorf("find room: %w", err)
	}
	if room == nil {
		return nil, fmt.Errorf("%w: room %s", ErrNotFound, booking.RoomID)
	}

	// Direct submissions are published immediately; moderation can pull one
	// back by toggling the flag.
	now := time.Now()
	review := &entity.Review{
		BookingID:  bookingID,
		UserID:     userID,
		HotelID:    room.HotelID,
		Rating:     req.Rating,
		Comment:    req.Comment,
		DatePosted: now,
		IsApproved: true,
	}
	review.ID = utils.GenerateUUID()
	review.CreatedAt = now

	if err := s.repo.Review.Create(ctx, review); err != nil {
		// The pre-check above races with concurrent submissions; the unique
		// index on booking_id is the backstop.
		if errors.Is(err, repository.ErrDuplicateReview) {
			return nil, fmt.Errorf("%w: booking already has a review", ErrInvalidState)
		}
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review submitted",
		zap.String("review_id", review.ID.String()),
		zap.String("booking_id", bookingID.String()),
		zap.Int("rating", req.Rating))

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) GetHotelReviews(ctx context.Context, hotelID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	hotel, err := s.repo.Hotel.FindByID(ctx, hotelID)
	if err != nil {
		return nil, fmt.Errorf("find hotel: %w", err)
	}
	if hotel == nil {
		return nil, fmt.Errorf("%w: hotel %s", ErrNotFound, hotelID)
	}

	reviews, err := s.repo.Review.FindApprovedByHotelID(ctx, hotelID, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	total, err := s.repo.Review.CountApprovedByHotelID(ctx, hotelID)
	if err != nil {
		return nil, fmt.Errorf("count reviews: %w", err)
	}

	items := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		items[i] = response.ReviewToResponse(review)
	}

	return response.NewPaginatedResponse(items, req.Page, req.Limit(), total), nil
}

func (s *reviewService) GetUserReviews(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) ([]response.ReviewResponse, error) {
	reviews, err := s.repo.Review.FindByUserID(ctx, userID, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list user reviews: %w", err)
	}

	items := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		items[i] = response.ReviewToResponse(review)
	}
	return items, nil
}

func (s *reviewService) GetHotelReviewStats(ctx context.Context, hotelID uuid.UUID) (*response.HotelReviewStats, error) {
	hotel, err := s.repo.Hotel.FindByID(ctx, hotelID)
	if err != nil {
		return nil, fmt.Errorf("find hotel: %w", err)
	}
	if hotel == nil {
		return nil, fmt.Errorf("%w: hotel %s", ErrNotFound, hotelID)
	}

	avg, count, err := s.repo.Review.GetHotelRatingStats(ctx, hotelID)
	if err != nil {
		return nil, fmt.Errorf("rating stats: %w", err)
	}

	distribution := make(map[int]int64, 5)
	for rating := 1; rating <= 5; rating++ {
		n, err := s.repo.Review.CountByHotelIDAndRating(ctx, hotelID, rating)
		if err != nil {
			return nil, fmt.Errorf("rating distribution: %w", err)
		}
		distribution[rating] = n
	}

	return &response.HotelReviewStats{
		HotelID:       hotelID.String(),
		AverageRating: avg,
		ReviewCount:   count,
		Distribution:  distribution,
	}, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, reviewID, requesterID uuid.UUID, role string) error {
	review, err := s.repo.Review.FindByID(ctx, reviewID)
	if err != nil {
		return fmt.Errorf("find review: %w", err)
	}
	if review == nil {
		return fmt.Errorf("%w: review %s", ErrNotFound, reviewID)
	}

	if review.UserID != requesterID && role != string(entity.RoleAdmin) {
		return fmt.Errorf("%w: review belongs to another user", ErrForbidden)
	}

	if err := s.repo.Review.Delete(ctx, reviewID); err != nil {
		return fmt.Errorf("delete review: %w", err)
	}

	s.log.Info("Review deleted", zap.String("review_id", reviewID.String()))
	return nil
}

func (s *reviewService) GetPendingReviews(ctx context.Context, req *request.PaginatedRequest) ([]response.ReviewResponse, error) {
	reviews, err := s.repo.Review.FindPending(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list pending reviews: %w", err)
	}

	items := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		items[i] = response.ReviewToResponse(review)
	}
	return items, nil
}

func (s *reviewService) ApproveReview(ctx context.Context, reviewID uuid.UUID) error {
	review, err := s.repo.Review.FindByID(ctx, reviewID)
	if err != nil {
		return fmt.Errorf("find review: %w", err)
	}
	if review == nil {
		return fmt.Errorf("%w: review %s", ErrNotFound, reviewID)
	}

	review.IsApproved = true
	if err := s.repo.Review.Update(ctx, review); err != nil {
		return fmt.Errorf("update review: %w", err)
	}

	s.log.Info("Review approved", zap.String("review_id", reviewID.String()))
	return nil
}

func (s *reviewService) AddManagementResponse(ctx context.Context, reviewID uuid.UUID, req *request.ManagementResponseRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidArgument, utils.FormatValidationErrors(errs))
	}

	review, err := s.repo.Review.FindByID(ctx, reviewID)
	if err != nil {
		return nil, fmt.Errorf("find review: %w", err)
	}
	if review == nil {
		return nil, fmt.Errorf("%w: review %s", ErrNotFound, reviewID)
	}

	review.Response = &req.Response
	if err := s.repo.Review.Update(ctx, review); err != nil {
		return nil, fmt.Errorf("update review: %w", err)
	}

	resp := response.ReviewToResponse(review)
	return &resp, nil
}
