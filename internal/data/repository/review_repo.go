package repository

import (
	"context"
	"errors"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Review, error)
	FindApprovedByHotelID(ctx context.Context, hotelID uuid.UUID, limit, offset int) ([]*entity.Review, error)
	CountApprovedByHotelID(ctx context.Context, hotelID uuid.UUID) (int64, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Review, error)
	FindPending(ctx context.Context, limit, offset int) ([]*entity.Review, error)
	Update(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Stats
	GetHotelRatingStats(ctx context.Context, hotelID uuid.UUID) (float64, int64, error) // avg, count
	CountByHotelIDAndRating(ctx context.Context, hotelID uuid.UUID, rating int) (int64, error)
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

const reviewColumns = `id, booking_id, user_id, hotel_id, rating, comment, date_posted, is_approved, response, created_at`

func scanReview(row pgx.Row) (*entity.Review, error) {
	var review entity.Review
	err := row.Scan(
		&review.ID,
		&review.BookingID,
		&review.UserID,
		&review.HotelID,
		&review.Rating,
		&review.Comment,
		&review.DatePosted,
		&review.IsApproved,
		&review.Response,
		&review.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, booking_id, user_id, hotel_id, rating, comment, date_posted, is_approved, response, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		review.ID,
		review.BookingID,
		review.UserID,
		review.HotelID,
		review.Rating,
		review.Comment,
		review.DatePosted,
		review.IsApproved,
		review.Response,
		review.CreatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return ErrDuplicateReview
		}
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("booking_id", review.BookingID.String()),
		)
		return fmt.Errorf("create review for booking %s: %w", review.BookingID.String(), err)
	}

	return nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE id = $1`

	review, err := scanReview(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by ID",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return nil, fmt.Errorf("find review by ID %s: %w", id.String(), err)
	}

	return review, nil
}

func (r *reviewRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE booking_id = $1`

	review, err := scanReview(r.db.QueryRow(ctx, query, bookingID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by booking ID",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find review by booking ID %s: %w", bookingID.String(), err)
	}

	return review, nil
}

func (r *reviewRepository) FindApprovedByHotelID(ctx context.Context, hotelID uuid.UUID, limit, offset int) ([]*entity.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE hotel_id = $1 AND is_approved = true
		ORDER BY date_posted DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, hotelID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find reviews by hotel ID",
			zap.Error(err),
			zap.String("hotel_id", hotelID.String()),
		)
		return nil, fmt.Errorf("find reviews by hotel ID %s: %w", hotelID.String(), err)
	}
	defer rows.Close()

	var reviews []*entity.Review
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, review)
	}

	return reviews, nil
}

func (r *reviewRepository) CountApprovedByHotelID(ctx context.Context, hotelID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM reviews WHERE hotel_id = $1 AND is_approved = true`

	var count int64
	err := r.db.QueryRow(ctx, query, hotelID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count reviews by hotel ID",
			zap.Error(err),
			zap.String("hotel_id", hotelID.String()),
		)
		return 0, fmt.Errorf("count reviews by hotel ID %s: %w", hotelID.String(), err)
	}

	return count, nil
}

func (r *reviewRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE user_id = $1
		ORDER BY date_posted DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find reviews by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find reviews by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var reviews []*entity.Review
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, review)
	}

	return reviews, nil
}

func (r *reviewRepository) FindPending(ctx context.Context, limit, offset int) ([]*entity.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE is_approved = false
		ORDER BY date_posted
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find pending reviews", zap.Error(err))
		return nil, fmt.Errorf("find pending reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*entity.Review
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, review)
	}

	return reviews, nil
}

func (r *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	query := `
		UPDATE reviews
		SET rating = $2, comment = $3, is_approved = $4, response = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		review.ID,
		review.Rating,
		review.Comment,
		review.IsApproved,
		review.Response,
	)

	if err != nil {
		r.log.Error("Failed to update review",
			zap.Error(err),
			zap.String("review_id", review.ID.String()),
		)
		return fmt.Errorf("update review %s: %w", review.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %s not found", review.ID.String())
	}

	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM reviews WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete review",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return fmt.Errorf("delete review %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %s not found", id.String())
	}

	r.log.Info("Review deleted", zap.String("review_id", id.String()))
	return nil
}

func (r *reviewRepository) GetHotelRatingStats(ctx context.Context, hotelID uuid.UUID) (float64, int64, error) {
	query := `
		SELECT
			COALESCE(AVG(rating), 0) as avg_rating,
			COUNT(*) as review_count
		FROM reviews
		WHERE hotel_id = $1 AND is_approved = true
	`

	var avgRating float64
	var reviewCount int64
	err := r.db.QueryRow(ctx, query, hotelID).Scan(&avgRating, &reviewCount)
	if err != nil {
		r.log.Error("Failed to get hotel rating stats",
			zap.Error(err),
			zap.String("hotel_id", hotelID.String()),
		)
		return 0, 0, fmt.Errorf("get rating stats for hotel %s: %w", hotelID.String(), err)
	}

	return avgRating, reviewCount, nil
}

func (r *reviewRepository) CountByHotelIDAndRating(ctx context.Context, hotelID uuid.UUID, rating int) (int64, error) {
	query := `SELECT COUNT(*) FROM reviews WHERE hotel_id = $1 AND rating = $2 AND is_approved = true`

	var count int64
	err := r.db.QueryRow(ctx, query, hotelID, rating).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count reviews by rating",
			zap.Error(err),
			zap.String("hotel_id", hotelID.String()),
			zap.Int("rating", rating),
		)
		return 0, fmt.Errorf("count reviews for hotel %s rating %d: %w", hotelID.String(), rating, err)
	}

	return count, nil
}
