package repository

import (
	"context"
	"fmt"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByReference(ctx context.Context, reference string) (*entity.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	FindByUserIDAndStatus(ctx context.Context, userID uuid.UUID, status entity.BookingStatus) ([]*entity.Booking, error)
	FindByHotelAndDateRange(ctx context.Context, hotelID uuid.UUID, start, end time.Time) ([]*entity.Booking, error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error

	// Business queries
	IsRoomBooked(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (bool, error)

	// Transactional operations
	CreateWithPayment(ctx context.Context, booking *entity.Booking, payment *entity.Payment) error
	CancelWithRefund(ctx context.Context, bookingID uuid.UUID) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, booking_reference, user_id, room_id, check_in_date, check_out_date, adults, children, total_price, status, special_requests, created_at, updated_at`

// overlapCondition is the inclusive overlap rule shared by the availability
// check and the insert transaction. Cancelled and no-show bookings do not
// block the room.
const overlapCondition = `status NOT IN ('cancelled', 'no_show') AND check_in_date <= $3 AND check_out_date >= $2`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.BookingReference,
		&booking.UserID,
		&booking.RoomID,
		&booking.CheckInDate,
		&booking.CheckOutDate,
		&booking.Adults,
		&booking.Children,
		&booking.TotalPrice,
		&booking.Status,
		&booking.SpecialRequests,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByReference(ctx context.Context, reference string) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE booking_reference = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, reference))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by reference",
			zap.Error(err),
			zap.String("booking_reference", reference),
		)
		return nil, fmt.Errorf("find booking by reference %s: %w", reference, err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1
		ORDER BY check_in_date DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find bookings by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

func (r *bookingRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE user_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count bookings by user ID %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *bookingRepository) FindByUserIDAndStatus(ctx context.Context, userID uuid.UUID, status entity.BookingStatus) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1 AND status = $2
		ORDER BY check_in_date DESC
	`

	rows, err := r.db.Query(ctx, query, userID, status)
	if err != nil {
		r.log.Error("Failed to find bookings by user ID and status",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("status", string(status)),
		)
		return nil, fmt.Errorf("find bookings by user %s and status %s: %w", userID.String(), string(status), err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

func (r *bookingRepository) FindByHotelAndDateRange(ctx context.Context, hotelID uuid.UUID, start, end time.Time) ([]*entity.Booking, error) {
	query := `
		SELECT b.id, b.booking_reference, b.user_id, b.room_id, b.check_in_date, b.check_out_date,
		       b.adults, b.children, b.total_price, b.status, b.special_requests, b.created_at, b.updated_at
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		WHERE r.hotel_id = $1 AND b.check_in_date >= $2 AND b.check_in_date <= $3
		ORDER BY b.check_in_date
	`

	rows, err := r.db.Query(ctx, query, hotelID, start, end)
	if err != nil {
		r.log.Error("Failed to find bookings by hotel and date range",
			zap.Error(err),
			zap.String("hotel_id", hotelID.String()),
			zap.Time("start", start),
			zap.Time("end", end),
		)
		return nil, fmt.Errorf("find bookings by hotel %s and date range: %w", hotelID.String(), err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, bookingID, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", bookingID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", bookingID.String())
	}

	return nil
}

// IsRoomBooked is a point-in-time availability check. The authoritative check
// runs again inside CreateWithPayment under a room row lock.
func (r *bookingRepository) IsRoomBooked(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM bookings WHERE room_id = $1 AND ` + overlapCondition + `)`

	var booked bool
	err := r.db.QueryRow(ctx, query, roomID, checkIn, checkOut).Scan(&booked)
	if err != nil {
		r.log.Error("Failed to check room availability",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
		)
		return false, fmt.Errorf("check availability of room %s: %w", roomID.String(), err)
	}

	return booked, nil
}

// CreateWithPayment inserts a booking together with its pending payment in one
// transaction. The room row is locked first and the overlap check re-runs
// under the lock, so two concurrent requests for the same room cannot both
// pass the availability check and insert.
func (r *bookingRepository) CreateWithPayment(ctx context.Context, booking *entity.Booking, payment *entity.Payment) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create booking tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var roomID uuid.UUID
	err = tx.QueryRow(ctx, `SELECT id FROM rooms WHERE id = $1 FOR UPDATE`, booking.RoomID).Scan(&roomID)
	if err == pgx.ErrNoRows {
		return fmt.Errorf("room %s not found", booking.RoomID.String())
	}
	if err != nil {
		return fmt.Errorf("lock room %s: %w", booking.RoomID.String(), err)
	}

	var booked bool
	err = tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM bookings WHERE room_id = $1 AND `+overlapCondition+`)`,
		booking.RoomID, booking.CheckInDate, booking.CheckOutDate,
	).Scan(&booked)
	if err != nil {
		return fmt.Errorf("recheck availability of room %s: %w", booking.RoomID.String(), err)
	}
	if booked {
		return ErrRoomUnavailable
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO bookings (id, booking_reference, user_id, room_id, check_in_date, check_out_date,
		                      adults, children, total_price, status, special_requests, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		booking.ID,
		booking.BookingReference,
		booking.UserID,
		booking.RoomID,
		booking.CheckInDate,
		booking.CheckOutDate,
		booking.Adults,
		booking.Children,
		booking.TotalPrice,
		booking.Status,
		booking.SpecialRequests,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to insert booking",
			zap.Error(err),
			zap.String("booking_reference", booking.BookingReference),
		)
		return fmt.Errorf("insert booking %s: %w", booking.BookingReference, err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO payments (id, booking_id, amount, payment_method, transaction_id, status,
		                      payment_date, card_last_digits, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		payment.ID,
		payment.BookingID,
		payment.Amount,
		payment.Method,
		payment.TransactionID,
		payment.Status,
		payment.PaymentDate,
		payment.CardLastDigits,
		payment.CreatedAt,
		payment.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to insert payment for booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("insert payment for booking %s: %w", booking.ID.String(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create booking tx: %w", err)
	}

	return nil
}

// CancelWithRefund marks the booking cancelled and refunds its completed
// payment, if any, in one transaction.
func (r *bookingRepository) CancelWithRefund(ctx context.Context, bookingID uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin cancel booking tx: %w", err)
	}
	defer tx.Rollback(ctx)

	result, err := tx.Exec(ctx,
		`UPDATE bookings SET status = 'cancelled', updated_at = NOW() WHERE id = $1`, bookingID)
	if err != nil {
		return fmt.Errorf("cancel booking %s: %w", bookingID.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", bookingID.String())
	}

	_, err = tx.Exec(ctx,
		`UPDATE payments SET status = 'refunded', updated_at = NOW() WHERE booking_id = $1 AND status = 'completed'`,
		bookingID)
	if err != nil {
		return fmt.Errorf("refund payment for booking %s: %w", bookingID.String(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit cancel booking tx: %w", err)
	}

	return nil
}
