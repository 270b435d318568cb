package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review may only exist for a checked-out booking, at most one per booking.
type Review struct {
	BaseSimple
	BookingID  uuid.UUID `db:"booking_id"`
	UserID     uuid.UUID `db:"user_id"`
	HotelID    uuid.UUID `db:"hotel_id"`
	Rating     int       `db:"rating"` // 1-5
	Comment    *string   `db:"comment"`
	DatePosted time.Time `db:"date_posted"`
	IsApproved bool      `db:"is_approved"`
	Response   *string   `db:"response"`
}
