package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusCheckedIn  BookingStatus = "checked_in"
	BookingStatusCheckedOut BookingStatus = "checked_out"
	BookingStatusCancelled  BookingStatus = "cancelled"
	BookingStatusNoShow     BookingStatus = "no_show"
)

// ValidBookingStatus reports whether s is a known status value.
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingStatusConfirmed, BookingStatusCheckedIn, BookingStatusCheckedOut,
		BookingStatusCancelled, BookingStatusNoShow:
		return true
	}
	return false
}

type Booking struct {
	Base
	BookingReference string          `db:"booking_reference"`
	UserID           uuid.UUID       `db:"user_id"`
	RoomID           uuid.UUID       `db:"room_id"`
	CheckInDate      time.Time       `db:"check_in_date"`
	CheckOutDate     time.Time       `db:"check_out_date"`
	Adults           int             `db:"adults"`
	Children         int             `db:"children"`
	TotalPrice       decimal.Decimal `db:"total_price"`
	Status           BookingStatus   `db:"status"`
	SpecialRequests  *string         `db:"special_requests"`
}

// Blocking reports whether the booking holds the room: cancelled and no-show
// bookings release their dates.
func (b *Booking) Blocking() bool {
	return b.Status != BookingStatusCancelled && b.Status != BookingStatusNoShow
}

// Overlaps applies the inclusive overlap rule:
// existing.checkIn <= new.checkOut AND existing.checkOut >= new.checkIn.
func (b *Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return !b.CheckInDate.After(checkOut) && !b.CheckOutDate.Before(checkIn)
}

// Nights is the stay length in whole days.
func (b *Booking) Nights() int64 {
	return int64(b.CheckOutDate.Sub(b.CheckInDate).Hours() / 24)
}
