package entity

import (
	"testing"
	"time"
)

func date(day int) time.Time {
	return time.Date(2026, time.January, day, 0, 0, 0, 0, time.UTC)
}

func TestBookingOverlaps(t *testing.T) {
	booking := &Booking{CheckInDate: date(10), CheckOutDate: date(13)}

	cases := []struct {
		name     string
		in, out  time.Time
		overlaps bool
	}{
		{"identical range", date(10), date(13), true},
		{"inside", date(11), date(12), true},
		{"overlaps head", date(8), date(10), true},
		{"overlaps tail", date(12), date(15), true},
		{"touching checkout", date(13), date(15), true},
		{"before", date(5), date(9), false},
		{"after", date(14), date(16), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := booking.Overlaps(tc.in, tc.out); got != tc.overlaps {
				t.Errorf("Overlaps(%s, %s) = %v, want %v",
					tc.in.Format("2006-01-02"), tc.out.Format("2006-01-02"), got, tc.overlaps)
			}
		})
	}
}

func TestBookingBlocking(t *testing.T) {
	blocking := []BookingStatus{BookingStatusConfirmed, BookingStatusCheckedIn, BookingStatusCheckedOut}
	for _, status := range blocking {
		b := &Booking{Status: status}
		if !b.Blocking() {
			t.Errorf("status %s should block the room", status)
		}
	}

	released := []BookingStatus{BookingStatusCancelled, BookingStatusNoShow}
	for _, status := range released {
		b := &Booking{Status: status}
		if b.Blocking() {
			t.Errorf("status %s should release the room", status)
		}
	}
}

func TestBookingNights(t *testing.T) {
	b := &Booking{CheckInDate: date(10), CheckOutDate: date(13)}
	if got := b.Nights(); got != 3 {
		t.Errorf("Nights() = %d, want 3", got)
	}

	oneNight := &Booking{CheckInDate: date(10), CheckOutDate: date(11)}
	if got := oneNight.Nights(); got != 1 {
		t.Errorf("Nights() = %d, want 1", got)
	}
}

func TestValidBookingStatus(t *testing.T) {
	for _, status := range []BookingStatus{
		BookingStatusConfirmed, BookingStatusCheckedIn, BookingStatusCheckedOut,
		BookingStatusCancelled, BookingStatusNoShow,
	} {
		if !ValidBookingStatus(status) {
			t.Errorf("%s should be valid", status)
		}
	}

	if ValidBookingStatus("pending") {
		t.Error("pending is not a booking status")
	}
}
