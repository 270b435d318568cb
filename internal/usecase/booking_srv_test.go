package usecase

import (
	"context"
	"errors"
	"math/rand"
	"regexp"
	"testing"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func newBookingService(repo *repository.Repository) *bookingService {
	return &bookingService{
		repo: repo,
		rng:  rand.New(rand.NewSource(1)),
		log:  zap.NewNop(),
	}
}

func day(n int) time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, n)
}

func dateStr(n int) string {
	return day(n).Format(dateLayout)
}

func seedHotelAndRoom(db *memDB, price string, capacity int) (*entity.Hotel, *entity.Room) {
	hotel := &entity.Hotel{
		Name:         "Harbor View",
		Address:      "12 Quay St",
		City:         "Lisbon",
		Country:      "Portugal",
		CheckInTime:  "15:00",
		CheckOutTime: "11:00",
		Status:       entity.HotelStatusActive,
	}
	hotel.ID = uuid.New()
	db.hotels[hotel.ID] = hotel

	room := &entity.Room{
		HotelID:       hotel.ID,
		RoomTypeID:    uuid.New(),
		RoomNumber:    "204",
		Capacity:      capacity,
		PricePerNight: decimal.RequireFromString(price),
		Status:        entity.RoomStatusAvailable,
	}
	room.ID = uuid.New()
	db.rooms[room.ID] = room

	return hotel, room
}

func seedBooking(db *memDB, userID uuid.UUID, room *entity.Room, checkIn, checkOut time.Time, status entity.BookingStatus) *entity.Booking {
	booking := &entity.Booking{
		BookingReference: "BK00000001",
		UserID:           userID,
		RoomID:           room.ID,
		CheckInDate:      checkIn,
		CheckOutDate:     checkOut,
		Adults:           1,
		TotalPrice:       decimal.Zero,
		Status:           status,
	}
	booking.ID = uuid.New()
	db.bookings[booking.ID] = booking
	return booking
}

func TestCreateBookingComputesTotal(t *testing.T) {
	repo, db := newTestRepo()
	svc := newBookingService(repo)
	_, room := seedHotelAndRoom(db, "199.99", 2)
	userID := uuid.New()

	resp, err := svc.CreateBooking(context.Background(), userID, &request.CreateBookingRequest{
		RoomID:       room.ID.String(),
		CheckInDate:  dateStr(30),
		CheckOutDate: dateStr(33),
		Adults:       2,
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	if !resp.TotalPrice.Equal(decimal.RequireFromString("599.97")) {
		t.Errorf("total price = %s, want 599.97", resp.TotalPrice)
	}
	if resp.Nights != 3 {
		t.Errorf("nights = %d, want 3", resp.Nights)
	}
	if resp.Status != entity.BookingStatusConfirmed {
		t.Errorf("status = %s, want confirmed", resp.Status)
	}
	if ok, _ := regexp.MatchString(`^BK\d{8}$`, resp.BookingReference); !ok {
		t.Errorf("reference %q does not match BK format", resp.BookingReference)
	}

	if resp.Payment == nil {
		t.Fatal("expected a pending payment attached to the booking")
	}
	if resp.Payment.Status != entity.PaymentStatusPending {
		t.Errorf("payment status = %s, want pending", resp.Payment.Status)
	}
	if !resp.Payment.Amount.Equal(decimal.RequireFromString("599.97")) {
		t.Errorf("payment amount = %s, want 599.97", resp.Payment.Amount)
	}

	if resp.CreatedAt.IsZero() {
		t.Error("booking createdAt is the zero time")
	}
	if resp.Payment.CreatedAt.IsZero() {
		t.Error("payment createdAt is the zero time")
	}
}

func TestCreateBookingOverlapConflict(t *testing.T) {
	repo, db := newTestRepo()
	svc := newBookingService(repo)
	_, room := seedHotelAndRoom(db, "100.00", 4)
	seedBooking(db, uuid.New(), room, day(30), day(33), entity.BookingStatusConfirmed)

	cases := []struct {
		name     string
		in, out  int
		conflict bool
	}{
		{"inside existing stay", 31, 32, true},
		{"overlaps tail", 32, 35, true},
		{"checkin on existing checkout", 33, 35, true},
		{"after existing stay", 34, 36, false},
		{"before existing stay", 27, 29, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateBooking(context.Background(), uuid.New(), &request.CreateBookingRequest{
				RoomID:       room.ID.String(),
				CheckInDate:  dateStr(tc.in),
				CheckOutDate: dateStr(tc.out),
				Adults:       1,
			})
			if tc.conflict && !errors.Is(err, ErrConflict) {
				t.Fatalf("expected conflict, got %v", err)
			}
			if !tc.conflict && err != nil {
				t.Fatalf("expected success, got %v", err)
			}
		})
	}
}

func TestCreateBookingCancelledBookingReleasesDates(t *testing.T) {
	repo, db := newTestRepo()
	svc := newBookingService(repo)
	_, room := seedHotelAndRoom(db, "100.00", 2)
	seedBooking(db, uuid.New(), room, day(30), day(33), entity.BookingStatusCancelled)
	seedBooking(db, uuid.New(), room, day(30), day(33), entity.BookingStatusNoShow)

	_, err := svc.CreateBooking(context.Background(), uuid.New(), &request.CreateBookingRequest{
		RoomID:       room.ID.String(),
		CheckInDate:  dateStr(30),
		CheckOutDate: dateStr(33),
		Adults:       1,
	})
	if err != nil {
		t.Fatalf("cancelled and no-show bookings should not block the room: %v", err)
	}
}

func TestCreateBookingRejectsBadDates(t *testing.T) {
	repo, db := newTestRepo()
	svc := newBookingService(repo)
	_, room := seedHotelAndRoom(db, "100.00", 2)

	cases := []struct {
		name    string
		in, out string
	}{
		{"zero nights", dateStr(30), dateStr(30)},
		{"checkout before checkin", dateStr(33), dateStr(30)},
		{"past checkin", dateStr(-2), dateStr(2)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateBooking(context.Background(), uuid.New(), &request.CreateBookingRequest{
				RoomID:       room.ID.String(),
				CheckInDate:  tc.in,
				CheckOutDate: tc.out,
				Adults:       1,
			})
			if !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("expected invalid argument, got %v", err)
			}
		})
	}
}

func TestCreateBookingCapacityAndState(t *testing.T) {
	repo, db := newTestRepo()
	svc := newBookingService(repo)
	hotel, room := seedHotelAndRoom(db, "100.00", 2)

	_, err := svc.CreateBooking(context.Background(), uuid.New(), &request.CreateBookingRequest{
		RoomID:       room.ID.String(),
		CheckInDate:  dateStr(10),
		CheckOutDate: dateStr(12),
		Adults:       2,
		Children:     1,
	})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("party above capacity: expected invalid argument, got %v", err)
	}

	hotel.Status = entity.HotelStatusMaintenance
	_, err = svc.CreateBooking(context.Background(), uuid.New(), &request.CreateBookingRequest{
		RoomID:       room.ID.String(),
		CheckInDate:  dateStr(10),
		CheckOutDate: dateStr(12),
		Adults:       1,
	})
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("inactive hotel: expected invalid state, got %v", err)
	}

	_, err = svc.CreateBooking(context.Background(), uuid.New(), &request.CreateBookingRequest{
		RoomID:       uuid.New().String(),
		CheckInDate:  dateStr(10),
		CheckOutDate: dateStr(12),
		Adults:       1,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown room: expected not found, got %v", err)
	}
}

func TestCancelBookingRefundsCompletedPayment(t *testing.T) {
	repo, db := newTestRepo()
	svc := newBookingService(repo)
	_, room := seedHotelAndRoom(db, "100.00", 2)
	userID := uuid.New()

	booking := seedBooking(db, userID, room, day(30), day(33), entity.BookingStatusConfirmed)
	payment := &entity.Payment{
		BookingID: booking.ID,
		Amount:    decimal.RequireFromString("300.00"),
		Status:    entity.PaymentStatusCompleted,
	}
	payment.ID = uuid.New()
	db.payments[payment.ID] = payment

	if err := svc.CancelBooking(context.Background(), booking.ID, userID, string(entity.RoleCustomer)); err != nil {
		t.Fatalf("CancelBooking: %v", err)
	}

	if booking.Status != entity.BookingStatusCancelled {
		t.Errorf("booking status = %s, want cancelled", booking.Status)
	}
	if payment.Status != entity.PaymentStatusRefunded {
		t.Errorf("payment status = %s, want refunded", payment.Status)
	}

	// second cancel is rejected
	err := svc.CancelBooking(context.Background(), booking.ID, userID, string(entity.RoleCustomer))
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("double cancel: expected invalid state, got %v", err)
	}
}

func TestCancelBookingGuards(t *testing.T) {
	repo, db := newTestRepo()
	svc := newBookingService(repo)
	_, room := seedHotelAndRoom(db, "100.00", 2)
	owner := uuid.New()

	checkedIn := seedBooking(db, owner, room, day(1), day(3), entity.BookingStatusCheckedIn)
	err := svc.CancelBooking(context.Background(), checkedIn.ID, owner, string(entity.RoleCustomer))
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("checked-in cancel: expected invalid state, got %v", err)
	}

	confirmed := seedBooking(db, owner, room, day(10), day(12), entity.BookingStatusConfirmed)
	err = svc.CancelBooking(context.Background(), confirmed.ID, uuid.New(), string(entity.RoleCustomer))
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("stranger cancel: expected forbidden, got %v", err)
	}

	// admin may cancel on behalf of the user
	if err := svc.CancelBooking(context.Background(), confirmed.ID, uuid.New(), string(entity.RoleAdmin)); err != nil {
		t.Fatalf("admin cancel: %v", err)
	}
}

func TestUpdateBookingStatusCouplesCancellation(t *testing.T) {
	repo, db := newTestRepo()
	svc := newBookingService(repo)
	_, room := seedHotelAndRoom(db, "100.00", 2)

	booking := seedBooking(db, uuid.New(), room, day(5), day(7), entity.BookingStatusConfirmed)
	payment := &entity.Payment{
		BookingID: booking.ID,
		Amount:    decimal.RequireFromString("200.00"),
		Status:    entity.PaymentStatusCompleted,
	}
	payment.ID = uuid.New()
	db.payments[payment.ID] = payment

	err := svc.UpdateBookingStatus(context.Background(), booking.ID, &request.UpdateBookingStatusRequest{
		Status: string(entity.BookingStatusCancelled),
	})
	if err != nil {
		t.Fatalf("UpdateBookingStatus: %v", err)
	}
	if payment.Status != entity.PaymentStatusRefunded {
		t.Errorf("admin cancellation must refund the payment, payment status = %s", payment.Status)
	}

	// regular transition does not touch the payment
	other := seedBooking(db, uuid.New(), room, day(20), day(22), entity.BookingStatusConfirmed)
	err = svc.UpdateBookingStatus(context.Background(), other.ID, &request.UpdateBookingStatusRequest{
		Status: string(entity.BookingStatusCheckedIn),
	})
	if err != nil {
		t.Fatalf("UpdateBookingStatus: %v", err)
	}
	if other.Status != entity.BookingStatusCheckedIn {
		t.Errorf("booking status = %s, want checked_in", other.Status)
	}
}

func TestCheckAvailability(t *testing.T) {
	repo, db := newTestRepo()
	svc := newBookingService(repo)
	_, room := seedHotelAndRoom(db, "100.00", 2)
	seedBooking(db, uuid.New(), room, day(30), day(33), entity.BookingStatusConfirmed)

	available, err := svc.CheckAvailability(context.Background(), room.ID, day(31), day(32))
	if err != nil {
		t.Fatalf("CheckAvailability: %v", err)
	}
	if available {
		t.Error("room with an overlapping booking reported available")
	}

	available, err = svc.CheckAvailability(context.Background(), room.ID, day(40), day(42))
	if err != nil {
		t.Fatalf("CheckAvailability: %v", err)
	}
	if !available {
		t.Error("free dates reported unavailable")
	}
}

func TestGetBookingOwnership(t *testing.T) {
	repo, db := newTestRepo()
	svc := newBookingService(repo)
	_, room := seedHotelAndRoom(db, "100.00", 2)
	owner := uuid.New()
	booking := seedBooking(db, owner, room, day(5), day(7), entity.BookingStatusConfirmed)

	if _, err := svc.GetBooking(context.Background(), booking.ID, owner, string(entity.RoleCustomer)); err != nil {
		t.Fatalf("owner read: %v", err)
	}

	_, err := svc.GetBooking(context.Background(), booking.ID, uuid.New(), string(entity.RoleCustomer))
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("stranger read: expected forbidden, got %v", err)
	}

	if _, err := svc.GetBooking(context.Background(), booking.ID, uuid.New(), string(entity.RoleAdmin)); err != nil {
		t.Fatalf("admin read: %v", err)
	}

	_, err = svc.GetBooking(context.Background(), uuid.New(), owner, string(entity.RoleCustomer))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown booking: expected not found, got %v", err)
	}
}
