package usecase

import (
	"context"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"

	"github.com/google/uuid"
)

// memDB backs the in-memory repository fakes. All fakes share one instance so
// cross-entity operations (booking+payment transactions) behave like the real
// store.
type memDB struct {
	users     map[uuid.UUID]*entity.User
	hotels    map[uuid.UUID]*entity.Hotel
	roomTypes map[uuid.UUID]*entity.RoomType
	rooms     map[uuid.UUID]*entity.Room
	bookings  map[uuid.UUID]*entity.Booking
	payments  map[uuid.UUID]*entity.Payment
	reviews   map[uuid.UUID]*entity.Review
}

func newMemDB() *memDB {
	return &memDB{
		users:     make(map[uuid.UUID]*entity.User),
		hotels:    make(map[uuid.UUID]*entity.Hotel),
		roomTypes: make(map[uuid.UUID]*entity.RoomType),
		rooms:     make(map[uuid.UUID]*entity.Room),
		bookings:  make(map[uuid.UUID]*entity.Booking),
		payments:  make(map[uuid.UUID]*entity.Payment),
		reviews:   make(map[uuid.UUID]*entity.Review),
	}
}

func newTestRepo() (*repository.Repository, *memDB) {
	db := newMemDB()
	return &repository.Repository{
		User:     &memUserRepo{db},
		Hotel:    &memHotelRepo{db},
		RoomType: &memRoomTypeRepo{db},
		Room:     &memRoomRepo{db},
		Booking:  &memBookingRepo{db},
		Payment:  &memPaymentRepo{db},
		Review:   &memReviewRepo{db},
	}, db
}

// ---------- user ----------

type memUserRepo struct{ db *memDB }

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	r.db.users[user.ID] = user
	return nil
}

func (r *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return r.db.users[id], nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.db.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range r.db.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) FindAll(_ context.Context, _, _ int) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.db.users))
	for _, u := range r.db.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *memUserRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(r.db.users)), nil
}

func (r *memUserRepo) Update(_ context.Context, user *entity.User) error {
	r.db.users[user.ID] = user
	return nil
}

// ---------- hotel ----------

type memHotelRepo struct{ db *memDB }

func (r *memHotelRepo) Create(_ context.Context, hotel *entity.Hotel) error {
	r.db.hotels[hotel.ID] = hotel
	return nil
}

func (r *memHotelRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Hotel, error) {
	return r.db.hotels[id], nil
}

func (r *memHotelRepo) FindAll(_ context.Context, _, _ int) ([]*entity.Hotel, error) {
	out := make([]*entity.Hotel, 0, len(r.db.hotels))
	for _, h := range r.db.hotels {
		out = append(out, h)
	}
	return out, nil
}

func (r *memHotelRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(r.db.hotels)), nil
}

func (r *memHotelRepo) FindByCity(_ context.Context, city string, _, _ int) ([]*entity.Hotel, error) {
	var out []*entity.Hotel
	for _, h := range r.db.hotels {
		if h.City == city {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *memHotelRepo) CountByCity(_ context.Context, city string) (int64, error) {
	var n int64
	for _, h := range r.db.hotels {
		if h.City == city {
			n++
		}
	}
	return n, nil
}

func (r *memHotelRepo) FindAllActive(_ context.Context) ([]*entity.Hotel, error) {
	var out []*entity.Hotel
	for _, h := range r.db.hotels {
		if h.Status == entity.HotelStatusActive {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *memHotelRepo) Update(_ context.Context, hotel *entity.Hotel) error {
	r.db.hotels[hotel.ID] = hotel
	return nil
}

func (r *memHotelRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.db.hotels, id)
	return nil
}

// ---------- room type ----------

type memRoomTypeRepo struct{ db *memDB }

func (r *memRoomTypeRepo) Create(_ context.Context, roomType *entity.RoomType) error {
	r.db.roomTypes[roomType.ID] = roomType
	return nil
}

func (r *memRoomTypeRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.RoomType, error) {
	return r.db.roomTypes[id], nil
}

func (r *memRoomTypeRepo) FindByName(_ context.Context, name string) (*entity.RoomType, error) {
	for _, rt := range r.db.roomTypes {
		if rt.Name == name {
			return rt, nil
		}
	}
	return nil, nil
}

func (r *memRoomTypeRepo) FindAll(_ context.Context) ([]*entity.RoomType, error) {
	out := make([]*entity.RoomType, 0, len(r.db.roomTypes))
	for _, rt := range r.db.roomTypes {
		out = append(out, rt)
	}
	return out, nil
}

// ---------- room ----------

type memRoomRepo struct{ db *memDB }

func (r *memRoomRepo) Create(_ context.Context, room *entity.Room) error {
	r.db.rooms[room.ID] = room
	return nil
}

func (r *memRoomRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Room, error) {
	return r.db.rooms[id], nil
}

func (r *memRoomRepo) FindByHotelID(_ context.Context, hotelID uuid.UUID, _, _ int) ([]*entity.Room, error) {
	var out []*entity.Room
	for _, room := range r.db.rooms {
		if room.HotelID == hotelID {
			out = append(out, room)
		}
	}
	return out, nil
}

func (r *memRoomRepo) CountByHotelID(_ context.Context, hotelID uuid.UUID) (int64, error) {
	var n int64
	for _, room := range r.db.rooms {
		if room.HotelID == hotelID {
			n++
		}
	}
	return n, nil
}

func (r *memRoomRepo) FindByHotelAndRoomNumber(_ context.Context, hotelID uuid.UUID, roomNumber string) (*entity.Room, error) {
	for _, room := range r.db.rooms {
		if room.HotelID == hotelID && room.RoomNumber == roomNumber {
			return room, nil
		}
	}
	return nil, nil
}

func (r *memRoomRepo) Update(_ context.Context, room *entity.Room) error {
	r.db.rooms[room.ID] = room
	return nil
}

func (r *memRoomRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.db.rooms, id)
	return nil
}

func (r *memRoomRepo) FindAvailable(_ context.Context, hotelID uuid.UUID, checkIn, checkOut time.Time) ([]*entity.Room, error) {
	var out []*entity.Room
	for _, room := range r.db.rooms {
		if room.HotelID != hotelID {
			continue
		}
		if r.db.roomBooked(room.ID, checkIn, checkOut) {
			continue
		}
		out = append(out, room)
	}
	return out, nil
}

func (db *memDB) roomBooked(roomID uuid.UUID, checkIn, checkOut time.Time) bool {
	for _, b := range db.bookings {
		if b.RoomID == roomID && b.Blocking() && b.Overlaps(checkIn, checkOut) {
			return true
		}
	}
	return false
}

// ---------- booking ----------

type memBookingRepo struct{ db *memDB }

func (r *memBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	return r.db.bookings[id], nil
}

func (r *memBookingRepo) FindByReference(_ context.Context, reference string) (*entity.Booking, error) {
	for _, b := range r.db.bookings {
		if b.BookingReference == reference {
			return b, nil
		}
	}
	return nil, nil
}

func (r *memBookingRepo) FindByUserID(_ context.Context, userID uuid.UUID, _, _ int) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range r.db.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *memBookingRepo) CountByUserID(_ context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	for _, b := range r.db.bookings {
		if b.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (r *memBookingRepo) FindByUserIDAndStatus(_ context.Context, userID uuid.UUID, status entity.BookingStatus) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range r.db.bookings {
		if b.UserID == userID && b.Status == status {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *memBookingRepo) FindByHotelAndDateRange(_ context.Context, hotelID uuid.UUID, start, end time.Time) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range r.db.bookings {
		room := r.db.rooms[b.RoomID]
		if room == nil || room.HotelID != hotelID {
			continue
		}
		if !b.CheckInDate.Before(start) && !b.CheckInDate.After(end) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *memBookingRepo) UpdateStatus(_ context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	if b := r.db.bookings[bookingID]; b != nil {
		b.Status = status
	}
	return nil
}

func (r *memBookingRepo) IsRoomBooked(_ context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (bool, error) {
	return r.db.roomBooked(roomID, checkIn, checkOut), nil
}

func (r *memBookingRepo) CreateWithPayment(_ context.Context, booking *entity.Booking, payment *entity.Payment) error {
	if r.db.roomBooked(booking.RoomID, booking.CheckInDate, booking.CheckOutDate) {
		return repository.ErrRoomUnavailable
	}
	r.db.bookings[booking.ID] = booking
	r.db.payments[payment.ID] = payment
	return nil
}

func (r *memBookingRepo) CancelWithRefund(_ context.Context, bookingID uuid.UUID) error {
	b := r.db.bookings[bookingID]
	if b == nil {
		return nil
	}
	b.Status = entity.BookingStatusCancelled
	for _, p := range r.db.payments {
		if p.BookingID == bookingID && p.Status == entity.PaymentStatusCompleted {
			p.Status = entity.PaymentStatusRefunded
		}
	}
	return nil
}

// ---------- payment ----------

type memPaymentRepo struct{ db *memDB }

func (r *memPaymentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Payment, error) {
	return r.db.payments[id], nil
}

func (r *memPaymentRepo) FindByBookingID(_ context.Context, bookingID uuid.UUID) (*entity.Payment, error) {
	for _, p := range r.db.payments {
		if p.BookingID == bookingID {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memPaymentRepo) FindByTransactionID(_ context.Context, transactionID string) (*entity.Payment, error) {
	for _, p := range r.db.payments {
		if p.TransactionID != nil && *p.TransactionID == transactionID {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memPaymentRepo) Update(_ context.Context, payment *entity.Payment) error {
	r.db.payments[payment.ID] = payment
	return nil
}

func (r *memPaymentRepo) RefundWithBookingCancel(_ context.Context, paymentID, bookingID uuid.UUID) error {
	if p := r.db.payments[paymentID]; p != nil {
		p.Status = entity.PaymentStatusRefunded
	}
	if b := r.db.bookings[bookingID]; b != nil && b.Status != entity.BookingStatusCancelled {
		b.Status = entity.BookingStatusCancelled
	}
	return nil
}

// ---------- review ----------

type memReviewRepo struct{ db *memDB }

func (r *memReviewRepo) Create(_ context.Context, review *entity.Review) error {
	for _, rv := range r.db.reviews {
		if rv.BookingID == review.BookingID {
			return repository.ErrDuplicateReview
		}
	}
	r.db.reviews[review.ID] = review
	return nil
}

func (r *memReviewRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Review, error) {
	return r.db.reviews[id], nil
}

func (r *memReviewRepo) FindByBookingID(_ context.Context, bookingID uuid.UUID) (*entity.Review, error) {
	for _, rv := range r.db.reviews {
		if rv.BookingID == bookingID {
			return rv, nil
		}
	}
	return nil, nil
}

func (r *memReviewRepo) FindApprovedByHotelID(_ context.Context, hotelID uuid.UUID, _, _ int) ([]*entity.Review, error) {
	var out []*entity.Review
	for _, rv := range r.db.reviews {
		if rv.HotelID == hotelID && rv.IsApproved {
			out = append(out, rv)
		}
	}
	return out, nil
}

func (r *memReviewRepo) CountApprovedByHotelID(_ context.Context, hotelID uuid.UUID) (int64, error) {
	var n int64
	for _, rv := range r.db.reviews {
		if rv.HotelID == hotelID && rv.IsApproved {
			n++
		}
	}
	return n, nil
}

func (r *memReviewRepo) FindByUserID(_ context.Context, userID uuid.UUID, _, _ int) ([]*entity.Review, error) {
	var out []*entity.Review
	for _, rv := range r.db.reviews {
		if rv.UserID == userID {
			out = append(out, rv)
		}
	}
	return out, nil
}

func (r *memReviewRepo) FindPending(_ context.Context, _, _ int) ([]*entity.Review, error) {
	var out []*entity.Review
	for _, rv := range r.db.reviews {
		if !rv.IsApproved {
			out = append(out, rv)
		}
	}
	return out, nil
}

func (r *memReviewRepo) Update(_ context.Context, review *entity.Review) error {
	r.db.reviews[review.ID] = review
	return nil
}

func (r *memReviewRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.db.reviews, id)
	return nil
}

func (r *memReviewRepo) GetHotelRatingStats(_ context.Context, hotelID uuid.UUID) (float64, int64, error) {
	var sum, n int64
	for _, rv := range r.db.reviews {
		if rv.HotelID == hotelID && rv.IsApproved {
			sum += int64(rv.Rating)
			n++
		}
	}
	if n == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(n), n, nil
}

func (r *memReviewRepo) CountByHotelIDAndRating(_ context.Context, hotelID uuid.UUID, rating int) (int64, error) {
	var n int64
	for _, rv := range r.db.reviews {
		if rv.HotelID == hotelID && rv.IsApproved && rv.Rating == rating {
			n++
		}
	}
	return n, nil
}
