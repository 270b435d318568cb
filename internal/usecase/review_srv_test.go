package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newReviewService(repo *repository.Repository) *reviewService {
	return &reviewService{repo: repo, log: zap.NewNop()}
}

func TestSubmitReviewRequiresCheckedOut(t *testing.T) {
	repo, db := newTestRepo()
	svc := newReviewService(repo)
	_, room := seedHotelAndRoom(db, "100.00", 2)
	userID := uuid.New()

	for _, status := range []entity.BookingStatus{
		entity.BookingStatusConfirmed,
		entity.BookingStatusCheckedIn,
		entity.BookingStatusCancelled,
		entity.BookingStatusNoShow,
	} {
		booking := seedBooking(db, userID, room, day(-10), day(-8), status)
		_, err := svc.SubmitReview(context.Background(), userID, &request.SubmitReviewRequest{
			BookingID: booking.ID.String(),
			Rating:    4,
		})
		if !errors.Is(err, ErrInvalidState) {
			t.Fatalf("status %s: expected invalid state, got %v", status, err)
		}
	}
}

func TestSubmitReview(t *testing.T) {
	repo, db := newTestRepo()
	svc := newReviewService(repo)
	hotel, room := seedHotelAndRoom(db, "100.00", 2)
	userID := uuid.New()
	booking := seedBooking(db, userID, room, day(-10), day(-8), entity.BookingStatusCheckedOut)

	comment := "Great stay, quiet room."
	resp, err := svc.SubmitReview(context.Background(), userID, &request.SubmitReviewRequest{
		BookingID: booking.ID.String(),
		Rating:    5,
		Comment:   &comment,
	})
	if err != nil {
		t.Fatalf("SubmitReview: %v", err)
	}

	if resp.HotelID != hotel.ID.String() {
		t.Errorf("hotel id = %s, want %s", resp.HotelID, hotel.ID)
	}
	if !resp.IsApproved {
		t.Error("direct submissions publish immediately")
	}
	stored, _ := repo.Review.FindByBookingID(context.Background(), booking.ID)
	if stored == nil || stored.CreatedAt.IsZero() {
		t.Error("stored review createdAt is the zero time")
	}

	// one review per booking
	_, err = svc.SubmitReview(context.Background(), userID, &request.SubmitReviewRequest{
		BookingID: booking.ID.String(),
		Rating:    3,
	})
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("duplicate review: expected invalid state, got %v", err)
	}
}

// blindPrecheckReviewRepo hides existing reviews from FindByBookingID, so a
// duplicate submission only surfaces at insert time, the way a concurrent
// submission would.
type blindPrecheckReviewRepo struct{ repository.ReviewRepository }

func (r blindPrecheckReviewRepo) FindByBookingID(_ context.Context, _ uuid.UUID) (*entity.Review, error) {
	return nil, nil
}

func TestSubmitReviewDuplicateInsertBackstop(t *testing.T) {
	repo, db := newTestRepo()
	svc := newReviewService(repo)
	_, room := seedHotelAndRoom(db, "100.00", 2)
	userID := uuid.New()
	booking := seedBooking(db, userID, room, day(-10), day(-8), entity.BookingStatusCheckedOut)
	repo.Review = blindPrecheckReviewRepo{repo.Review}

	if _, err := svc.SubmitReview(context.Background(), userID, &request.SubmitReviewRequest{
		BookingID: booking.ID.String(),
		Rating:    5,
	}); err != nil {
		t.Fatalf("first review: %v", err)
	}

	_, err := svc.SubmitReview(context.Background(), userID, &request.SubmitReviewRequest{
		BookingID: booking.ID.String(),
		Rating:    3,
	})
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("duplicate insert: expected invalid state, got %v", err)
	}
}

func TestSubmitReviewGuards(t *testing.T) {
	repo, db := newTestRepo()
	svc := newReviewService(repo)
	_, room := seedHotelAndRoom(db, "100.00", 2)
	owner := uuid.New()
	booking := seedBooking(db, owner, room, day(-10), day(-8), entity.BookingStatusCheckedOut)

	_, err := svc.SubmitReview(context.Background(), uuid.New(), &request.SubmitReviewRequest{
		BookingID: booking.ID.String(),
		Rating:    4,
	})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("stranger review: expected forbidden, got %v", err)
	}

	_, err = svc.SubmitReview(context.Background(), owner, &request.SubmitReviewRequest{
		BookingID: booking.ID.String(),
		Rating:    6,
	})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("rating 6: expected invalid argument, got %v", err)
	}

	_, err = svc.SubmitReview(context.Background(), owner, &request.SubmitReviewRequest{
		BookingID: uuid.New().String(),
		Rating:    4,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown booking: expected not found, got %v", err)
	}
}

func TestApproveReviewAndStats(t *testing.T) {
	repo, db := newTestRepo()
	svc := newReviewService(repo)
	hotel, _ := seedHotelAndRoom(db, "100.00", 2)

	seedReview := func(rating int, approved bool) *entity.Review {
		review := &entity.Review{
			BookingID:  uuid.New(),
			UserID:     uuid.New(),
			HotelID:    hotel.ID,
			Rating:     rating,
			DatePosted: time.Now(),
			IsApproved: approved,
		}
		review.ID = uuid.New()
		db.reviews[review.ID] = review
		return review
	}

	seedReview(5, true)
	seedReview(4, true)
	pending := seedReview(1, false)

	stats, err := svc.GetHotelReviewStats(context.Background(), hotel.ID)
	if err != nil {
		t.Fatalf("GetHotelReviewStats: %v", err)
	}
	if stats.ReviewCount != 2 {
		t.Errorf("review count = %d, want 2 (pending reviews excluded)", stats.ReviewCount)
	}
	if stats.AverageRating != 4.5 {
		t.Errorf("average = %v, want 4.5", stats.AverageRating)
	}
	if stats.Distribution[5] != 1 || stats.Distribution[4] != 1 || stats.Distribution[1] != 0 {
		t.Errorf("distribution = %v", stats.Distribution)
	}

	if err := svc.ApproveReview(context.Background(), pending.ID); err != nil {
		t.Fatalf("ApproveReview: %v", err)
	}
	if !pending.IsApproved {
		t.Error("review not approved")
	}

	err = svc.ApproveReview(context.Background(), uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown review: expected not found, got %v", err)
	}

	stats, err = svc.GetHotelReviewStats(context.Background(), hotel.ID)
	if err != nil {
		t.Fatalf("GetHotelReviewStats: %v", err)
	}
	if stats.ReviewCount != 3 {
		t.Errorf("review count after approval = %d, want 3", stats.ReviewCount)
	}
}

func TestManagementResponseAndDelete(t *testing.T) {
	repo, db := newTestRepo()
	svc := newReviewService(repo)
	hotel, _ := seedHotelAndRoom(db, "100.00", 2)
	owner := uuid.New()

	review := &entity.Review{
		BookingID:  uuid.New(),
		UserID:     owner,
		HotelID:    hotel.ID,
		Rating:     2,
		DatePosted: time.Now(),
	}
	review.ID = uuid.New()
	db.reviews[review.ID] = review

	resp, err := svc.AddManagementResponse(context.Background(), review.ID, &request.ManagementResponseRequest{
		Response: "Sorry to hear that, we have fixed the heating.",
	})
	if err != nil {
		t.Fatalf("AddManagementResponse: %v", err)
	}
	if resp.Response == nil {
		t.Fatal("management response not set")
	}

	err = svc.DeleteReview(context.Background(), review.ID, uuid.New(), string(entity.RoleCustomer))
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("stranger delete: expected forbidden, got %v", err)
	}

	if err := svc.DeleteReview(context.Background(), review.ID, owner, string(entity.RoleCustomer)); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if db.reviews[review.ID] != nil {
		t.Error("review still present after delete")
	}
}
