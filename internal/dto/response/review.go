package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type ReviewResponse struct {
	ID         string    `json:"id"`
	BookingID  string    `json:"bookingId"`
	UserID     string    `json:"userId"`
	HotelID    string    `json:"hotelId"`
	Rating     int       `json:"rating"`
	Comment    *string   `json:"comment,omitempty"`
	DatePosted time.Time `json:"datePosted"`
	IsApproved bool      `json:"isApproved"`
	Response   *string   `json:"managementResponse,omitempty"`
}

type HotelReviewStats struct {
	HotelID       string        `json:"hotelId"`
	AverageRating float64       `json:"averageRating"`
	ReviewCount   int64         `json:"reviewCount"`
	Distribution  map[int]int64 `json:"ratingDistribution"`
}

func ReviewToResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:         review.ID.String(),
		BookingID:  review.BookingID.String(),
		UserID:     review.UserID.String(),
		HotelID:    review.HotelID.String(),
		Rating:     review.Rating,
		Comment:    review.Comment,
		DatePosted: review.DatePosted,
		IsApproved: review.IsApproved,
		Response:   review.Response,
	}
}
