package response

import (
	"time"

	"hotel-booking/internal/data/entity"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type BookingResponse struct {
	ID               string               `json:"id"`
	BookingReference string               `json:"bookingReference"`
	UserID           string               `json:"userId"`
	RoomID           string               `json:"roomId"`
	RoomNumber       string               `json:"roomNumber,omitempty"`
	HotelName        string               `json:"hotelName,omitempty"`
	CheckInDate      string               `json:"checkInDate"`
	CheckOutDate     string               `json:"checkOutDate"`
	Nights           int64                `json:"nights"`
	Adults           int                  `json:"adults"`
	Children         int                  `json:"children"`
	TotalPrice       decimal.Decimal      `json:"totalPrice"`
	Status           entity.BookingStatus `json:"status"`
	SpecialRequests  *string              `json:"specialRequests,omitempty"`
	Payment          *PaymentResponse     `json:"payment,omitempty"`
	CreatedAt        time.Time            `json:"createdAt"`
}

func BookingToResponse(booking *entity.Booking, roomNumber, hotelName string, payment *PaymentResponse) BookingResponse {
	return BookingResponse{
		ID:               booking.ID.String(),
		BookingReference: booking.BookingReference,
		UserID:           booking.UserID.String(),
		RoomID:           booking.RoomID.String(),
		RoomNumber:       roomNumber,
		HotelName:        hotelName,
		CheckInDate:      booking.CheckInDate.Format(dateLayout),
		CheckOutDate:     booking.CheckOutDate.Format(dateLayout),
		Nights:           booking.Nights(),
		Adults:           booking.Adults,
		Children:         booking.Children,
		TotalPrice:       booking.TotalPrice,
		Status:           booking.Status,
		SpecialRequests:  booking.SpecialRequests,
		Payment:          payment,
		CreatedAt:        booking.CreatedAt,
	}
}
