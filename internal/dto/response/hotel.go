package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type HotelResponse struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Description  *string            `json:"description,omitempty"`
	Address      string             `json:"address"`
	City         string             `json:"city"`
	Country      string             `json:"country"`
	PostalCode   *string            `json:"postalCode,omitempty"`
	StarRating   *int               `json:"starRating,omitempty"`
	Amenities    *string            `json:"amenities,omitempty"`
	CheckInTime  string             `json:"checkInTime"`
	CheckOutTime string             `json:"checkOutTime"`
	Status       entity.HotelStatus `json:"status"`
	CreatedAt    time.Time          `json:"createdAt"`
}

func HotelToResponse(hotel *entity.Hotel) HotelResponse {
	return HotelResponse{
		ID:           hotel.ID.String(),
		Name:         hotel.Name,
		Description:  hotel.Description,
		Address:      hotel.Address,
		City:         hotel.City,
		Country:      hotel.Country,
		PostalCode:   hotel.PostalCode,
		StarRating:   hotel.StarRating,
		Amenities:    hotel.Amenities,
		CheckInTime:  hotel.CheckInTime,
		CheckOutTime: hotel.CheckOutTime,
		Status:       hotel.Status,
		CreatedAt:    hotel.CreatedAt,
	}
}
