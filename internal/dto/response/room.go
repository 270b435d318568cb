package response

import (
	"time"

	"hotel-booking/internal/data/entity"

	"github.com/shopspring/decimal"
)

type RoomResponse struct {
	ID            string            `json:"id"`
	HotelID       string            `json:"hotelId"`
	RoomTypeID    string            `json:"roomTypeId"`
	RoomNumber    string            `json:"roomNumber"`
	Floor         *int              `json:"floor,omitempty"`
	Capacity      int               `json:"capacity"`
	PricePerNight decimal.Decimal   `json:"pricePerNight"`
	Description   *string           `json:"description,omitempty"`
	Status        entity.RoomStatus `json:"status"`
	CreatedAt     time.Time         `json:"createdAt"`
}

type RoomTypeResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  *string         `json:"description,omitempty"`
	BaseCapacity int             `json:"baseCapacity"`
	MaxCapacity  int             `json:"maxCapacity"`
	BasePrice    decimal.Decimal `json:"basePrice"`
	Amenities    *string         `json:"amenities,omitempty"`
}

func RoomToResponse(room *entity.Room) RoomResponse {
	return RoomResponse{
		ID:            room.ID.String(),
		HotelID:       room.HotelID.String(),
		RoomTypeID:    room.RoomTypeID.String(),
		RoomNumber:    room.RoomNumber,
		Floor:         room.Floor,
		Capacity:      room.Capacity,
		PricePerNight: room.PricePerNight,
		Description:   room.Description,
		Status:        room.Status,
		CreatedAt:     room.CreatedAt,
	}
}

func RoomTypeToResponse(roomType *entity.RoomType) RoomTypeResponse {
	return RoomTypeResponse{
		ID:           roomType.ID.String(),
		Name:         roomType.Name,
		Description:  roomType.Description,
		BaseCapacity: roomType.BaseCapacity,
		MaxCapacity:  roomType.MaxCapacity,
		BasePrice:    roomType.BasePrice,
		Amenities:    roomType.Amenities,
	}
}
