package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "available"
	RoomStatusOccupied    RoomStatus = "occupied"
	RoomStatusMaintenance RoomStatus = "maintenance"
)

type Room struct {
	Base
	HotelID       uuid.UUID       `db:"hotel_id"`
	RoomTypeID    uuid.UUID       `db:"room_type_id"`
	RoomNumber    string          `db:"room_number"`
	Floor         *int            `db:"floor"`
	Capacity      int             `db:"capacity"`
	PricePerNight decimal.Decimal `db:"price_per_night"`
	Description   *string         `db:"description"`
	Status        RoomStatus      `db:"status"`
}
