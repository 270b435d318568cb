package request

type CreateRoomRequest struct {
	HotelID       string  `json:"hotelId" validate:"required,uuid4"`
	RoomTypeID    string  `json:"roomTypeId" validate:"required,uuid4"`
	RoomNumber    string  `json:"roomNumber" validate:"required,max=20"`
	Floor         *int    `json:"floor,omitempty"`
	Capacity      int     `json:"capacity" validate:"required,gte=1"`
	PricePerNight string  `json:"pricePerNight" validate:"required"`
	Description   *string `json:"description,omitempty"`
}

type UpdateRoomRequest struct {
	RoomTypeID    *string `json:"roomTypeId,omitempty" validate:"omitempty,uuid4"`
	RoomNumber    *string `json:"roomNumber,omitempty" validate:"omitempty,max=20"`
	Floor         *int    `json:"floor,omitempty"`
	Capacity      *int    `json:"capacity,omitempty" validate:"omitempty,gte=1"`
	PricePerNight *string `json:"pricePerNight,omitempty"`
	Description   *string `json:"description,omitempty"`
	Status        *string `json:"status,omitempty" validate:"omitempty,oneof=available occupied maintenance"`
}

type CreateRoomTypeRequest struct {
	Name         string  `json:"name" validate:"required,max=50"`
	Description  *string `json:"description,omitempty"`
	BaseCapacity int     `json:"baseCapacity" validate:"required,gte=1"`
	MaxCapacity  int     `json:"maxCapacity" validate:"required,gte=1"`
	BasePrice    string  `json:"basePrice" validate:"required"`
	Amenities    *string `json:"amenities,omitempty"`
}
