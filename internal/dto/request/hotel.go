package request

type CreateHotelRequest struct {
	Name         string  `json:"name" validate:"required,max=100"`
	Description  *string `json:"description,omitempty"`
	Address      string  `json:"address" validate:"required"`
	City         string  `json:"city" validate:"required,max=100"`
	Country      string  `json:"country" validate:"required,max=100"`
	PostalCode   *string `json:"postalCode,omitempty" validate:"omitempty,max=20"`
	StarRating   *int    `json:"starRating,omitempty" validate:"omitempty,gte=1,lte=5"`
	Amenities    *string `json:"amenities,omitempty"`
	CheckInTime  string  `json:"checkInTime" validate:"required,datetime=15:04"`
	CheckOutTime string  `json:"checkOutTime" validate:"required,datetime=15:04"`
}

type UpdateHotelRequest struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Description  *string `json:"description,omitempty"`
	Address      *string `json:"address,omitempty"`
	City         *string `json:"city,omitempty" validate:"omitempty,max=100"`
	Country      *string `json:"country,omitempty" validate:"omitempty,max=100"`
	PostalCode   *string `json:"postalCode,omitempty" validate:"omitempty,max=20"`
	StarRating   *int    `json:"starRating,omitempty" validate:"omitempty,gte=1,lte=5"`
	Amenities    *string `json:"amenities,omitempty"`
	CheckInTime  *string `json:"checkInTime,omitempty" validate:"omitempty,datetime=15:04"`
	CheckOutTime *string `json:"checkOutTime,omitempty" validate:"omitempty,datetime=15:04"`
	Status       *string `json:"status,omitempty" validate:"omitempty,oneof=active inactive maintenance"`
}
