package request

type CreateBookingRequest struct {
	RoomID          string  `json:"roomId" validate:"required,uuid4"`
	CheckInDate     string  `json:"checkInDate" validate:"required,datetime=2006-01-02"`
	CheckOutDate    string  `json:"checkOutDate" validate:"required,datetime=2006-01-02"`
	Adults          int     `json:"adults" validate:"required,gte=1"`
	Children        int     `json:"children" validate:"gte=0"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
}

// UpdateBookingStatusRequest is the admin override path; any known status may
// be set directly.
type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed checked_in checked_out cancelled no_show"`
}
