package request

type ProcessPaymentRequest struct {
	BookingID  string  `json:"bookingId" validate:"required,uuid4"`
	Method     string  `json:"paymentMethod" validate:"required,min=2,max=50"`
	CardNumber *string `json:"cardNumber,omitempty" validate:"omitempty,min=12,max=19,numeric"`
}
