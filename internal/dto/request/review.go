package request

type SubmitReviewRequest struct {
	BookingID string  `json:"bookingId" validate:"required,uuid4"`
	Rating    int     `json:"rating" validate:"required,gte=1,lte=5"`
	Comment   *string `json:"comment,omitempty" validate:"omitempty,max=2000"`
}

type ManagementResponseRequest struct {
	Response string `json:"response" validate:"required,max=2000"`
}
