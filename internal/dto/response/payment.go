package response

import (
	"time"

	"hotel-booking/internal/data/entity"

	"github.com/shopspring/decimal"
)

type PaymentResponse struct {
	ID             string               `json:"id"`
	BookingID      string               `json:"bookingId"`
	Amount         decimal.Decimal      `json:"amount"`
	Method         *string              `json:"paymentMethod,omitempty"`
	TransactionID  *string              `json:"transactionId,omitempty"`
	Status         entity.PaymentStatus `json:"status"`
	PaymentDate    *time.Time           `json:"paymentDate,omitempty"`
	CardLastDigits *string              `json:"cardLastDigits,omitempty"`
	CreatedAt      time.Time            `json:"createdAt"`
}

func PaymentToResponse(payment *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:             payment.ID.String(),
		BookingID:      payment.BookingID.String(),
		Amount:         payment.Amount,
		Method:         payment.Method,
		TransactionID:  payment.TransactionID,
		Status:         payment.Status,
		PaymentDate:    payment.PaymentDate,
		CardLastDigits: payment.CardLastDigits,
		CreatedAt:      payment.CreatedAt,
	}
}
