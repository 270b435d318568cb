package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// Payment is owned 1:1 by a booking and created pending at booking time with
// the amount pinned to the booking total.
type Payment struct {
	Base
	BookingID      uuid.UUID       `db:"booking_id"`
	Amount         decimal.Decimal `db:"amount"`
	Method         *string         `db:"payment_method"`
	TransactionID  *string         `db:"transaction_id"`
	Status         PaymentStatus   `db:"status"`
	PaymentDate    *time.Time      `db:"payment_date"`
	CardLastDigits *string         `db:"card_last_digits"`
}
