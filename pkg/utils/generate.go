package utils

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

// ==================== UUID ====================

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

// ==================== BOOKING REFERENCE ====================

// GenerateBookingReference builds a reference in the form "BK" + 8 digits.
// The caller owns the rand source and must check the result for uniqueness
// against the store, retrying on collision.
func GenerateBookingReference(rng *rand.Rand) string {
	return fmt.Sprintf("BK%08d", rng.Intn(100000000))
}

// ==================== TRANSACTION ID ====================

// GenerateTransactionID builds "TXN" + unix millis + 3 digits. Uniqueness is
// still checked against the store by the caller.
func GenerateTransactionID(rng *rand.Rand, unixMilli int64) string {
	return fmt.Sprintf("TXN%d%03d", unixMilli, rng.Intn(1000))
}
