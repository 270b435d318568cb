package utils

import (
	"math/rand"
	"regexp"
	"strings"
	"testing"
)

func TestGenerateBookingReference(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	pattern := regexp.MustCompile(`^BK\d{8}$`)

	for i := 0; i < 100; i++ {
		ref := GenerateBookingReference(rng)
		if !pattern.MatchString(ref) {
			t.Fatalf("reference %q does not match BK + 8 digits", ref)
		}
	}
}

func TestGenerateTransactionID(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	id := GenerateTransactionID(rng, 1700000000000)
	if !strings.HasPrefix(id, "TXN1700000000000") {
		t.Errorf("transaction id %q does not embed the timestamp", id)
	}
	if len(id) != len("TXN1700000000000")+3 {
		t.Errorf("transaction id %q does not end with 3 digits", id)
	}
}

func TestCardLastDigits(t *testing.T) {
	if got := CardLastDigits("4111111111111111"); got != "1111" {
		t.Errorf("CardLastDigits = %q, want 1111", got)
	}
	if got := CardLastDigits("123"); got != "" {
		t.Errorf("short input should yield empty string, got %q", got)
	}
}

func TestParseInt(t *testing.T) {
	if got := ParseInt("7", 1); got != 7 {
		t.Errorf("ParseInt(7) = %d", got)
	}
	if got := ParseInt("", 5); got != 5 {
		t.Errorf("empty input should yield default, got %d", got)
	}
	if got := ParseInt("abc", 5); got != 5 {
		t.Errorf("garbage input should yield default, got %d", got)
	}
	if got := ParseInt("-3", 5); got != 5 {
		t.Errorf("negative input should yield default, got %d", got)
	}
}
