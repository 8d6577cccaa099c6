package services

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// confirmationAlphabet excludes ambiguous characters (0/O, 1/I) so the code
// survives being read over the phone.
const confirmationAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// ConfirmationGenerator issues the identifiers a shipper receives on a
// successful submission: the confirmation number and the carrier tracking
// number. Randomness and the clock are injected so tests can pin the output.
type ConfirmationGenerator struct {
	now func() time.Time
	rng *rand.Rand
}

// NewConfirmationGenerator creates a generator with the given clock and
// randomness source. Nil arguments default to time.Now and a time-seeded
// source.
func NewConfirmationGenerator(now func() time.Time, src rand.Source) ConfirmationGenerator {
	if now == nil {
		now = time.Now
	}
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return ConfirmationGenerator{now: now, rng: rand.New(src)}
}

// ConfirmationNumber returns a new confirmation number in the
// "SHP-YYYY-XXXXXX" format, where YYYY is the current year.
func (g ConfirmationGenerator) ConfirmationNumber() string {
	return fmt.Sprintf("SHP-%d-%s", g.now().Year(), g.token(6))
}

// TrackingNumber returns a new tracking number for the given carrier: the
// carrier's initials followed by ten digits.
func (g ConfirmationGenerator) TrackingNumber(carrier string) string {
	return fmt.Sprintf("%s%010d", carrierCode(carrier), g.rng.Int63n(1e10))
}

func (g ConfirmationGenerator) token(n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(confirmationAlphabet[g.rng.Intn(len(confirmationAlphabet))])
	}
	return b.String()
}

// carrierCode derives a short prefix from the carrier name's initials,
// falling back to "XX" when the name is empty.
func carrierCode(carrier string) string {
	var b strings.Builder
	for _, word := range strings.Fields(strings.ToUpper(carrier)) {
		b.WriteByte(word[0])
		if b.Len() == 2 {
			break
		}
	}
	if b.Len() == 0 {
		return "XX"
	}
	return b.String()
}
