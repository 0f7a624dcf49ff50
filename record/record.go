package record

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// DateLayout is the only accepted date format for a Record.
const DateLayout = "2006-01-02"

var (
	// ErrDecreasingOdometer is matched by every *DecreasingOdometerError.
	ErrDecreasingOdometer = errors.New("odometer reading decreased")

	ErrInvalidRecord = errors.New("invalid record")
)

// Record is one logged event: a ride, optionally with an oil purchase.
type Record struct {
	Date      string  `json:"date"`
	TotalKM   float64 `json:"total_km"`
	OilLiters float64 `json:"oil_liters"`
	OilCost   float64 `json:"oil_cost"`
}

// HasPurchase reports whether oil was bought at this entry.
func (r Record) HasPurchase() bool {
	return r.OilLiters > 0
}

// Validate checks the date format and that every number is a
// non-negative real value.
func (r Record) Validate() error {
	if _, err := time.Parse(DateLayout, r.Date); err != nil {
		return fmt.Errorf("%w: date %q is not YYYY-MM-DD", ErrInvalidRecord, r.Date)
	}
	fields := []struct {
		name string
		v    float64
	}{
		{"total_km", r.TotalKM},
		{"oil_liters", r.OilLiters},
		{"oil_cost", r.OilCost},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s is not a number", ErrInvalidRecord, f.name)
		}
		if f.v < 0 {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalidRecord, f.name)
		}
	}
	return nil
}

// DecreasingOdometerError is returned when a new reading is lower than
// the last stored one.
type DecreasingOdometerError struct {
	Candidate float64
	Last      float64
}

func (e *DecreasingOdometerError) Error() string {
	return fmt.Sprintf("total kilometers (%s) cannot be less than last recorded (%s)",
		FormatNumber(e.Candidate), FormatNumber(e.Last))
}

func (e *DecreasingOdometerError) Is(target error) bool {
	return target == ErrDecreasingOdometer
}

// ValidateTotalKM checks candidate against the last record. The first
// record of an empty history has nothing to compare against.
func ValidateTotalKM(candidate float64, records []Record) error {
	if len(records) == 0 {
		return nil
	}
	last := records[len(records)-1].TotalKM
	if candidate < last {
		return &DecreasingOdometerError{Candidate: candidate, Last: last}
	}
	return nil
}
