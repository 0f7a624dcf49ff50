// Package stats derives consumption figures from a ride history.
package stats

import (
	"fmt"
	"io"

	"github.com/rustyeddy/bikelog/record"
)

// MinRecords is the smallest history Compute will work on.
const MinRecords = 2

// Summary holds the aggregate figures for a history. Values keep full
// precision; rounding happens only in Write.
type Summary struct {
	Entries       int
	TotalDistance float64
	TotalOil      float64
	TotalCost     float64

	// IntervalMileage has one km/liter value per interval whose closing
	// entry bought oil.
	IntervalMileage  []float64
	AverageMileage   float64
	AverageCostPerKM float64
}

// Compute returns the summary of recs. ok is false when there are fewer
// than MinRecords entries, in which case nothing is computed.
func Compute(recs []record.Record) (s Summary, ok bool) {
	if len(recs) < MinRecords {
		return Summary{}, false
	}

	first, last := recs[0], recs[len(recs)-1]
	s.Entries = len(recs)
	s.TotalDistance = last.TotalKM - first.TotalKM

	for _, r := range recs {
		s.TotalOil += r.OilLiters
		s.TotalCost += r.OilCost
	}

	s.IntervalMileage = IntervalMileage(recs)
	s.AverageMileage = mean(s.IntervalMileage)

	if s.TotalDistance > 0 {
		s.AverageCostPerKM = s.TotalCost / s.TotalDistance
	}
	return s, true
}

// IntervalMileage returns distance over oil bought for each adjacent pair
// of entries. Intervals closing without a purchase are skipped.
func IntervalMileage(recs []record.Record) []float64 {
	out := []float64{}
	for i := 1; i < len(recs); i++ {
		if !recs[i].HasPurchase() {
			continue
		}
		dist := recs[i].TotalKM - recs[i-1].TotalKM
		out = append(out, dist/recs[i].OilLiters)
	}
	return out
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// Write renders the summary for the console, rounded to two decimals.
func (s Summary) Write(w io.Writer, currency string) error {
	_, err := fmt.Fprintf(w, `
--- Statistics ---
Total distance ridden: %.2f km
Total oil consumed: %.2f liters
Total money spent on oil: %.2f %s
Average mileage: %.2f km/liter
Average cost per km: %.2f %s

`,
		s.TotalDistance,
		s.TotalOil,
		s.TotalCost, currency,
		s.AverageMileage,
		s.AverageCostPerKM, currency,
	)
	return err
}
