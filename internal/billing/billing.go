// Package billing holds the pure calculation core of the front desk: bill
// computation, payment-status derivation and date arithmetic. Nothing here
// touches storage or validates input; callers own validation.
package billing

import (
	"math"
	"time"

	"github.com/ferhhaann/manzil-hotel-dashboard/internal/models"
)

// BillSummary is derived fresh on every request and never persisted.
type BillSummary struct {
	Duration    int     `json:"duration"`
	BaseAmount  float64 `json:"base_amount"`
	CGST        float64 `json:"cgst"`
	SGST        float64 `json:"sgst"`
	TotalTax    float64 `json:"total_tax"`
	TotalAmount float64 `json:"total_amount"`
	AdvancePaid float64 `json:"advance_paid"`
	NetPayable  float64 `json:"net_payable"`
}

// ComputeBill converts a stay into a tax-inclusive invoice summary.
//
// When the daily rent already contains tax, the pre-tax base is
// back-calculated from the GST rate; otherwise tax is added on top. GST is
// always split 50/50 into CGST and SGST. NetPayable is not clamped: an
// advance above the total yields a negative (refund) amount.
func ComputeBill(g *models.Guest) BillSummary {
	duration := StayDuration(g.CheckInDate, g.CheckOutDate)

	var baseAmount, totalAmount, taxAmount float64
	if g.TaxIncluded {
		totalAmount = g.DailyRent * float64(duration)
		baseAmount = totalAmount / (1 + g.GSTRate/100)
		taxAmount = totalAmount - baseAmount
	} else {
		baseAmount = g.DailyRent * float64(duration)
		taxAmount = baseAmount * (g.GSTRate / 100)
		totalAmount = baseAmount + taxAmount
	}

	return BillSummary{
		Duration:    duration,
		BaseAmount:  round2(baseAmount),
		CGST:        round2(taxAmount / 2),
		SGST:        round2(taxAmount / 2),
		TotalTax:    round2(taxAmount),
		TotalAmount: round2(totalAmount),
		AdvancePaid: g.AdvancePaid,
		NetPayable:  round2(totalAmount - g.AdvancePaid),
	}
}

// StayDuration is the number of billable nights, ceiling of the elapsed
// days and never below 1: a same-day or inverted range still bills one
// night.
func StayDuration(checkIn, checkOut time.Time) int {
	d := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if d < 1 {
		return 1
	}
	return d
}

// DerivePaymentStatus is the single source of truth for the advance-vs-total
// comparison; both the check-in summary path and the reservation
// create/update path must go through it.
func DerivePaymentStatus(advance, total float64) models.PaymentStatus {
	switch {
	case advance == 0:
		return models.PaymentPending
	case advance < total:
		return models.PaymentPartiallyPaid
	default:
		return models.PaymentPaid
	}
}

// Nights counts whole calendar days between two instants, ignoring
// time-of-day. Normalizing both ends to UTC midnights keeps the count
// stable across daylight-saving transitions.
func Nights(checkIn, checkOut time.Time) int {
	return int(dateOnly(checkOut).Sub(dateOnly(checkIn)).Hours() / 24)
}

// StayDates expands a stay into its inclusive day-by-day date range, for
// calendar displays.
func StayDates(checkIn, checkOut time.Time) []time.Time {
	start := dateOnly(checkIn)
	end := dateOnly(checkOut)

	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// round2 rounds to 2 decimal places, half away from zero at the cent
// boundary.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
