package billing

import (
	"testing"
	"time"

	"github.com/ferhhaann/manzil-hotel-dashboard/internal/models"
	"github.com/stretchr/testify/assert"
)

func sampleGuest() *models.Guest {
	return &models.Guest{
		RoomNumber:    203,
		BillNumber:    "MH260310042",
		Name:          "Ravi Kumar",
		Phone:         "9876543210",
		CheckInDate:   time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
		CheckOutDate:  time.Date(2026, 3, 11, 12, 0, 0, 0, time.UTC),
		DailyRent:     3000,
		AdvancePaid:   1000,
		PaymentMethod: models.PayCash,
		GSTRate:       12,
		TaxIncluded:   true,
	}
}

func TestComputeBill_TaxIncluded(t *testing.T) {
	bill := ComputeBill(sampleGuest())

	assert.Equal(t, 1, bill.Duration)
	assert.Equal(t, 3000.00, bill.TotalAmount)
	assert.Equal(t, 2678.57, bill.BaseAmount)
	assert.Equal(t, 321.43, bill.TotalTax)
	assert.InDelta(t, 160.71, bill.CGST, 0.01)
	assert.InDelta(t, 160.71, bill.SGST, 0.01)
	assert.Equal(t, 2000.00, bill.NetPayable)
}

func TestComputeBill_TaxExcluded(t *testing.T) {
	g := sampleGuest()
	g.DailyRent = 2000
	g.AdvancePaid = 500
	g.TaxIncluded = false
	g.CheckOutDate = g.CheckInDate.AddDate(0, 0, 3)

	bill := ComputeBill(g)

	assert.Equal(t, 3, bill.Duration)
	assert.Equal(t, 6000.00, bill.BaseAmount)
	assert.Equal(t, 720.00, bill.TotalTax)
	assert.Equal(t, 6720.00, bill.TotalAmount)
	assert.Equal(t, 360.00, bill.CGST)
	assert.Equal(t, 360.00, bill.SGST)
	assert.Equal(t, 6220.00, bill.NetPayable)
}

func TestComputeBill_SameDayBillsOneNight(t *testing.T) {
	g := sampleGuest()
	g.CheckOutDate = g.CheckInDate

	bill := ComputeBill(g)

	assert.Equal(t, 1, bill.Duration)
}

func TestComputeBill_InvertedRangeBillsOneNight(t *testing.T) {
	g := sampleGuest()
	g.CheckOutDate = g.CheckInDate.AddDate(0, 0, -2)

	bill := ComputeBill(g)

	assert.Equal(t, 1, bill.Duration)
}

func TestComputeBill_PartialDayRoundsUp(t *testing.T) {
	g := sampleGuest()
	g.CheckOutDate = g.CheckInDate.Add(30 * time.Hour)

	bill := ComputeBill(g)

	assert.Equal(t, 2, bill.Duration)
}

func TestComputeBill_SplitsGSTEvenly(t *testing.T) {
	for _, rent := range []float64{999.99, 1500, 2750.50, 7000} {
		g := sampleGuest()
		g.DailyRent = rent

		bill := ComputeBill(g)

		assert.Equal(t, bill.CGST, bill.SGST, "rent %.2f", rent)
	}
}

func TestComputeBill_TotalEqualsBasePlusTax(t *testing.T) {
	for _, taxIncluded := range []bool{true, false} {
		g := sampleGuest()
		g.DailyRent = 2333.33
		g.GSTRate = 18
		g.TaxIncluded = taxIncluded

		bill := ComputeBill(g)

		assert.InDelta(t, bill.TotalAmount, bill.BaseAmount+bill.TotalTax, 0.01)
	}
}

func TestComputeBill_Idempotent(t *testing.T) {
	g := sampleGuest()

	first := ComputeBill(g)
	second := ComputeBill(g)

	assert.Equal(t, first, second)
}

func TestComputeBill_OverpaidAdvanceGoesNegative(t *testing.T) {
	g := sampleGuest()
	g.AdvancePaid = 5000

	bill := ComputeBill(g)

	assert.Equal(t, -2000.00, bill.NetPayable)
}

func TestDerivePaymentStatus_Boundaries(t *testing.T) {
	assert.Equal(t, models.PaymentPending, DerivePaymentStatus(0, 6720))
	assert.Equal(t, models.PaymentPartiallyPaid, DerivePaymentStatus(0.01, 6720))
	assert.Equal(t, models.PaymentPartiallyPaid, DerivePaymentStatus(6719.99, 6720))
	assert.Equal(t, models.PaymentPaid, DerivePaymentStatus(6720, 6720))
	assert.Equal(t, models.PaymentPaid, DerivePaymentStatus(7000, 6720))
}

func TestNights_IgnoresTimeOfDay(t *testing.T) {
	checkIn := time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 3, 11, 0, 30, 0, 0, time.UTC)

	assert.Equal(t, 1, Nights(checkIn, checkOut))
}

func TestNights_StableAcrossDSTTransition(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	assert.NoError(t, err)

	// DST starts 2026-03-29 in Berlin: the last weekend of March has a
	// 23-hour day. Calendar-day counting must not lose a night to it.
	checkIn := time.Date(2026, 3, 28, 14, 0, 0, 0, loc)
	checkOut := time.Date(2026, 3, 30, 11, 0, 0, 0, loc)

	assert.Equal(t, 2, Nights(checkIn, checkOut))
}

func TestNights_SameDayIsZero(t *testing.T) {
	d := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, Nights(d, d.Add(6*time.Hour)))
}

func TestStayDates_InclusiveRange(t *testing.T) {
	checkIn := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 3, 13, 11, 0, 0, 0, time.UTC)

	days := StayDates(checkIn, checkOut)

	assert.Len(t, days, 4)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), days[0])
	assert.Equal(t, time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC), days[3])
}
