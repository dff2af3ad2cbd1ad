package service

import (
	"context"
	"testing"
	"time"

	"github.com/ferhhaann/manzil-hotel-dashboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func occupiedRoom(number uint, roomType models.RoomType, rent float64, checkIn, checkOut time.Time) *models.Room {
	return &models.Room{
		Number: number,
		Type:   roomType,
		Rate:   rent,
		Status: models.RoomOccupied,
		Guest: &models.Guest{
			RoomNumber:   number,
			Name:         "Guest",
			Phone:        "9000000000",
			CheckInDate:  checkIn,
			CheckOutDate: checkOut,
			DailyRent:    rent,
			GSTRate:      12,
		},
	}
}

func TestMonthlyReport_EmptyMonth(t *testing.T) {
	svc := NewReportService(newMockRoomRepo(
		&models.Room{Number: 101, Type: models.RoomTypeDeluxe, Rate: 2000, Status: models.RoomAvailable},
		&models.Room{Number: 203, Type: models.RoomTypePremium, Rate: 3000, Status: models.RoomMaintenance},
	))

	report, err := svc.Monthly(context.Background(), time.February, 2026)
	require.NoError(t, err)

	assert.Equal(t, 0, report.TotalBookings)
	assert.Zero(t, report.TotalRevenue)
	assert.Zero(t, report.AverageSalePerBooking)

	// Every day of February 2026 gets a zero bucket
	require.Len(t, report.Daily, 28)
	for i, bucket := range report.Daily {
		assert.Equal(t, i+1, bucket.Day)
		assert.Zero(t, bucket.Revenue)
		assert.Zero(t, bucket.Bookings)
	}
}

func TestMonthlyReport_Aggregates(t *testing.T) {
	svc := NewReportService(newMockRoomRepo(
		// 2 nights x 2000 + 12% = 4480, checked in on the 5th
		occupiedRoom(101, models.RoomTypeDeluxe, 2000,
			time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 7, 11, 0, 0, 0, time.UTC)),
		// 1 night x 3000 + 12% = 3360, checked in on the 12th
		occupiedRoom(203, models.RoomTypePremium, 3000,
			time.Date(2026, 3, 12, 12, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 13, 11, 0, 0, 0, time.UTC)),
		// Checked in during February: outside the window
		occupiedRoom(204, models.RoomTypePremium, 3000,
			time.Date(2026, 2, 25, 12, 0, 0, 0, time.UTC),
			time.Date(2026, 2, 27, 11, 0, 0, 0, time.UTC)),
		&models.Room{Number: 102, Type: models.RoomTypeDeluxe, Rate: 2000, Status: models.RoomAvailable},
	))

	report, err := svc.Monthly(context.Background(), time.March, 2026)
	require.NoError(t, err)

	assert.Equal(t, 2, report.TotalBookings)
	assert.InDelta(t, 7840.0, report.TotalRevenue, 0.01)
	assert.InDelta(t, 840.0, report.TotalTax, 0.01)
	assert.InDelta(t, 420.0, report.TotalCGST, 0.01)
	assert.InDelta(t, 420.0, report.TotalSGST, 0.01)
	assert.InDelta(t, 3920.0, report.AverageSalePerBooking, 0.01)

	require.Len(t, report.Daily, 31)
	assert.InDelta(t, 4480.0, report.Daily[4].Revenue, 0.01)
	assert.Equal(t, 1, report.Daily[4].Bookings)
	assert.InDelta(t, 3360.0, report.Daily[11].Revenue, 0.01)
	assert.Equal(t, 1, report.Daily[11].Bookings)
	assert.Zero(t, report.Daily[0].Revenue)

	// Occupancy counts the whole fleet, not just the report window
	require.Len(t, report.Occupancy, 2)
	byType := map[models.RoomType]OccupancyByType{}
	for _, o := range report.Occupancy {
		byType[o.Type] = o
	}
	assert.Equal(t, 2, byType[models.RoomTypeDeluxe].Rooms)
	assert.Equal(t, 1, byType[models.RoomTypeDeluxe].Occupied)
	assert.Equal(t, 2, byType[models.RoomTypePremium].Rooms)
	assert.Equal(t, 2, byType[models.RoomTypePremium].Occupied)
}
