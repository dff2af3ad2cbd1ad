package service

import (
	"context"
	"time"

	"github.com/ferhhaann/manzil-hotel-dashboard/internal/billing"
	"github.com/ferhhaann/manzil-hotel-dashboard/internal/models"
	"github.com/ferhhaann/manzil-hotel-dashboard/internal/repository"
)

// DailyBucket holds one calendar day of the monthly report. Every day of
// the month gets a bucket, zeros included.
type DailyBucket struct {
	Day      int     `json:"day"`
	Revenue  float64 `json:"revenue"`
	Bookings int     `json:"bookings"`
}

type OccupancyByType struct {
	Type     models.RoomType `json:"type"`
	Rooms    int             `json:"rooms"`
	Occupied int             `json:"occupied"`
}

type MonthlyReport struct {
	Month                 int               `json:"month"`
	Year                  int               `json:"year"`
	TotalBookings         int               `json:"total_bookings"`
	TotalRevenue          float64           `json:"total_revenue"`
	TotalTax              float64           `json:"total_tax"`
	TotalCGST             float64           `json:"total_cgst"`
	TotalSGST             float64           `json:"total_sgst"`
	AverageSalePerBooking float64           `json:"average_sale_per_booking"`
	Daily                 []DailyBucket     `json:"daily"`
	Occupancy             []OccupancyByType `json:"occupancy"`
}

type ReportService interface {
	Monthly(ctx context.Context, month time.Month, year int) (*MonthlyReport, error)
}

type reportService struct {
	roomRepo repository.RoomRepository
}

func NewReportService(roomRepo repository.RoomRepository) ReportService {
	return &reportService{roomRepo: roomRepo}
}

// Monthly replays the billing engine over every occupied room whose guest
// checked in during the target month. It only reads the snapshot it is
// given; nothing is mutated.
func (s *reportService) Monthly(ctx context.Context, month time.Month, year int) (*MonthlyReport, error) {
	rooms, err := s.roomRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	report := &MonthlyReport{
		Month: int(month),
		Year:  year,
		Daily: make([]DailyBucket, daysInMonth),
	}
	for i := range report.Daily {
		report.Daily[i].Day = i + 1
	}

	occupancy := map[models.RoomType]*OccupancyByType{
		models.RoomTypePremium: {Type: models.RoomTypePremium},
		models.RoomTypeDeluxe:  {Type: models.RoomTypeDeluxe},
	}

	for _, room := range rooms {
		if o, ok := occupancy[room.Type]; ok {
			o.Rooms++
			if room.Status == models.RoomOccupied {
				o.Occupied++
			}
		}

		if room.Status != models.RoomOccupied || room.Guest == nil {
			continue
		}
		checkIn := room.Guest.CheckInDate
		if checkIn.Month() != month || checkIn.Year() != year {
			continue
		}

		bill := billing.ComputeBill(room.Guest)
		report.TotalBookings++
		report.TotalRevenue += bill.TotalAmount
		report.TotalTax += bill.TotalTax
		report.TotalCGST += bill.CGST
		report.TotalSGST += bill.SGST

		bucket := &report.Daily[checkIn.Day()-1]
		bucket.Revenue += bill.TotalAmount
		bucket.Bookings++
	}

	if report.TotalBookings > 0 {
		report.AverageSalePerBooking = report.TotalRevenue / float64(report.TotalBookings)
	}

	report.Occupancy = []OccupancyByType{
		*occupancy[models.RoomTypePremium],
		*occupancy[models.RoomTypeDeluxe],
	}
	return report, nil
}
