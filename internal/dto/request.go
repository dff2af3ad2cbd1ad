package dto

import (
	"time"

	"github.com/ferhhaann/manzil-hotel-dashboard/internal/models"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CheckInRequest struct {
	BillNumber    string               `json:"bill_number"`
	Name          string               `json:"name"`
	Phone         string               `json:"phone"`
	Address       string               `json:"address"`
	CheckInDate   time.Time            `json:"check_in_date"`
	CheckOutDate  time.Time            `json:"check_out_date"`
	Adults        int                  `json:"number_of_adults"`
	Children      int                  `json:"number_of_children"`
	DailyRent     float64              `json:"daily_rent"`
	AdvancePaid   float64              `json:"advance_paid"`
	PaymentMethod models.PaymentMethod `json:"payment_method"`
	GSTRate       float64              `json:"gst_rate"`
	TaxIncluded   bool                 `json:"tax_included"`
}

func (r *CheckInRequest) ToGuest() *models.Guest {
	method := r.PaymentMethod
	if method == "" {
		method = models.PayCash
	}
	return &models.Guest{
		BillNumber:    r.BillNumber,
		Name:          r.Name,
		Phone:         r.Phone,
		Address:       r.Address,
		CheckInDate:   r.CheckInDate,
		CheckOutDate:  r.CheckOutDate,
		Adults:        r.Adults,
		Children:      r.Children,
		DailyRent:     r.DailyRent,
		AdvancePaid:   r.AdvancePaid,
		PaymentMethod: method,
		GSTRate:       r.GSTRate,
		TaxIncluded:   r.TaxIncluded,
	}
}

type RoomStatusRequest struct {
	Status models.RoomStatus `json:"status"`
}

type ReservationRequest struct {
	GuestName       string                   `json:"guest_name"`
	GuestEmail      string                   `json:"guest_email"`
	GuestPhone      string                   `json:"guest_phone"`
	RoomNumbers     []uint                   `json:"room_numbers"`
	RoomRates       map[uint]float64         `json:"room_rates,omitempty"`
	CheckInDate     time.Time                `json:"check_in_date"`
	CheckOutDate    time.Time                `json:"check_out_date"`
	Adults          int                      `json:"adults"`
	Children        int                      `json:"children"`
	SpecialRequests string                   `json:"special_requests"`
	AdvanceAmount   float64                  `json:"advance_amount"`
	PaymentMethod   models.PaymentMethod     `json:"payment_method"`
	Source          models.ReservationSource `json:"source"`
}

func (r *ReservationRequest) ToReservation() *models.Reservation {
	method := r.PaymentMethod
	if method == "" {
		method = models.PayCash
	}
	source := r.Source
	if source == "" {
		source = models.SourceDirect
	}
	return &models.Reservation{
		GuestName:       r.GuestName,
		GuestEmail:      r.GuestEmail,
		GuestPhone:      r.GuestPhone,
		RoomNumbers:     r.RoomNumbers,
		RoomRates:       r.RoomRates,
		CheckInDate:     r.CheckInDate,
		CheckOutDate:    r.CheckOutDate,
		Adults:          r.Adults,
		Children:        r.Children,
		SpecialRequests: r.SpecialRequests,
		AdvanceAmount:   r.AdvanceAmount,
		PaymentMethod:   method,
		Source:          source,
	}
}

type ReservationStatusRequest struct {
	Status models.ReservationStatus `json:"status"`
}

type ExpenseRequest struct {
	Date          time.Time            `json:"date"`
	Category      string               `json:"category"`
	Description   string               `json:"description"`
	Amount        float64              `json:"amount"`
	PaidBy        string               `json:"paid_by"`
	PaymentMethod models.PaymentMethod `json:"payment_method"`
	Reference     string               `json:"reference"`
}

func (r *ExpenseRequest) ToExpense() *models.Expense {
	method := r.PaymentMethod
	if method == "" {
		method = models.PayCash
	}
	return &models.Expense{
		Date:          r.Date,
		Category:      r.Category,
		Description:   r.Description,
		Amount:        r.Amount,
		PaidBy:        r.PaidBy,
		PaymentMethod: method,
		Reference:     r.Reference,
	}
}
