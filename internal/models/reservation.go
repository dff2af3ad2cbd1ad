package models

import "time"

type ReservationStatus string

const (
	ReservationPending    ReservationStatus = "Pending"
	ReservationConfirmed  ReservationStatus = "Confirmed"
	ReservationCancelled  ReservationStatus = "Cancelled"
	ReservationCheckedIn  ReservationStatus = "Checked-in"
	ReservationCheckedOut ReservationStatus = "Checked-out"
)

// Terminal reports whether a reservation in this status can still change.
func (s ReservationStatus) Terminal() bool {
	return s == ReservationCancelled || s == ReservationCheckedOut
}

type PaymentStatus string

const (
	PaymentPending       PaymentStatus = "Pending"
	PaymentPartiallyPaid PaymentStatus = "Partially Paid"
	PaymentPaid          PaymentStatus = "Paid"
)

type ReservationSource string

const (
	SourceDirect  ReservationSource = "Direct"
	SourceWebsite ReservationSource = "Website"
	SourceOTA     ReservationSource = "OTA"
	SourcePhone   ReservationSource = "Phone"
	SourceWalkIn  ReservationSource = "Walk-in"
)

// Reservation is a forward booking, independent of physical room occupancy.
// Cancelling one never frees an occupied room.
type Reservation struct {
	ID              string            `gorm:"primaryKey;size:20" json:"id"`
	GuestName       string            `gorm:"not null" json:"guest_name"`
	GuestEmail      string            `json:"guest_email"`
	GuestPhone      string            `gorm:"not null" json:"guest_phone"`
	RoomNumbers     []uint            `gorm:"serializer:json;not null" json:"room_numbers"`
	RoomRates       map[uint]float64  `gorm:"serializer:json" json:"room_rates,omitempty"`
	CheckInDate     time.Time         `gorm:"not null" json:"check_in_date"`
	CheckOutDate    time.Time         `gorm:"not null" json:"check_out_date"`
	Adults          int               `json:"adults"`
	Children        int               `json:"children"`
	SpecialRequests string            `json:"special_requests,omitempty"`
	Status          ReservationStatus `gorm:"type:varchar(20);not null;default:'Confirmed'" json:"status"`
	TotalAmount     float64           `gorm:"not null" json:"total_amount"`
	AdvanceAmount   float64           `gorm:"not null;default:0" json:"advance_amount"`
	PaymentStatus   PaymentStatus     `gorm:"type:varchar(20);not null;default:'Pending'" json:"payment_status"`
	PaymentMethod   PaymentMethod     `gorm:"type:varchar(20);not null;default:'Cash'" json:"payment_method"`
	Source          ReservationSource `gorm:"type:varchar(20);not null;default:'Direct'" json:"source"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}
