package models

import "time"

type PaymentMethod string

const (
	PayCash         PaymentMethod = "Cash"
	PayCard         PaymentMethod = "Card"
	PayUPI          PaymentMethod = "UPI"
	PayBankTransfer PaymentMethod = "Bank Transfer"
)

// Guest is the stay record attached to an occupied room. It lives exactly
// as long as the occupancy: check-out and status overrides away from
// Occupied detach it (after archiving into checkout history).
type Guest struct {
	RoomNumber    uint          `gorm:"primaryKey" json:"room_number"`
	BillNumber    string        `gorm:"size:20;not null" json:"bill_number"`
	Name          string        `gorm:"not null" json:"name"`
	Phone         string        `gorm:"not null" json:"phone"`
	Address       string        `json:"address"`
	CheckInDate   time.Time     `gorm:"not null" json:"check_in_date"`
	CheckOutDate  time.Time     `gorm:"not null" json:"check_out_date"`
	Adults        int           `json:"number_of_adults"`
	Children      int           `json:"number_of_children"`
	DailyRent     float64       `gorm:"not null" json:"daily_rent"`
	AdvancePaid   float64       `gorm:"not null;default:0" json:"advance_paid"`
	PaymentMethod PaymentMethod `gorm:"type:varchar(20);not null;default:'Cash'" json:"payment_method"`
	GSTRate       float64       `gorm:"not null;default:12" json:"gst_rate"`
	TaxIncluded   bool          `gorm:"not null;default:false" json:"tax_included"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
