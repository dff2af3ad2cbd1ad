package models

import "time"

// CheckoutRecord archives a guest's stay and its final bill at the moment
// the guest is detached from a room, whether by check-out or by a status
// override away from Occupied. Without it the stay would be lost.
type CheckoutRecord struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	RoomNumber   uint          `gorm:"not null" json:"room_number"`
	BillNumber   string        `gorm:"size:20;not null" json:"bill_number"`
	GuestName    string        `gorm:"not null" json:"guest_name"`
	GuestPhone   string        `json:"guest_phone"`
	CheckInDate  time.Time     `gorm:"not null" json:"check_in_date"`
	CheckOutDate time.Time     `gorm:"not null" json:"check_out_date"`
	Duration     int           `gorm:"not null" json:"duration"`
	BaseAmount   float64       `json:"base_amount"`
	CGST         float64       `json:"cgst"`
	SGST         float64       `json:"sgst"`
	TotalTax     float64       `json:"total_tax"`
	TotalAmount  float64       `json:"total_amount"`
	AdvancePaid  float64       `json:"advance_paid"`
	NetPayable   float64       `json:"net_payable"`
	Method       PaymentMethod `gorm:"type:varchar(20)" json:"payment_method"`
	Reason       string        `gorm:"size:30;not null" json:"reason"`
	CreatedAt    time.Time     `json:"created_at"`
}
