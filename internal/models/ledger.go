package models

import "time"

// Sale is one row of the sales ledger. A row is appended automatically on
// every check-out; the status mirrors how much of the bill the advance
// covered at that point.
type Sale struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	Date          time.Time     `gorm:"not null" json:"date"`
	BillNumber    string        `gorm:"size:20;not null" json:"bill_number"`
	GuestName     string        `gorm:"not null" json:"guest_name"`
	RoomNumber    uint          `gorm:"not null" json:"room_number"`
	Amount        float64       `gorm:"not null" json:"amount"`
	PaymentMethod PaymentMethod `gorm:"type:varchar(20)" json:"payment_method"`
	Status        PaymentStatus `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
}

type Expense struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	Date          time.Time     `gorm:"not null" json:"date"`
	Category      string        `gorm:"size:50;not null" json:"category"`
	Description   string        `gorm:"not null" json:"description"`
	Amount        float64       `gorm:"not null" json:"amount"`
	PaidBy        string        `json:"paid_by"`
	PaymentMethod PaymentMethod `gorm:"type:varchar(20);not null;default:'Cash'" json:"payment_method"`
	Reference     string        `json:"reference,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}
