package dto

import (
	"strconv"

	"github.com/ferhhaann/manzil-hotel-dashboard/internal/models"
)

type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

type CalendarResponse struct {
	Days []string `json:"days"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

// SaleRows projects the sales ledger into plain tabular rows (header
// first) for CSV or print sinks. The core never formats beyond this.
func SaleRows(sales []models.Sale) [][]string {
	rows := make([][]string, 0, len(sales)+1)
	rows = append(rows, []string{"date", "bill_number", "guest_name", "room_number", "amount", "payment_method", "status"})
	for _, s := range sales {
		rows = append(rows, []string{
			s.Date.Format("2006-01-02"),
			s.BillNumber,
			s.GuestName,
			strconv.FormatUint(uint64(s.RoomNumber), 10),
			strconv.FormatFloat(s.Amount, 'f', 2, 64),
			string(s.PaymentMethod),
			string(s.Status),
		})
	}
	return rows
}

func ExpenseRows(expenses []models.Expense) [][]string {
	rows := make([][]string, 0, len(expenses)+1)
	rows = append(rows, []string{"date", "category", "description", "amount", "paid_by", "payment_method", "reference"})
	for _, e := range expenses {
		rows = append(rows, []string{
			e.Date.Format("2006-01-02"),
			e.Category,
			e.Description,
			strconv.FormatFloat(e.Amount, 'f', 2, 64),
			e.PaidBy,
			string(e.PaymentMethod),
			e.Reference,
		})
	}
	return rows
}
