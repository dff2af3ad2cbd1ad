package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ferhhaann/manzil-hotel-dashboard/internal/billing"
	"github.com/ferhhaann/manzil-hotel-dashboard/internal/models"
	"github.com/ferhhaann/manzil-hotel-dashboard/internal/repository"
	"github.com/ferhhaann/manzil-hotel-dashboard/pkg/rabbitmq"
	"gorm.io/gorm"
)

type RoomService interface {
	ListRooms(ctx context.Context) ([]models.Room, error)
	GetRoom(ctx context.Context, number uint) (*models.Room, error)
	CheckIn(ctx context.Context, number uint, guest *models.Guest) (*models.Room, error)
	CheckOut(ctx context.Context, number uint) (*billing.BillSummary, error)
	SetStatus(ctx context.Context, number uint, status models.RoomStatus) (*models.Room, error)
	UpdateGuest(ctx context.Context, number uint, guest *models.Guest) (*models.Room, error)
	Bill(ctx context.Context, number uint) (*billing.BillSummary, error)
	History(ctx context.Context) ([]models.CheckoutRecord, error)
}

type roomService struct {
	roomRepo     repository.RoomRepository
	checkoutRepo repository.CheckoutRepository
	ledgerRepo   repository.LedgerRepository
	publisher    *rabbitmq.Publisher
}

func NewRoomService(roomRepo repository.RoomRepository, checkoutRepo repository.CheckoutRepository, ledgerRepo repository.LedgerRepository, publisher *rabbitmq.Publisher) RoomService {
	return &roomService{
		roomRepo:     roomRepo,
		checkoutRepo: checkoutRepo,
		ledgerRepo:   ledgerRepo,
		publisher:    publisher,
	}
}

func (s *roomService) ListRooms(ctx context.Context) ([]models.Room, error) {
	return s.roomRepo.FindAll(ctx)
}

func (s *roomService) GetRoom(ctx context.Context, number uint) (*models.Room, error) {
	room, err := s.roomRepo.FindByNumber(ctx, number)
	if err != nil {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

func (s *roomService) CheckIn(ctx context.Context, number uint, guest *models.Guest) (*models.Room, error) {
	if err := validateGuest(guest); err != nil {
		return nil, err
	}

	var result *models.Room

	err := s.roomRepo.Transaction(ctx, func(tx *gorm.DB) error {
		// Lock the room row — serializes concurrent front-desk edits
		room, err := s.roomRepo.FindByNumberForUpdate(ctx, tx, number)
		if err != nil {
			return ErrRoomNotFound
		}

		if room.Status != models.RoomAvailable {
			return &InvalidTransitionError{
				Entity: "room",
				ID:     fmt.Sprint(number),
				Op:     "check in",
				From:   string(room.Status),
				To:     string(models.RoomAvailable),
			}
		}

		guest.RoomNumber = number
		if guest.BillNumber == "" {
			guest.BillNumber = billing.GenerateBillNumber()
		}

		if err := s.roomRepo.SaveGuest(ctx, tx, guest); err != nil {
			return err
		}
		if err := s.roomRepo.UpdateStatus(ctx, tx, number, models.RoomOccupied); err != nil {
			return err
		}

		room.Status = models.RoomOccupied
		room.Guest = guest
		result = room
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish("guest.checked_in", result)
	return result, nil
}

func (s *roomService) CheckOut(ctx context.Context, number uint) (*billing.BillSummary, error) {
	var bill billing.BillSummary
	var record *models.CheckoutRecord

	err := s.roomRepo.Transaction(ctx, func(tx *gorm.DB) error {
		room, err := s.roomRepo.FindByNumberForUpdate(ctx, tx, number)
		if err != nil {
			return ErrRoomNotFound
		}

		if room.Status != models.RoomOccupied || room.Guest == nil {
			return &InvalidTransitionError{
				Entity: "room",
				ID:     fmt.Sprint(number),
				Op:     "check out",
				From:   string(room.Status),
				To:     string(models.RoomOccupied),
			}
		}

		guest := room.Guest
		bill = billing.ComputeBill(guest)

		record = checkoutRecord(guest, bill, "check-out")
		if err := s.checkoutRepo.Create(ctx, tx, record); err != nil {
			return err
		}

		sale := &models.Sale{
			Date:          time.Now(),
			BillNumber:    guest.BillNumber,
			GuestName:     guest.Name,
			RoomNumber:    number,
			Amount:        bill.TotalAmount,
			PaymentMethod: guest.PaymentMethod,
			Status:        billing.DerivePaymentStatus(guest.AdvancePaid, bill.TotalAmount),
		}
		if err := s.ledgerRepo.CreateSale(ctx, tx, sale); err != nil {
			return err
		}

		if err := s.roomRepo.DeleteGuest(ctx, tx, number); err != nil {
			return err
		}
		return s.roomRepo.UpdateStatus(ctx, tx, number, models.RoomCleaning)
	})
	if err != nil {
		return nil, err
	}

	s.publish("guest.checked_out", record)
	return &bill, nil
}

// SetStatus overwrites the room status unconditionally. Leaving Occupied
// for any other status archives the outgoing guest's stay into checkout
// history first, so the record survives the detach.
func (s *roomService) SetStatus(ctx context.Context, number uint, status models.RoomStatus) (*models.Room, error) {
	switch status {
	case models.RoomAvailable, models.RoomOccupied, models.RoomMaintenance, models.RoomCleaning:
	default:
		return nil, &ValidationError{Field: "status", Reason: "is not a valid room status"}
	}

	var result *models.Room

	err := s.roomRepo.Transaction(ctx, func(tx *gorm.DB) error {
		room, err := s.roomRepo.FindByNumberForUpdate(ctx, tx, number)
		if err != nil {
			return ErrRoomNotFound
		}

		if room.Guest != nil && status != models.RoomOccupied {
			bill := billing.ComputeBill(room.Guest)
			if err := s.checkoutRepo.Create(ctx, tx, checkoutRecord(room.Guest, bill, "status-override")); err != nil {
				return err
			}
			if err := s.roomRepo.DeleteGuest(ctx, tx, number); err != nil {
				return err
			}
			room.Guest = nil
		}

		if err := s.roomRepo.UpdateStatus(ctx, tx, number, status); err != nil {
			return err
		}

		room.Status = status
		result = room
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (s *roomService) UpdateGuest(ctx context.Context, number uint, guest *models.Guest) (*models.Room, error) {
	if err := validateGuest(guest); err != nil {
		return nil, err
	}

	var result *models.Room

	err := s.roomRepo.Transaction(ctx, func(tx *gorm.DB) error {
		room, err := s.roomRepo.FindByNumberForUpdate(ctx, tx, number)
		if err != nil {
			return ErrRoomNotFound
		}

		if room.Status != models.RoomOccupied || room.Guest == nil {
			return &InvalidTransitionError{
				Entity: "room",
				ID:     fmt.Sprint(number),
				Op:     "update guest on",
				From:   string(room.Status),
				To:     string(models.RoomOccupied),
			}
		}

		guest.RoomNumber = number
		if guest.BillNumber == "" {
			guest.BillNumber = room.Guest.BillNumber
		}

		if err := s.roomRepo.SaveGuest(ctx, tx, guest); err != nil {
			return err
		}

		room.Guest = guest
		result = room
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Bill computes an on-demand summary for an occupied room's current stay.
func (s *roomService) Bill(ctx context.Context, number uint) (*billing.BillSummary, error) {
	room, err := s.roomRepo.FindByNumber(ctx, number)
	if err != nil {
		return nil, ErrRoomNotFound
	}
	if room.Guest == nil {
		return nil, ErrRoomVacant
	}

	bill := billing.ComputeBill(room.Guest)
	return &bill, nil
}

func (s *roomService) History(ctx context.Context) ([]models.CheckoutRecord, error) {
	return s.checkoutRepo.FindAll(ctx)
}

func (s *roomService) publish(routingKey string, payload any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(routingKey, payload); err != nil {
		log.Printf("[RoomService] publish %s failed: %v", routingKey, err)
	}
}

func checkoutRecord(guest *models.Guest, bill billing.BillSummary, reason string) *models.CheckoutRecord {
	return &models.CheckoutRecord{
		RoomNumber:   guest.RoomNumber,
		BillNumber:   guest.BillNumber,
		GuestName:    guest.Name,
		GuestPhone:   guest.Phone,
		CheckInDate:  guest.CheckInDate,
		CheckOutDate: guest.CheckOutDate,
		Duration:     bill.Duration,
		BaseAmount:   bill.BaseAmount,
		CGST:         bill.CGST,
		SGST:         bill.SGST,
		TotalTax:     bill.TotalTax,
		TotalAmount:  bill.TotalAmount,
		AdvancePaid:  bill.AdvancePaid,
		NetPayable:   bill.NetPayable,
		Method:       guest.PaymentMethod,
		Reason:       reason,
	}
}

func validateGuest(g *models.Guest) error {
	if g.Name == "" {
		return &ValidationError{Field: "name", Reason: "is required"}
	}
	if g.Phone == "" {
		return &ValidationError{Field: "phone", Reason: "is required"}
	}
	if g.CheckInDate.IsZero() || g.CheckOutDate.IsZero() {
		return &ValidationError{Field: "check_in_date/check_out_date", Reason: "are required"}
	}
	if !g.CheckOutDate.After(g.CheckInDate) {
		return &ValidationError{Field: "check_out_date", Reason: "must be after check-in date"}
	}
	if g.DailyRent < 0 {
		return &ValidationError{Field: "daily_rent", Reason: "must not be negative"}
	}
	if g.AdvancePaid < 0 {
		return &ValidationError{Field: "advance_paid", Reason: "must not be negative"}
	}
	if g.GSTRate < 0 || g.GSTRate > 100 {
		return &ValidationError{Field: "gst_rate", Reason: "must be between 0 and 100"}
	}
	return nil
}
