package service

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/ferhhaann/manzil-hotel-dashboard/internal/billing"
	"github.com/ferhhaann/manzil-hotel-dashboard/internal/models"
	"github.com/ferhhaann/manzil-hotel-dashboard/internal/repository"
	"github.com/ferhhaann/manzil-hotel-dashboard/pkg/rabbitmq"
	"gorm.io/gorm"
)

type ReservationService interface {
	Create(ctx context.Context, reservation *models.Reservation) (*models.Reservation, error)
	Update(ctx context.Context, id string, updated *models.Reservation) (*models.Reservation, error)
	Cancel(ctx context.Context, id string) (*models.Reservation, error)
	SetStatus(ctx context.Context, id string, status models.ReservationStatus) (*models.Reservation, error)
	Get(ctx context.Context, id string) (*models.Reservation, error)
	List(ctx context.Context, status *models.ReservationStatus) ([]models.Reservation, error)
	Calendar(ctx context.Context, month time.Month, year int) ([]string, error)
}

type reservationService struct {
	reservationRepo repository.ReservationRepository
	roomRepo        repository.RoomRepository
	publisher       *rabbitmq.Publisher
}

func NewReservationService(reservationRepo repository.ReservationRepository, roomRepo repository.RoomRepository, publisher *rabbitmq.Publisher) ReservationService {
	return &reservationService{
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		publisher:       publisher,
	}
}

func (s *reservationService) Create(ctx context.Context, reservation *models.Reservation) (*models.Reservation, error) {
	if err := s.validateAndPrice(ctx, reservation); err != nil {
		return nil, err
	}

	now := time.Now()
	reservation.ID = generateReservationID()
	reservation.Status = models.ReservationConfirmed
	reservation.CreatedAt = now
	reservation.UpdatedAt = now

	err := s.reservationRepo.Transaction(ctx, func(tx *gorm.DB) error {
		return s.reservationRepo.Create(ctx, tx, reservation)
	})
	if err != nil {
		return nil, err
	}

	s.publish("reservation.created", reservation)
	return reservation, nil
}

func (s *reservationService) Update(ctx context.Context, id string, updated *models.Reservation) (*models.Reservation, error) {
	if err := s.validateAndPrice(ctx, updated); err != nil {
		return nil, err
	}

	var result *models.Reservation

	err := s.reservationRepo.Transaction(ctx, func(tx *gorm.DB) error {
		existing, err := s.reservationRepo.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			return ErrReservationNotFound
		}

		if existing.Status.Terminal() {
			return &InvalidTransitionError{
				Entity: "reservation",
				ID:     id,
				Op:     "update",
				From:   string(existing.Status),
			}
		}

		updated.ID = existing.ID
		updated.Status = existing.Status
		updated.CreatedAt = existing.CreatedAt
		updated.UpdatedAt = time.Now()

		if err := s.reservationRepo.Save(ctx, tx, updated); err != nil {
			return err
		}
		result = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish("reservation.updated", result)
	return result, nil
}

// Cancel terminates a reservation. Room occupancy is a separate registry:
// cancelling never frees a physically occupied room.
func (s *reservationService) Cancel(ctx context.Context, id string) (*models.Reservation, error) {
	var result *models.Reservation

	err := s.reservationRepo.Transaction(ctx, func(tx *gorm.DB) error {
		reservation, err := s.reservationRepo.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			return ErrReservationNotFound
		}

		if reservation.Status.Terminal() {
			return &InvalidTransitionError{
				Entity: "reservation",
				ID:     id,
				Op:     "cancel",
				From:   string(reservation.Status),
			}
		}

		reservation.Status = models.ReservationCancelled
		reservation.UpdatedAt = time.Now()

		if err := s.reservationRepo.Save(ctx, tx, reservation); err != nil {
			return err
		}
		result = reservation
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish("reservation.cancelled", result)
	return result, nil
}

func (s *reservationService) SetStatus(ctx context.Context, id string, status models.ReservationStatus) (*models.Reservation, error) {
	var result *models.Reservation

	err := s.reservationRepo.Transaction(ctx, func(tx *gorm.DB) error {
		reservation, err := s.reservationRepo.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			return ErrReservationNotFound
		}

		if !statusTransitionAllowed(reservation.Status, status) {
			return &InvalidTransitionError{
				Entity: "reservation",
				ID:     id,
				Op:     "move",
				From:   string(reservation.Status),
				To:     string(status),
			}
		}

		reservation.Status = status
		reservation.UpdatedAt = time.Now()

		if err := s.reservationRepo.Save(ctx, tx, reservation); err != nil {
			return err
		}
		result = reservation
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish("reservation.updated", result)
	return result, nil
}

func (s *reservationService) Get(ctx context.Context, id string) (*models.Reservation, error) {
	reservation, err := s.reservationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrReservationNotFound
	}
	return reservation, nil
}

func (s *reservationService) List(ctx context.Context, status *models.ReservationStatus) ([]models.Reservation, error) {
	return s.reservationRepo.FindAll(ctx, status)
}

// Calendar returns the sorted set of dates (YYYY-MM-DD) on which at least
// one non-cancelled reservation has an active stay, expanded inclusively
// from check-in to check-out. Month and year, when non-zero, narrow the
// set.
func (s *reservationService) Calendar(ctx context.Context, month time.Month, year int) ([]string, error) {
	reservations, err := s.reservationRepo.FindAll(ctx, nil)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, r := range reservations {
		if r.Status == models.ReservationCancelled {
			continue
		}
		for _, day := range billing.StayDates(r.CheckInDate, r.CheckOutDate) {
			if month > 0 && day.Month() != month {
				continue
			}
			if year > 0 && day.Year() != year {
				continue
			}
			seen[day.Format("2006-01-02")] = struct{}{}
		}
	}

	days := make([]string, 0, len(seen))
	for day := range seen {
		days = append(days, day)
	}
	sort.Strings(days)
	return days, nil
}

// validateAndPrice checks the reservation fields and recomputes the total
// from the selected rooms' nightly rates (custom overrides win) times the
// number of nights, then derives the payment status from the advance.
func (s *reservationService) validateAndPrice(ctx context.Context, r *models.Reservation) error {
	if r.GuestName == "" {
		return &ValidationError{Field: "guest_name", Reason: "is required"}
	}
	if r.GuestPhone == "" {
		return &ValidationError{Field: "guest_phone", Reason: "is required"}
	}
	if len(r.RoomNumbers) == 0 {
		return &ValidationError{Field: "room_numbers", Reason: "must contain at least one room"}
	}
	if r.CheckInDate.IsZero() || r.CheckOutDate.IsZero() {
		return &ValidationError{Field: "check_in_date/check_out_date", Reason: "are required"}
	}
	if r.CheckOutDate.Before(r.CheckInDate) {
		return &ValidationError{Field: "check_out_date", Reason: "must not be before check-in date"}
	}
	if r.AdvanceAmount < 0 {
		return &ValidationError{Field: "advance_amount", Reason: "must not be negative"}
	}

	rooms, err := s.roomRepo.FindByNumbers(ctx, r.RoomNumbers)
	if err != nil {
		return err
	}
	rates := make(map[uint]float64, len(rooms))
	for _, room := range rooms {
		rates[room.Number] = room.Rate
	}

	var nightly float64
	for _, number := range r.RoomNumbers {
		rate, ok := rates[number]
		if !ok {
			return &ValidationError{Field: "room_numbers", Reason: fmt.Sprintf("room %d does not exist", number)}
		}
		if override, ok := r.RoomRates[number]; ok && override > 0 {
			rate = override
		}
		nightly += rate
	}

	nights := billing.Nights(r.CheckInDate, r.CheckOutDate)
	r.TotalAmount = nightly * float64(nights)
	r.PaymentStatus = billing.DerivePaymentStatus(r.AdvanceAmount, r.TotalAmount)
	return nil
}

func statusTransitionAllowed(from, to models.ReservationStatus) bool {
	switch from {
	case models.ReservationPending:
		return to == models.ReservationConfirmed || to == models.ReservationCheckedIn
	case models.ReservationConfirmed:
		return to == models.ReservationCheckedIn
	case models.ReservationCheckedIn:
		return to == models.ReservationCheckedOut
	default:
		return false
	}
}

// generateReservationID mirrors the bill-number shape with a RES prefix.
// Uniqueness is enforced by the primary key, not the generator.
func generateReservationID() string {
	return fmt.Sprintf("RES%s%03d", time.Now().Format("060102"), rand.IntN(1000))
}

func (s *reservationService) publish(routingKey string, payload any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(routingKey, payload); err != nil {
		log.Printf("[ReservationService] publish %s failed: %v", routingKey, err)
	}
}
