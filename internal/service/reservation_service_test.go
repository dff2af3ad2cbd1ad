package service

import (
	"context"
	"testing"
	"time"

	"github.com/ferhhaann/manzil-hotel-dashboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// --- Mock ReservationRepository ---

type mockReservationRepo struct {
	store map[string]*models.Reservation
}

func newMockReservationRepo(reservations ...*models.Reservation) *mockReservationRepo {
	m := &mockReservationRepo{store: make(map[string]*models.Reservation)}
	for _, r := range reservations {
		m.store[r.ID] = r
	}
	return m
}

func (m *mockReservationRepo) Create(ctx context.Context, tx *gorm.DB, reservation *models.Reservation) error {
	m.store[reservation.ID] = reservation
	return nil
}

func (m *mockReservationRepo) FindByID(ctx context.Context, id string) (*models.Reservation, error) {
	r, ok := m.store[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r, nil
}

func (m *mockReservationRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id string) (*models.Reservation, error) {
	return m.FindByID(ctx, id)
}

func (m *mockReservationRepo) FindAll(ctx context.Context, status *models.ReservationStatus) ([]models.Reservation, error) {
	var out []models.Reservation
	for _, r := range m.store {
		if status != nil && r.Status != *status {
			continue
		}
		out = append(out, *r)
	}
	return out, nil
}

func (m *mockReservationRepo) Save(ctx context.Context, tx *gorm.DB, reservation *models.Reservation) error {
	m.store[reservation.ID] = reservation
	return nil
}

func (m *mockReservationRepo) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

// --- Helpers ---

func testFleet() *mockRoomRepo {
	return newMockRoomRepo(
		&models.Room{Number: 101, Type: models.RoomTypeDeluxe, Rate: 2000, Status: models.RoomAvailable},
		&models.Room{Number: 102, Type: models.RoomTypeDeluxe, Rate: 2000, Status: models.RoomAvailable},
		&models.Room{Number: 203, Type: models.RoomTypePremium, Rate: 3000, Status: models.RoomAvailable},
	)
}

func testReservation(rooms ...uint) *models.Reservation {
	return &models.Reservation{
		GuestName:    "Priya Nair",
		GuestPhone:   "9812345678",
		RoomNumbers:  rooms,
		CheckInDate:  time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2026, 4, 12, 0, 0, 0, 0, time.UTC),
		Adults:       2,
	}
}

func newReservationServiceForTest(repo *mockReservationRepo) ReservationService {
	return NewReservationService(repo, testFleet(), nil)
}

// --- Tests ---

func TestCreateReservation_Success(t *testing.T) {
	repo := newMockReservationRepo()
	svc := newReservationServiceForTest(repo)

	r := testReservation(101, 203)
	r.AdvanceAmount = 2500

	created, err := svc.Create(context.Background(), r)
	require.NoError(t, err)

	// (2000 + 3000) x 2 nights
	assert.InDelta(t, 10000.0, created.TotalAmount, 0.001)
	assert.Equal(t, models.PaymentPartiallyPaid, created.PaymentStatus)
	assert.Equal(t, models.ReservationConfirmed, created.Status)
	assert.Equal(t, "RES", created.ID[:3])
	assert.Len(t, created.ID, 12)
	assert.False(t, created.CreatedAt.IsZero())

	assert.Len(t, repo.store, 1)
}

func TestCreateReservation_NoRooms(t *testing.T) {
	repo := newMockReservationRepo()
	svc := newReservationServiceForTest(repo)

	_, err := svc.Create(context.Background(), testReservation())

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "room_numbers", validationErr.Field)
	assert.Empty(t, repo.store, "nothing should be stored on validation failure")
}

func TestCreateReservation_UnknownRoom(t *testing.T) {
	repo := newMockReservationRepo()
	svc := newReservationServiceForTest(repo)

	_, err := svc.Create(context.Background(), testReservation(101, 999))

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Empty(t, repo.store)
}

func TestCreateReservation_CustomRateOverride(t *testing.T) {
	svc := newReservationServiceForTest(newMockReservationRepo())

	r := testReservation(101)
	r.RoomRates = map[uint]float64{101: 2500}

	created, err := svc.Create(context.Background(), r)
	require.NoError(t, err)
	assert.InDelta(t, 5000.0, created.TotalAmount, 0.001)
}

func TestCreateReservation_ZeroRateOverrideIgnored(t *testing.T) {
	svc := newReservationServiceForTest(newMockReservationRepo())

	r := testReservation(101)
	r.RoomRates = map[uint]float64{101: 0}

	created, err := svc.Create(context.Background(), r)
	require.NoError(t, err)
	assert.InDelta(t, 4000.0, created.TotalAmount, 0.001, "zero override should fall back to the room rate")
}

func TestCreateReservation_PaymentStatusBoundaries(t *testing.T) {
	cases := []struct {
		name    string
		advance float64
		want    models.PaymentStatus
	}{
		{"no advance", 0, models.PaymentPending},
		{"partial advance", 3999.99, models.PaymentPartiallyPaid},
		{"advance equals total", 4000, models.PaymentPaid},
		{"advance above total", 5000, models.PaymentPaid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newReservationServiceForTest(newMockReservationRepo())
			r := testReservation(101) // 2000 x 2 nights = 4000
			r.AdvanceAmount = tc.advance

			created, err := svc.Create(context.Background(), r)
			require.NoError(t, err)
			assert.Equal(t, tc.want, created.PaymentStatus)
		})
	}
}

func TestUpdateReservation_RecomputesTotal(t *testing.T) {
	existing := testReservation(101)
	existing.ID = "RES260410001"
	existing.Status = models.ReservationConfirmed
	existing.TotalAmount = 4000
	existing.CreatedAt = time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	repo := newMockReservationRepo(existing)
	svc := newReservationServiceForTest(repo)

	updated := testReservation(101, 102)
	updated.CheckOutDate = time.Date(2026, 4, 13, 0, 0, 0, 0, time.UTC) // 3 nights

	result, err := svc.Update(context.Background(), "RES260410001", updated)
	require.NoError(t, err)

	assert.Equal(t, "RES260410001", result.ID)
	assert.InDelta(t, 12000.0, result.TotalAmount, 0.001)
	assert.Equal(t, models.ReservationConfirmed, result.Status)
	assert.Equal(t, existing.CreatedAt, result.CreatedAt)
	assert.True(t, result.UpdatedAt.After(existing.CreatedAt))
}

func TestUpdateReservation_CancelledIsImmutable(t *testing.T) {
	existing := testReservation(101)
	existing.ID = "RES260410002"
	existing.Status = models.ReservationCancelled
	repo := newMockReservationRepo(existing)
	svc := newReservationServiceForTest(repo)

	_, err := svc.Update(context.Background(), "RES260410002", testReservation(101))

	var transitionErr *InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, string(models.ReservationCancelled), transitionErr.From)
}

func TestCancelReservation(t *testing.T) {
	existing := testReservation(101)
	existing.ID = "RES260410003"
	existing.Status = models.ReservationConfirmed
	repo := newMockReservationRepo(existing)
	svc := newReservationServiceForTest(repo)

	cancelled, err := svc.Cancel(context.Background(), "RES260410003")
	require.NoError(t, err)
	assert.Equal(t, models.ReservationCancelled, cancelled.Status)

	// Second cancel hits the terminal guard
	_, err = svc.Cancel(context.Background(), "RES260410003")
	var transitionErr *InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
}

func TestCancelReservation_NotFound(t *testing.T) {
	svc := newReservationServiceForTest(newMockReservationRepo())

	_, err := svc.Cancel(context.Background(), "RES000000000")
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestSetReservationStatus_Transitions(t *testing.T) {
	cases := []struct {
		from    models.ReservationStatus
		to      models.ReservationStatus
		allowed bool
	}{
		{models.ReservationPending, models.ReservationConfirmed, true},
		{models.ReservationPending, models.ReservationCheckedIn, true},
		{models.ReservationConfirmed, models.ReservationCheckedIn, true},
		{models.ReservationCheckedIn, models.ReservationCheckedOut, true},
		{models.ReservationConfirmed, models.ReservationPending, false},
		{models.ReservationCheckedOut, models.ReservationCheckedIn, false},
		{models.ReservationCancelled, models.ReservationConfirmed, false},
	}

	for _, tc := range cases {
		t.Run(string(tc.from)+"_to_"+string(tc.to), func(t *testing.T) {
			existing := testReservation(101)
			existing.ID = "RES260410004"
			existing.Status = tc.from
			svc := newReservationServiceForTest(newMockReservationRepo(existing))

			result, err := svc.SetStatus(context.Background(), "RES260410004", tc.to)
			if tc.allowed {
				require.NoError(t, err)
				assert.Equal(t, tc.to, result.Status)
			} else {
				var transitionErr *InvalidTransitionError
				require.ErrorAs(t, err, &transitionErr)
			}
		})
	}
}

func TestCalendar_ExpandsStaysAndSkipsCancelled(t *testing.T) {
	active := testReservation(101)
	active.ID = "RES260410005"
	active.Status = models.ReservationConfirmed
	active.CheckInDate = time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	active.CheckOutDate = time.Date(2026, 4, 12, 0, 0, 0, 0, time.UTC)

	cancelled := testReservation(102)
	cancelled.ID = "RES260410006"
	cancelled.Status = models.ReservationCancelled
	cancelled.CheckInDate = time.Date(2026, 4, 20, 0, 0, 0, 0, time.UTC)
	cancelled.CheckOutDate = time.Date(2026, 4, 22, 0, 0, 0, 0, time.UTC)

	svc := newReservationServiceForTest(newMockReservationRepo(active, cancelled))

	days, err := svc.Calendar(context.Background(), time.April, 2026)
	require.NoError(t, err)

	assert.Equal(t, []string{"2026-04-10", "2026-04-11", "2026-04-12"}, days)
}

func TestCalendar_MonthFilter(t *testing.T) {
	spanning := testReservation(101)
	spanning.ID = "RES260410007"
	spanning.Status = models.ReservationConfirmed
	spanning.CheckInDate = time.Date(2026, 4, 29, 0, 0, 0, 0, time.UTC)
	spanning.CheckOutDate = time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC)

	svc := newReservationServiceForTest(newMockReservationRepo(spanning))

	april, err := svc.Calendar(context.Background(), time.April, 2026)
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-04-29", "2026-04-30"}, april)

	may, err := svc.Calendar(context.Background(), time.May, 2026)
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-05-01", "2026-05-02"}, may)
}
