package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skylux/booking-backend/internal/models"
	"github.com/skylux/booking-backend/internal/store"
)

func newSeatService(t *testing.T) *SeatService {
	t.Helper()
	flights := store.NewFlightStore([]*models.Flight{testFlight()})
	return NewSeatService(flights, testLogger())
}

func TestAssignSeat(t *testing.T) {
	svc := newSeatService(t)
	passenger := testPassengers(1)[0]

	assignment, err := svc.AssignSeat("SL001", passenger.ID, "12A", passenger)
	require.NoError(t, err)

	assert.Equal(t, "12A", assignment.SeatID)
	assert.Equal(t, passenger.ID, assignment.PassengerID)
	assert.False(t, assignment.AssignedAt.IsZero())
}

func TestAssignSeat_ExclusiveHold(t *testing.T) {
	svc := newSeatService(t)
	passengers := testPassengers(2)

	_, err := svc.AssignSeat("SL001", passengers[0].ID, "12A", passengers[0])
	require.NoError(t, err)

	_, err = svc.AssignSeat("SL001", passengers[1].ID, "12A", passengers[1])
	assert.ErrorIs(t, err, store.ErrSeatUnavailable)

	// The holder keeps the seat.
	status, err := svc.SeatStatus("SL001", "12A")
	require.NoError(t, err)
	assert.Equal(t, passengers[0].ID, status.PassengerID)
}

func TestAssignSeat_MovesExistingHolder(t *testing.T) {
	svc := newSeatService(t)
	passenger := testPassengers(1)[0]

	_, err := svc.AssignSeat("SL001", passenger.ID, "12A", passenger)
	require.NoError(t, err)
	_, err = svc.AssignSeat("SL001", passenger.ID, "12B", passenger)
	require.NoError(t, err)

	// The old seat is free again; the passenger holds only the new one.
	status, err := svc.SeatStatus("SL001", "12A")
	require.NoError(t, err)
	assert.Equal(t, models.SeatStatusAvailable, status.Status)

	assignments := svc.Assignments("SL001")
	require.Len(t, assignments, 1)
	assert.Equal(t, "12B", assignments[0].SeatID)
}

func TestAssignSeat_GenderedStatus(t *testing.T) {
	svc := newSeatService(t)
	passengers := testPassengers(2) // Alice (female), Bob (male)

	_, err := svc.AssignSeat("SL001", passengers[0].ID, "12A", passengers[0])
	require.NoError(t, err)
	_, err = svc.AssignSeat("SL001", passengers[1].ID, "12B", passengers[1])
	require.NoError(t, err)

	statusA, err := svc.SeatStatus("SL001", "12A")
	require.NoError(t, err)
	assert.Equal(t, models.SeatStatusOccupiedFemale, statusA.Status)

	statusB, err := svc.SeatStatus("SL001", "12B")
	require.NoError(t, err)
	assert.Equal(t, models.SeatStatusOccupiedMale, statusB.Status)
}

func TestAssignSeat_UnknownSeat(t *testing.T) {
	svc := newSeatService(t)
	passenger := testPassengers(1)[0]

	_, err := svc.AssignSeat("SL001", passenger.ID, "99Z", passenger)
	assert.ErrorIs(t, err, store.ErrSeatNotFound)
}

func TestReleaseSeat_Idempotent(t *testing.T) {
	svc := newSeatService(t)
	passenger := testPassengers(1)[0]

	_, err := svc.AssignSeat("SL001", passenger.ID, "12A", passenger)
	require.NoError(t, err)

	svc.ReleaseSeat("SL001", passenger.ID)
	svc.ReleaseSeat("SL001", passenger.ID) // second release is a no-op

	status, err := svc.SeatStatus("SL001", "12A")
	require.NoError(t, err)
	assert.Equal(t, models.SeatStatusAvailable, status.Status)
	assert.Empty(t, svc.Assignments("SL001"))
}

func TestSwapSeat(t *testing.T) {
	svc := newSeatService(t)
	passenger := testPassengers(1)[0]

	_, err := svc.AssignSeat("SL001", passenger.ID, "12A", passenger)
	require.NoError(t, err)

	assignment, err := svc.SwapSeat("SL001", passenger.ID, "13A", passenger)
	require.NoError(t, err)
	assert.Equal(t, "13A", assignment.SeatID)

	status, err := svc.SeatStatus("SL001", "12A")
	require.NoError(t, err)
	assert.Equal(t, models.SeatStatusAvailable, status.Status)
}

func TestSwapSeat_TakenTargetKeepsOriginal(t *testing.T) {
	svc := newSeatService(t)
	passengers := testPassengers(2)

	_, err := svc.AssignSeat("SL001", passengers[0].ID, "12A", passengers[0])
	require.NoError(t, err)
	_, err = svc.AssignSeat("SL001", passengers[1].ID, "12B", passengers[1])
	require.NoError(t, err)

	_, err = svc.SwapSeat("SL001", passengers[0].ID, "12B", passengers[0])
	assert.ErrorIs(t, err, store.ErrSeatUnavailable)

	status, err := svc.SeatStatus("SL001", "12A")
	require.NoError(t, err)
	assert.Equal(t, passengers[0].ID, status.PassengerID)
}

func TestAutoAssign_Deterministic(t *testing.T) {
	passengers := testPassengers(2)

	first := newSeatService(t)
	a, err := first.AutoAssign("SL001", passengers, models.ClassEconomy, models.SeatPreferences{})
	require.NoError(t, err)

	second := newSeatService(t)
	b, err := second.AutoAssign("SL001", passengers, models.ClassEconomy, models.SeatPreferences{})
	require.NoError(t, err)

	require.Len(t, a, 2)
	for i := range a {
		assert.Equal(t, a[i].SeatID, b[i].SeatID)
	}
	// Front of the cabin first.
	assert.Equal(t, "12A", a[0].SeatID)
	assert.Equal(t, "12B", a[1].SeatID)
}

func TestAutoAssign_PreferredTypeFirst(t *testing.T) {
	svc := newSeatService(t)
	passengers := testPassengers(2)

	assignments, err := svc.AutoAssign("SL001", passengers, models.ClassEconomy, models.SeatPreferences{
		SeatType: models.SeatTypeWindow,
	})
	require.NoError(t, err)

	// Window seats 12A and 12F come before anything else.
	require.Len(t, assignments, 2)
	assert.Equal(t, "12A", assignments[0].SeatID)
	assert.Equal(t, "12F", assignments[1].SeatID)
}

func TestAutoAssign_OversizedPartySeatsWhatFits(t *testing.T) {
	svc := newSeatService(t)

	// The business cabin only has 8 seats; the ninth passenger stays
	// unseated rather than failing the whole party.
	assignments, err := svc.AutoAssign("SL001", testPassengers(9), models.ClassBusiness, models.SeatPreferences{})
	require.NoError(t, err)
	require.Len(t, assignments, 8)

	seated := map[string]bool{}
	for _, a := range assignments {
		seated[a.SeatID] = true
	}
	assert.Len(t, seated, 8)
	assert.Len(t, svc.Assignments("SL001"), 8)
}

func TestSeatMap_OverlayAndPrices(t *testing.T) {
	svc := newSeatService(t)
	passenger := testPassengers(1)[0]

	_, err := svc.AssignSeat("SL001", passenger.ID, "12A", passenger)
	require.NoError(t, err)

	view, err := svc.SeatMap("SL001")
	require.NoError(t, err)
	assert.Equal(t, "SL001", view.FlightID)

	economy := view.SeatMap[models.ClassEconomy]
	require.NotEmpty(t, economy)
	front := economy[0]
	assert.Equal(t, "12A", front[0].ID)
	assert.Equal(t, models.SeatStatusOccupiedFemale, front[0].Status)
	assert.Equal(t, 25.0, front[0].Price)
	assert.Equal(t, models.SeatStatusAvailable, front[1].Status)
}

func TestSelectionSummary(t *testing.T) {
	svc := newSeatService(t)
	passengers := testPassengers(2)

	_, err := svc.AssignSeat("SL001", passengers[0].ID, "12A", passengers[0]) // window 25
	require.NoError(t, err)
	_, err = svc.AssignSeat("SL001", passengers[1].ID, "13B", passengers[1]) // exit 75
	require.NoError(t, err)

	summary, err := svc.SelectionSummary("SL001")
	require.NoError(t, err)
	assert.Equal(t, 100.0, summary.TotalUpgradeFees)
	assert.Len(t, summary.Seats, 2)
}
