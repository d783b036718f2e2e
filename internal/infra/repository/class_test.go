//go:build unit

package repository

import (
	"testing"
	"time"

	"fitclass-server/internal/domain/class"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reconstructClass(bookings []class.Booking, waitlist []uuid.UUID, seatMap []bool, seatBooking bool) *class.Instance {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return class.ReconstructInstance(
		uuid.New(), uuid.New(), uuid.New(),
		"Morning Flow", "",
		class.CategoryYoga, class.IntensityMedium,
		base, 60, 3,
		true, seatBooking,
		bookings, waitlist, seatMap,
		1, base, base,
	)
}

func TestCapacityStateRoundTrip(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("seat-tracked class with a checked-in booking", func(t *testing.T) {
		bookings := []class.Booking{
			{UserID: uuid.New(), SeatNumber: 0, BookedAt: base, CheckedInAt: base.Add(30 * time.Minute)},
			{UserID: uuid.New(), SeatNumber: 2, BookedAt: base.Add(time.Minute)},
		}
		waitlist := []uuid.UUID{uuid.New(), uuid.New()}
		seatMap := []bool{true, false, true}
		c := reconstructClass(bookings, waitlist, seatMap, true)

		bookingsRaw, waitlistRaw, seatMapRaw, err := marshalCapacityState(c)
		require.NoError(t, err)

		gotBookings, gotWaitlist, gotSeatMap, err := unmarshalCapacityState(bookingsRaw, waitlistRaw, seatMapRaw)
		require.NoError(t, err)

		assert.Equal(t, bookings, gotBookings)
		assert.Equal(t, waitlist, gotWaitlist)
		assert.Equal(t, seatMap, gotSeatMap)
	})

	t.Run("zero check-in timestamp survives the trip", func(t *testing.T) {
		bookings := []class.Booking{{UserID: uuid.New(), SeatNumber: 1, BookedAt: base}}
		c := reconstructClass(bookings, nil, []bool{false, true, false}, true)

		bookingsRaw, _, _, err := marshalCapacityState(c)
		require.NoError(t, err)

		gotBookings, _, _, err := unmarshalCapacityState(bookingsRaw, []byte(`[]`), nil)
		require.NoError(t, err)

		require.Len(t, gotBookings, 1)
		assert.False(t, gotBookings[0].IsCheckedIn())
		assert.True(t, gotBookings[0].CheckedInAt.IsZero())
	})

	t.Run("no seat map column when seat booking is disabled", func(t *testing.T) {
		bookings := []class.Booking{{UserID: uuid.New(), SeatNumber: 0, BookedAt: base}}
		c := reconstructClass(bookings, nil, nil, false)

		bookingsRaw, waitlistRaw, seatMapRaw, err := marshalCapacityState(c)
		require.NoError(t, err)
		assert.Nil(t, seatMapRaw)

		gotBookings, gotWaitlist, gotSeatMap, err := unmarshalCapacityState(bookingsRaw, waitlistRaw, seatMapRaw)
		require.NoError(t, err)

		assert.Equal(t, bookings, gotBookings)
		assert.Empty(t, gotWaitlist)
		assert.Nil(t, gotSeatMap)
	})
}
