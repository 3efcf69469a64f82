//go:build unit

package booking_test

import (
	"testing"

	"doctors-portal/internal/domain/booking"
	"doctors-portal/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestNewBooking(t *testing.T) {
	t.Run("valid booking", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Teeth Cleaning", actual.Treatment())
		assert.Equal(t, "May 10, 2022", actual.Date())
		assert.Equal(t, "10:00 AM - 11:00 AM", actual.Slot())
		assert.Equal(t, "patient@example.com", actual.Patient().Value())
		assert.False(t, actual.Paid())
		assert.Nil(t, actual.TransactionID())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []testCase{
			{
				name:   "empty treatment rejected",
				mutate: func(b *builder.BookingBuilder) { b.WithTreatment("") },
				errIs:  booking.ErrEmptyTreatment,
			},
			{
				name:   "empty date rejected",
				mutate: func(b *builder.BookingBuilder) { b.WithDate("  ") },
				errIs:  booking.ErrEmptyDate,
			},
			{
				name:   "empty slot rejected",
				mutate: func(b *builder.BookingBuilder) { b.WithSlot("") },
				errIs:  booking.ErrEmptySlot,
			},
			{
				name:   "malformed patient email rejected",
				mutate: func(b *builder.BookingBuilder) { b.WithPatient("not-an-email") },
				errIs:  booking.ErrInvalidPatient,
			},
			{
				name:   "trimmed fields accepted",
				mutate: func(b *builder.BookingBuilder) { b.WithTreatment(" Fluoride ").WithDate(" May 11, 2022 ") },
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				b := builder.NewBookingBuilder()
				tc.mutate(b)

				actual, err := b.BuildDomain()
				if tc.errIs != nil {
					require.ErrorIs(t, err, tc.errIs)
					assert.Nil(t, actual)
					return
				}
				require.NoError(t, err)
				assert.NotNil(t, actual)
			})
		}
	})

	t.Run("date is stored verbatim", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().WithDate("2022-05-10").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "2022-05-10", actual.Date())

		other, err := builder.NewBookingBuilder().WithDate("May 10, 2022").BuildDomain()
		require.NoError(t, err)
		assert.NotEqual(t, actual.Date(), other.Date())
	})
}
