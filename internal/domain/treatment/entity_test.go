//go:build unit

package treatment_test

import (
	"testing"

	"doctors-portal/internal/domain/treatment"
	"doctors-portal/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.TreatmentBuilder)
	errIs  error
}

func TestNewTreatment(t *testing.T) {
	t.Run("valid treatment", func(t *testing.T) {
		actual, err := builder.NewTreatmentBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, "Teeth Cleaning", actual.Name())
		assert.Len(t, actual.Slots(), 3)
		assert.Equal(t, int64(8000), actual.PriceCents())
	})

	t.Run("validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "trimmed name ok",
				mutate: func(b *builder.TreatmentBuilder) { b.WithName("  Fluoride  ") },
			},
			{
				name:   "empty name rejected",
				mutate: func(b *builder.TreatmentBuilder) { b.WithName("") },
				errIs:  treatment.ErrEmptyName,
			},
			{
				name:   "whitespace name rejected",
				mutate: func(b *builder.TreatmentBuilder) { b.WithName("   ") },
				errIs:  treatment.ErrEmptyName,
			},
			{
				name:   "negative price rejected",
				mutate: func(b *builder.TreatmentBuilder) { b.WithPriceCents(-1) },
				errIs:  treatment.ErrNegativePrice,
			},
			{
				name:   "zero price ok",
				mutate: func(b *builder.TreatmentBuilder) { b.WithPriceCents(0) },
			},
			{
				name:   "duplicate slot rejected",
				mutate: func(b *builder.TreatmentBuilder) { b.WithSlots("09:00 AM", "09:00 AM") },
				errIs:  treatment.ErrDuplicateSlot,
			},
			{
				name:   "empty slot rejected",
				mutate: func(b *builder.TreatmentBuilder) { b.WithSlots("09:00 AM", "") },
				errIs:  treatment.ErrEmptySlot,
			},
		})
	})

	t.Run("slots accessor returns a copy", func(t *testing.T) {
		actual, err := builder.NewTreatmentBuilder().BuildDomain()
		require.NoError(t, err)

		slots := actual.Slots()
		slots[0] = "mutated"
		assert.NotEqual(t, "mutated", actual.Slots()[0])
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewTreatmentBuilder()
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
}
