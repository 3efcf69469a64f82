//go:build unit || e2e

package builder

import (
	"doctors-portal/internal/domain/treatment"
	"doctors-portal/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type TreatmentBuilder struct {
	ID         uuid.UUID
	Name       string
	Slots      []string
	PriceCents int64
}

func NewTreatmentBuilder() *TreatmentBuilder {
	return &TreatmentBuilder{
		ID:   uuid.New(),
		Name: "Teeth Cleaning",
		Slots: []string{
			"08:00 AM - 09:00 AM",
			"09:00 AM - 10:00 AM",
			"10:00 AM - 11:00 AM",
		},
		PriceCents: 8000,
	}
}

func (b *TreatmentBuilder) BuildDomain() (*treatment.Treatment, error) {
	return treatment.NewTreatment(b.Name, b.Slots, b.PriceCents)
}

func (b *TreatmentBuilder) BuildRestored() *treatment.Treatment {
	return treatment.Restore(b.ID, b.Name, b.Slots, b.PriceCents)
}

func (b *TreatmentBuilder) BuildReadModel() *readmodel.TreatmentRM {
	return &readmodel.TreatmentRM{
		ID:         b.ID,
		Name:       b.Name,
		Slots:      b.Slots,
		PriceCents: b.PriceCents,
	}
}

// Fluent builder methods
func (b *TreatmentBuilder) WithName(name string) *TreatmentBuilder {
	b.Name = name
	return b
}

func (b *TreatmentBuilder) WithSlots(slots ...string) *TreatmentBuilder {
	b.Slots = slots
	return b
}

func (b *TreatmentBuilder) WithPriceCents(priceCents int64) *TreatmentBuilder {
	b.PriceCents = priceCents
	return b
}
