package treatment

// BookedSlot names one slot already taken for a treatment on the date under
// consideration. The date itself is fixed by the caller's query.
type BookedSlot struct {
	Treatment string
	Slot      string
}

// Availability is the remaining bookable slots of one treatment.
type Availability struct {
	ID             string
	Name           string
	RemainingSlots []string
	PriceCents     int64
}

// AvailabilityCalculator computes, per treatment, the slots not yet booked.
type AvailabilityCalculator interface {
	Compute(treatments []*Treatment, booked []BookedSlot) []Availability
}

type DefaultAvailabilityCalculator struct{}

func NewDefaultAvailabilityCalculator() *DefaultAvailabilityCalculator {
	return &DefaultAvailabilityCalculator{}
}

// Compute filters each treatment's slot list down to the labels absent from
// that treatment's booked set. Slot order is preserved, no re-sorting. A
// treatment with no bookings keeps its full list; a treatment with no slots
// yields an empty list regardless of bookings.
func (c *DefaultAvailabilityCalculator) Compute(treatments []*Treatment, booked []BookedSlot) []Availability {
	bookedByTreatment := make(map[string]map[string]struct{})
	for _, b := range booked {
		set, ok := bookedByTreatment[b.Treatment]
		if !ok {
			set = make(map[string]struct{})
			bookedByTreatment[b.Treatment] = set
		}
		set[b.Slot] = struct{}{}
	}

	result := make([]Availability, 0, len(treatments))
	for _, t := range treatments {
		taken := bookedByTreatment[t.Name()]
		remaining := make([]string, 0, len(t.slots))
		for _, slot := range t.slots {
			if _, isTaken := taken[slot]; !isTaken {
				remaining = append(remaining, slot)
			}
		}
		result = append(result, Availability{
			ID:             t.ID().String(),
			Name:           t.Name(),
			RemainingSlots: remaining,
			PriceCents:     t.PriceCents(),
		})
	}
	return result
}
