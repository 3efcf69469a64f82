package treatment

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyName     = errors.New("treatment name must not be empty")
	ErrNegativePrice = errors.New("treatment price must not be negative")
	ErrDuplicateSlot = errors.New("treatment slots must be unique")
	ErrEmptySlot     = errors.New("treatment slot label must not be empty")
)

// Treatment is a bookable service type: a name, a fixed ordered list of slot
// labels, and a price. Slot labels are opaque; their order is display order.
type Treatment struct {
	id         uuid.UUID
	name       string
	slots      []string
	priceCents int64
}

func NewTreatment(name string, slots []string, priceCents int64) (*Treatment, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}

	cleaned := make([]string, 0, len(slots))
	seen := make(map[string]struct{}, len(slots))
	for _, s := range slots {
		s = strings.TrimSpace(s)
		if s == "" {
			return nil, ErrEmptySlot
		}
		if _, dup := seen[s]; dup {
			return nil, ErrDuplicateSlot
		}
		seen[s] = struct{}{}
		cleaned = append(cleaned, s)
	}

	return &Treatment{
		id:         uuid.New(),
		name:       name,
		slots:      cleaned,
		priceCents: priceCents,
	}, nil
}

// Restore rebuilds a Treatment from persisted values without re-validation.
func Restore(id uuid.UUID, name string, slots []string, priceCents int64) *Treatment {
	return &Treatment{
		id:         id,
		name:       name,
		slots:      slots,
		priceCents: priceCents,
	}
}

func (t *Treatment) ID() uuid.UUID     { return t.id }
func (t *Treatment) Name() string      { return t.name }
func (t *Treatment) PriceCents() int64 { return t.priceCents }

// Slots returns a copy so callers cannot mutate the catalog entry.
func (t *Treatment) Slots() []string {
	out := make([]string, len(t.slots))
	copy(out, t.slots)
	return out
}
