// Package readmodel holds the flat projections repositories hand back to the
// usecase layer. They carry persisted state only; invariants live in the
// domain entities.
package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type TreatmentRM struct {
	ID         uuid.UUID
	Name       string
	Slots      []string
	PriceCents int64
}

type TreatmentNameRM struct {
	ID   uuid.UUID
	Name string
}

type BookingRM struct {
	ID            uuid.UUID
	Treatment     string
	Date          string
	Slot          string
	Patient       string
	Paid          bool
	TransactionID *string
	CreatedAt     time.Time
}

type UserRM struct {
	Email     string
	Name      string
	Role      string
	UpdatedAt time.Time
}

type DoctorRM struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Specialty string
	ImageURL  string
	CreatedAt time.Time
}
