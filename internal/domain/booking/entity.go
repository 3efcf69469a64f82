package booking

import (
	"errors"
	"strings"

	"doctors-portal/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrEmptyTreatment = errors.New("booking treatment must not be empty")
	ErrEmptyDate      = errors.New("booking date must not be empty")
	ErrEmptySlot      = errors.New("booking slot must not be empty")
	ErrInvalidPatient = errors.New("booking patient must be a valid email")
)

// Booking is a reservation of one slot of one treatment for one patient on
// one date. The date is an opaque string compared byte-for-byte; the portal
// performs no calendar validation on it.
type Booking struct {
	id            uuid.UUID
	treatment     string
	date          string
	slot          string
	patient       user.Email
	paid          bool
	transactionID *string
}

func NewBooking(treatmentName, date, slot, patient string) (*Booking, error) {
	treatmentName = strings.TrimSpace(treatmentName)
	if treatmentName == "" {
		return nil, ErrEmptyTreatment
	}

	date = strings.TrimSpace(date)
	if date == "" {
		return nil, ErrEmptyDate
	}

	slot = strings.TrimSpace(slot)
	if slot == "" {
		return nil, ErrEmptySlot
	}

	email, err := user.NewEmail(patient)
	if err != nil {
		return nil, ErrInvalidPatient
	}

	return &Booking{
		id:        uuid.New(),
		treatment: treatmentName,
		date:      date,
		slot:      slot,
		patient:   email,
	}, nil
}

func (b *Booking) ID() uuid.UUID          { return b.id }
func (b *Booking) Treatment() string      { return b.treatment }
func (b *Booking) Date() string           { return b.date }
func (b *Booking) Slot() string           { return b.slot }
func (b *Booking) Patient() user.Email    { return b.patient }
func (b *Booking) Paid() bool             { return b.paid }
func (b *Booking) TransactionID() *string { return b.transactionID }
