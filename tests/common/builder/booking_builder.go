//go:build unit || e2e

package builder

import (
	"time"

	"doctors-portal/internal/domain/booking"
	"doctors-portal/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID            uuid.UUID
	Treatment     string
	Date          string
	Slot          string
	Patient       string
	Paid          bool
	TransactionID *string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:        uuid.New(),
		Treatment: "Teeth Cleaning",
		Date:      "May 10, 2022",
		Slot:      "10:00 AM - 11:00 AM",
		Patient:   "patient@example.com",
		Paid:      false,
	}
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	return booking.NewBooking(b.Treatment, b.Date, b.Slot, b.Patient)
}

func (b *BookingBuilder) BuildReadModel() *readmodel.BookingRM {
	return &readmodel.BookingRM{
		ID:            b.ID,
		Treatment:     b.Treatment,
		Date:          b.Date,
		Slot:          b.Slot,
		Patient:       b.Patient,
		Paid:          b.Paid,
		TransactionID: b.TransactionID,
		CreatedAt:     time.Now(),
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithTreatment(treatment string) *BookingBuilder {
	b.Treatment = treatment
	return b
}

func (b *BookingBuilder) WithDate(date string) *BookingBuilder {
	b.Date = date
	return b
}

func (b *BookingBuilder) WithSlot(slot string) *BookingBuilder {
	b.Slot = slot
	return b
}

func (b *BookingBuilder) WithPatient(patient string) *BookingBuilder {
	b.Patient = patient
	return b
}

func (b *BookingBuilder) AsPaid(transactionID string) *BookingBuilder {
	b.Paid = true
	b.TransactionID = &transactionID
	return b
}
