//go:build unit || e2e

package builder

import (
	"time"

	"doctors-portal/internal/domain/doctor"
	"doctors-portal/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type DoctorBuilder struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Specialty string
	ImageURL  string
}

func NewDoctorBuilder() *DoctorBuilder {
	return &DoctorBuilder{
		ID:        uuid.New(),
		Name:      "Dr. Caudi",
		Email:     "doctor@example.com",
		Specialty: "Dentist",
		ImageURL:  "https://example.com/doctor.png",
	}
}

func (d *DoctorBuilder) BuildDomain() (*doctor.Doctor, error) {
	return doctor.NewDoctor(d.Name, d.Email, d.Specialty, d.ImageURL)
}

func (d *DoctorBuilder) BuildReadModel() *readmodel.DoctorRM {
	return &readmodel.DoctorRM{
		ID:        d.ID,
		Name:      d.Name,
		Email:     d.Email,
		Specialty: d.Specialty,
		ImageURL:  d.ImageURL,
		CreatedAt: time.Now(),
	}
}

// Fluent builder methods
func (d *DoctorBuilder) WithEmail(email string) *DoctorBuilder {
	d.Email = email
	return d
}

func (d *DoctorBuilder) WithSpecialty(specialty string) *DoctorBuilder {
	d.Specialty = specialty
	return d
}
