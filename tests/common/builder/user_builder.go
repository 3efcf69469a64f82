//go:build unit || e2e

package builder

import (
	"time"

	"doctors-portal/internal/usecase/readmodel"
)

type UserBuilder struct {
	Email string
	Name  string
	Role  string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Email: "test@example.com",
		Name:  "Test User",
		Role:  "patient",
	}
}

func (u *UserBuilder) BuildReadModel() *readmodel.UserRM {
	return &readmodel.UserRM{
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		UpdatedAt: time.Now(),
	}
}

// Fluent builder methods
func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	u.Role = "admin"
	return u
}
