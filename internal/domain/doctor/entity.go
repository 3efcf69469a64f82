package doctor

import (
	"errors"
	"strings"

	"doctors-portal/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrEmptyName    = errors.New("doctor name must not be empty")
	ErrInvalidEmail = errors.New("doctor email must be a valid email")
)

type Doctor struct {
	id        uuid.UUID
	name      string
	email     user.Email
	specialty string
	imageURL  string
}

func NewDoctor(name, email, specialty, imageURL string) (*Doctor, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	addr, err := user.NewEmail(email)
	if err != nil {
		return nil, ErrInvalidEmail
	}

	return &Doctor{
		id:        uuid.New(),
		name:      name,
		email:     addr,
		specialty: strings.TrimSpace(specialty),
		imageURL:  strings.TrimSpace(imageURL),
	}, nil
}

func (d *Doctor) ID() uuid.UUID     { return d.id }
func (d *Doctor) Name() string      { return d.name }
func (d *Doctor) Email() user.Email { return d.email }
func (d *Doctor) Specialty() string { return d.specialty }
func (d *Doctor) ImageURL() string  { return d.imageURL }
