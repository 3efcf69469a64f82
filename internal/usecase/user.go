package usecase

import (
	"context"
	"errors"

	"doctors-portal/internal/domain/user"
	"doctors-portal/internal/infra"
	"doctors-portal/internal/pkg/errs"
	"doctors-portal/internal/pkg/jwt"
	"doctors-portal/internal/usecase/readmodel"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrTokenGeneration = errors.New("token generation failed")
)

type UserRepository interface {
	FindAll(ctx context.Context) ([]*readmodel.UserRM, error)
	FindByEmail(ctx context.Context, email string) (*readmodel.UserRM, error)
	Upsert(ctx context.Context, email, name string) (*readmodel.UserRM, error)
	GrantAdmin(ctx context.Context, email string) (*readmodel.UserRM, error)
}

type UserUseCase interface {
	ListUsers(ctx context.Context) ([]*readmodel.UserRM, error)
	// SyncUser upserts the user record for an email and issues a fresh access
	// token, mirroring the sign-in flow of the frontend.
	SyncUser(ctx context.Context, email, name string) (*readmodel.UserRM, string, error)
	// IsAdmin reports whether the email holds the admin role. An absent user
	// record is not an error: it reads as non-admin (fail closed).
	IsAdmin(ctx context.Context, email string) (bool, error)
	GrantAdmin(ctx context.Context, email string) (*readmodel.UserRM, error)
}

type userUseCaseImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
}

func NewUserUseCase(userRepo UserRepository, jwtService *jwt.Service) UserUseCase {
	return &userUseCaseImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (u *userUseCaseImpl) ListUsers(ctx context.Context) ([]*readmodel.UserRM, error) {
	users, err := u.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return users, nil
}

func (u *userUseCaseImpl) SyncUser(ctx context.Context, email, name string) (*readmodel.UserRM, string, error) {
	addr, err := user.NewEmail(email)
	if err != nil {
		return nil, "", errs.Mark(err, ErrDomainValidationFailed)
	}

	rm, err := u.userRepo.Upsert(ctx, addr.Value(), name)
	if err != nil {
		return nil, "", errs.Mark(err, ErrDatabaseOperationFailed)
	}

	token, err := u.jwtService.GenerateToken(addr.Value())
	if err != nil {
		return nil, "", errs.Mark(err, ErrTokenGeneration)
	}

	return rm, token, nil
}

func (u *userUseCaseImpl) IsAdmin(ctx context.Context, email string) (bool, error) {
	rm, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, nil
		}
		return false, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return user.RoleOrDefault(rm.Role).IsAdmin(), nil
}

func (u *userUseCaseImpl) GrantAdmin(ctx context.Context, email string) (*readmodel.UserRM, error) {
	rm, err := u.userRepo.GrantAdmin(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return rm, nil
}
