//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"doctors-portal/internal/infra"
	"doctors-portal/internal/pkg/clock"
	"doctors-portal/internal/pkg/jwt"
	"doctors-portal/internal/usecase"
	"doctors-portal/tests/common/builder"
	usecasemock "doctors-portal/tests/mock/usecase"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UserUseCaseTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mockRepo *usecasemock.MockUserRepository
	jwtSvc   *jwt.Service
	useCase  usecase.UserUseCase
}

func (s *UserUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = usecasemock.NewMockUserRepository(s.mockCtrl)
	s.jwtSvc = jwt.NewService("test-access-token-secret", time.Hour, clock.NewRealClock())
	s.useCase = usecase.NewUserUseCase(s.mockRepo, s.jwtSvc)
}

func (s *UserUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUserUseCaseSuite(t *testing.T) {
	suite.Run(t, new(UserUseCaseTestSuite))
}

func (s *UserUseCaseTestSuite) TestSyncUser() {
	s.Run("upserts the record and issues a valid token", func() {
		expected := builder.NewUserBuilder().WithEmail("new@example.com").BuildReadModel()
		s.mockRepo.EXPECT().
			Upsert(gomock.Any(), "new@example.com", "New User").
			Return(expected, nil)

		rm, token, err := s.useCase.SyncUser(context.Background(), "new@example.com", "New User")
		s.Require().NoError(err)
		s.Equal(expected, rm)

		claims, err := s.jwtSvc.ValidateToken(token)
		s.Require().NoError(err)
		s.Equal("new@example.com", claims.Email)
	})

	s.Run("rejects a malformed email before touching the repo", func() {
		rm, token, err := s.useCase.SyncUser(context.Background(), "not-an-email", "X")
		s.Require().ErrorIs(err, usecase.ErrDomainValidationFailed)
		s.Nil(rm)
		s.Empty(token)
	})

	s.Run("repository failure is surfaced", func() {
		s.mockRepo.EXPECT().
			Upsert(gomock.Any(), "new@example.com", "New User").
			Return(nil, errors.New("connection refused"))

		rm, token, err := s.useCase.SyncUser(context.Background(), "new@example.com", "New User")
		s.Require().ErrorIs(err, usecase.ErrDatabaseOperationFailed)
		s.Nil(rm)
		s.Empty(token)
	})
}

func (s *UserUseCaseTestSuite) TestIsAdmin() {
	s.Run("admin role reads true", func() {
		admin := builder.NewUserBuilder().AsAdmin().BuildReadModel()
		s.mockRepo.EXPECT().FindByEmail(gomock.Any(), admin.Email).Return(admin, nil)

		ok, err := s.useCase.IsAdmin(context.Background(), admin.Email)
		s.Require().NoError(err)
		s.True(ok)
	})

	s.Run("patient role reads false", func() {
		patient := builder.NewUserBuilder().BuildReadModel()
		s.mockRepo.EXPECT().FindByEmail(gomock.Any(), patient.Email).Return(patient, nil)

		ok, err := s.useCase.IsAdmin(context.Background(), patient.Email)
		s.Require().NoError(err)
		s.False(ok)
	})

	s.Run("empty role column reads false", func() {
		rm := builder.NewUserBuilder().BuildReadModel()
		rm.Role = ""
		s.mockRepo.EXPECT().FindByEmail(gomock.Any(), rm.Email).Return(rm, nil)

		ok, err := s.useCase.IsAdmin(context.Background(), rm.Email)
		s.Require().NoError(err)
		s.False(ok)
	})

	s.Run("unknown user reads false without error", func() {
		s.mockRepo.EXPECT().
			FindByEmail(gomock.Any(), "ghost@example.com").
			Return(nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound))

		ok, err := s.useCase.IsAdmin(context.Background(), "ghost@example.com")
		s.Require().NoError(err)
		s.False(ok)
	})

	s.Run("lookup failure is an error, not a denial", func() {
		s.mockRepo.EXPECT().
			FindByEmail(gomock.Any(), "x@example.com").
			Return(nil, errors.New("connection refused"))

		ok, err := s.useCase.IsAdmin(context.Background(), "x@example.com")
		s.Require().Error(err)
		s.False(ok)
	})
}

func (s *UserUseCaseTestSuite) TestGrantAdmin() {
	s.Run("promotes an existing user", func() {
		promoted := builder.NewUserBuilder().AsAdmin().BuildReadModel()
		s.mockRepo.EXPECT().GrantAdmin(gomock.Any(), promoted.Email).Return(promoted, nil)

		rm, err := s.useCase.GrantAdmin(context.Background(), promoted.Email)
		s.Require().NoError(err)
		s.Equal("admin", rm.Role)
	})

	s.Run("unknown user", func() {
		s.mockRepo.EXPECT().
			GrantAdmin(gomock.Any(), "ghost@example.com").
			Return(nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound))

		rm, err := s.useCase.GrantAdmin(context.Background(), "ghost@example.com")
		s.Require().ErrorIs(err, usecase.ErrUserNotFound)
		s.Nil(rm)
	})
}
