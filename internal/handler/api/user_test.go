//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"doctors-portal/internal/handler/api"
	resdto "doctors-portal/internal/handler/dto/response"
	"doctors-portal/internal/handler/middleware"
	"doctors-portal/internal/pkg/jwt"
	"doctors-portal/internal/usecase"
	"doctors-portal/internal/usecase/readmodel"
	"doctors-portal/tests/common/builder"
	"doctors-portal/tests/common/httptest"
	usecasemock "doctors-portal/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UserHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockUseCase   *usecasemock.MockUserUseCase
	mockValidator *usecasemock.MockTokenValidator
	handler       *api.UserHandler
}

func (s *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockUserUseCase(s.mockCtrl)
	s.mockValidator = usecasemock.NewMockTokenValidator(s.mockCtrl)
	s.handler = api.NewUserHandler(s.mockUseCase)

	authMw := middleware.NewAuthMiddleware(s.mockValidator, s.mockUseCase)

	s.router.PUT("/users/:email", s.handler.SyncUser)
	s.router.GET("/users/:email/admin", s.handler.CheckAdmin)
	s.router.GET("/users", authMw.RequireAuth(), s.handler.ListUsers)
	s.router.PUT("/users/:email/admin",
		authMw.RequireAuth(), authMw.RequireAdmin(), s.handler.GrantAdmin)
}

func (s *UserHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUserHandlerSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}

func (s *UserHandlerTestSuite) TestSyncUser() {
	s.Run("upserts and returns a token", func() {
		rm := builder.NewUserBuilder().WithEmail("new@example.com").WithName("New User").BuildReadModel()
		s.mockUseCase.EXPECT().
			SyncUser(gomock.Any(), "new@example.com", "New User").
			Return(rm, "issued-token", nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut,
			"/users/new@example.com", map[string]any{"name": "New User"}, "")

		var resp resdto.UpsertUserResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("issued-token", resp.Token)
		s.Require().NotNil(resp.Result)
		s.Equal("new@example.com", resp.Result.Email)
	})

	s.Run("malformed email is 400", func() {
		s.mockUseCase.EXPECT().
			SyncUser(gomock.Any(), "bad-email", "X").
			Return(nil, "", usecase.ErrDomainValidationFailed)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut,
			"/users/bad-email", map[string]any{"name": "X"}, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid email address")
	})
}

func (s *UserHandlerTestSuite) TestCheckAdmin() {
	s.Run("admin user", func() {
		s.mockUseCase.EXPECT().IsAdmin(gomock.Any(), "boss@example.com").Return(true, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/users/boss@example.com/admin", nil, "")

		var resp resdto.AdminStatusResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.True(resp.Admin)
	})

	s.Run("unknown user reads as non-admin", func() {
		s.mockUseCase.EXPECT().IsAdmin(gomock.Any(), "ghost@example.com").Return(false, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/users/ghost@example.com/admin", nil, "")

		var resp resdto.AdminStatusResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.False(resp.Admin)
	})
}

func (s *UserHandlerTestSuite) TestListUsers_AuthLadder() {
	s.Run("missing credential is 401", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users", nil, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Unauthorized access")
	})

	s.Run("rejected credential is 403", func() {
		s.mockValidator.EXPECT().ValidateToken("bad-token").Return("", jwt.ErrInvalidToken)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users", nil, "bad-token")

		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Forbidden access")
	})

	s.Run("valid credential lists users", func() {
		s.mockValidator.EXPECT().ValidateToken("good-token").Return("caller@example.com", nil)
		rms := builder.NewUserBuilder().BuildReadModel()
		s.mockUseCase.EXPECT().ListUsers(gomock.Any()).
			Return([]*readmodel.UserRM{rms}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users", nil, "good-token")

		var resp []*resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Len(resp, 1)
	})
}

func (s *UserHandlerTestSuite) TestGrantAdmin() {
	s.Run("admin caller promotes a user", func() {
		s.mockValidator.EXPECT().ValidateToken("admin-token").Return("boss@example.com", nil)
		s.mockUseCase.EXPECT().IsAdmin(gomock.Any(), "boss@example.com").Return(true, nil)

		promoted := builder.NewUserBuilder().WithEmail("peer@example.com").AsAdmin().BuildReadModel()
		s.mockUseCase.EXPECT().GrantAdmin(gomock.Any(), "peer@example.com").Return(promoted, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut,
			"/users/peer@example.com/admin", nil, "admin-token")

		var resp resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("admin", resp.Role)
	})

	s.Run("non-admin caller is 403", func() {
		s.mockValidator.EXPECT().ValidateToken("patient-token").Return("patient@example.com", nil)
		s.mockUseCase.EXPECT().IsAdmin(gomock.Any(), "patient@example.com").Return(false, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut,
			"/users/peer@example.com/admin", nil, "patient-token")

		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Forbidden")
	})

	s.Run("admin lookup failure is 500, not a grant", func() {
		s.mockValidator.EXPECT().ValidateToken("admin-token").Return("boss@example.com", nil)
		s.mockUseCase.EXPECT().
			IsAdmin(gomock.Any(), "boss@example.com").
			Return(false, errors.New("connection refused"))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut,
			"/users/peer@example.com/admin", nil, "admin-token")

		httptest.AssertErrorResponse(s.T(), w, http.StatusInternalServerError, "Internal server error")
	})

	s.Run("promoting an unknown user is 404", func() {
		s.mockValidator.EXPECT().ValidateToken("admin-token").Return("boss@example.com", nil)
		s.mockUseCase.EXPECT().IsAdmin(gomock.Any(), "boss@example.com").Return(true, nil)
		s.mockUseCase.EXPECT().
			GrantAdmin(gomock.Any(), "ghost@example.com").
			Return(nil, usecase.ErrUserNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut,
			"/users/ghost@example.com/admin", nil, "admin-token")

		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "User not found")
	})
}
