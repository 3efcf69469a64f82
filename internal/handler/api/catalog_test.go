//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"doctors-portal/internal/domain/treatment"
	"doctors-portal/internal/handler/api"
	resdto "doctors-portal/internal/handler/dto/response"
	"doctors-portal/internal/usecase"
	"doctors-portal/internal/usecase/readmodel"
	"doctors-portal/tests/common/builder"
	"doctors-portal/tests/common/httptest"
	usecasemock "doctors-portal/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockCatalogUseCase
	handler     *api.CatalogHandler
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockCatalogUseCase(s.mockCtrl)
	s.handler = api.NewCatalogHandler(s.mockUseCase)

	s.router.GET("/treatments", s.handler.ListTreatmentNames)
	s.router.GET("/treatments/available", s.handler.GetAvailability)
	s.router.POST("/treatments", s.handler.CreateTreatment)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) TestListTreatmentNames() {
	rm := builder.NewTreatmentBuilder().BuildReadModel()
	names := []*readmodel.TreatmentNameRM{{ID: rm.ID, Name: rm.Name}}
	s.mockUseCase.EXPECT().
		ListTreatmentNames(gomock.Any()).
		Return(names, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/treatments", nil, "")

	var resp []*resdto.TreatmentNameResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.Require().Len(resp, 1)
	s.Equal(rm.Name, resp[0].Name)
}

func (s *CatalogHandlerTestSuite) TestGetAvailability() {
	full := []treatment.Availability{
		{
			ID:             "t-1",
			Name:           "Teeth Cleaning",
			RemainingSlots: []string{"08:00 AM - 09:00 AM", "09:00 AM - 10:00 AM"},
			PriceCents:     8000,
		},
	}

	s.Run("passes the date query through verbatim", func() {
		s.mockUseCase.EXPECT().
			GetAvailability(gomock.Any(), "May 10, 2022").
			Return(full, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/treatments/available?date=May+10,+2022", nil, "")

		var resp []*resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Require().Len(resp, 1)
		s.Equal(full[0].RemainingSlots, resp[0].RemainingSlots)
	})

	s.Run("absent date is an opaque key matching no bookings", func() {
		s.mockUseCase.EXPECT().
			GetAvailability(gomock.Any(), "").
			Return(full, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/treatments/available", nil, "")

		var resp []*resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Require().Len(resp, 1)
		s.Equal(full[0].RemainingSlots, resp[0].RemainingSlots)
	})

	s.Run("lookup failure returns 500", func() {
		s.mockUseCase.EXPECT().
			GetAvailability(gomock.Any(), "May 10, 2022").
			Return(nil, usecase.ErrDatabaseOperationFailed)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/treatments/available?date=May+10,+2022", nil, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *CatalogHandlerTestSuite) TestCreateTreatment() {
	reqBody := map[string]any{
		"name":       "Teeth Whitening",
		"slots":      []string{"01:00 PM - 02:00 PM"},
		"priceCents": 12000,
	}

	s.Run("created treatment returns 201", func() {
		rm := builder.NewTreatmentBuilder().WithName("Teeth Whitening").BuildReadModel()
		s.mockUseCase.EXPECT().
			CreateTreatment(gomock.Any(), gomock.Any()).
			Return(rm, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/treatments", reqBody, "")

		var resp resdto.TreatmentResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal("Teeth Whitening", resp.Name)
	})

	s.Run("duplicate name returns 409", func() {
		s.mockUseCase.EXPECT().
			CreateTreatment(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrDuplicateTreatment)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/treatments", reqBody, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "Treatment already exists")
	})
}
