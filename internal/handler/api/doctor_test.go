//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

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

type DoctorHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockDoctorUseCase
	handler     *api.DoctorHandler
}

func (s *DoctorHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockDoctorUseCase(s.mockCtrl)
	s.handler = api.NewDoctorHandler(s.mockUseCase)

	s.router.GET("/doctors", s.handler.ListDoctors)
	s.router.POST("/doctors", s.handler.AddDoctor)
	s.router.DELETE("/doctors/:email", s.handler.RemoveDoctor)
}

func (s *DoctorHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDoctorHandlerSuite(t *testing.T) {
	suite.Run(t, new(DoctorHandlerTestSuite))
}

// the doctor endpoints report errors through the httperr envelope
func (s *DoctorHandlerTestSuite) assertEnvelopeError(body []byte, expectedMsg string) {
	var resp struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	s.Require().NoError(json.Unmarshal(body, &resp))
	s.Contains(resp.Error.Message, expectedMsg)
}

func (s *DoctorHandlerTestSuite) TestListDoctors() {
	rms := []*readmodel.DoctorRM{builder.NewDoctorBuilder().BuildReadModel()}
	s.mockUseCase.EXPECT().ListDoctors(gomock.Any()).Return(rms, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/doctors", nil, "")

	var resp []*resdto.DoctorResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.Len(resp, 1)
	s.Equal("doctor@example.com", resp[0].Email)
}

func (s *DoctorHandlerTestSuite) TestAddDoctor() {
	reqBody := map[string]any{
		"name":      "Dr. Caudi",
		"email":     "doctor@example.com",
		"specialty": "Dentist",
		"imageUrl":  "https://example.com/doctor.png",
	}

	s.Run("registers a doctor", func() {
		rm := builder.NewDoctorBuilder().BuildReadModel()
		s.mockUseCase.EXPECT().AddDoctor(gomock.Any(), gomock.Any()).Return(rm, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/doctors", reqBody, "")

		var resp resdto.DoctorResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal("Dentist", resp.Specialty)
	})

	s.Run("duplicate email is 409", func() {
		s.mockUseCase.EXPECT().
			AddDoctor(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrDuplicateDoctor)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/doctors", reqBody, "")

		s.Equal(http.StatusConflict, w.Code)
		s.assertEnvelopeError(w.Body.Bytes(), "Doctor already registered")
	})

	s.Run("missing fields are 400", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/doctors",
			map[string]any{"name": "Dr. Caudi"}, "")

		s.Equal(http.StatusBadRequest, w.Code)
		s.assertEnvelopeError(w.Body.Bytes(), "Invalid request format")
	})
}

func (s *DoctorHandlerTestSuite) TestRemoveDoctor() {
	s.Run("removes an existing doctor", func() {
		s.mockUseCase.EXPECT().RemoveDoctor(gomock.Any(), "doctor@example.com").Return(nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/doctors/doctor@example.com", nil, "")

		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("unknown doctor is 404", func() {
		s.mockUseCase.EXPECT().
			RemoveDoctor(gomock.Any(), "ghost@example.com").
			Return(usecase.ErrDoctorNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/doctors/ghost@example.com", nil, "")

		s.Equal(http.StatusNotFound, w.Code)
		s.assertEnvelopeError(w.Body.Bytes(), "Doctor not found")
	})
}
