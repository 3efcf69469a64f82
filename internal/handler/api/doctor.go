package api

import (
	"errors"
	"net/http"

	reqdto "doctors-portal/internal/handler/dto/request"
	resdto "doctors-portal/internal/handler/dto/response"
	"doctors-portal/internal/handler/httperr"
	"doctors-portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

type DoctorHandler struct {
	doctorUseCase usecase.DoctorUseCase
}

func NewDoctorHandler(doctorUseCase usecase.DoctorUseCase) *DoctorHandler {
	return &DoctorHandler{
		doctorUseCase: doctorUseCase,
	}
}

// @Summary List doctors
// @Description List all registered doctors
// @Tags doctors
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.DoctorResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /doctors [get]
func (h *DoctorHandler) ListDoctors(c *gin.Context) {
	doctorsRM, err := h.doctorUseCase.ListDoctors(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load doctors", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDoctorRMs(doctorsRM))
}

// @Summary Add doctor
// @Description Register a new doctor
// @Tags doctors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateDoctorRequest true "Doctor"
// @Success 201 {object} resdto.DoctorResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /doctors [post]
func (h *DoctorHandler) AddDoctor(c *gin.Context) {
	var req reqdto.CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	params := usecase.AddDoctorParams{
		Name:      req.Name,
		Email:     req.Email,
		Specialty: req.Specialty,
		ImageURL:  req.ImageURL,
	}

	doctorRM, err := h.doctorUseCase.AddDoctor(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDuplicateDoctor):
			httperr.AbortWithError(c, http.StatusConflict, err, "Doctor already registered", nil)
		case errors.Is(err, usecase.ErrDomainValidationFailed):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to add doctor", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromDoctorRM(doctorRM))
}

// @Summary Remove doctor
// @Description Delete a doctor by email
// @Tags doctors
// @Produce json
// @Security BearerAuth
// @Param email path string true "Doctor email"
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /doctors/{email} [delete]
func (h *DoctorHandler) RemoveDoctor(c *gin.Context) {
	email := c.Param("email")

	if err := h.doctorUseCase.RemoveDoctor(c.Request.Context(), email); err != nil {
		switch {
		case errors.Is(err, usecase.ErrDoctorNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Doctor not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to remove doctor", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
