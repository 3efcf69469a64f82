package api

import (
	"errors"
	"net/http"

	reqdto "doctors-portal/internal/handler/dto/request"
	resdto "doctors-portal/internal/handler/dto/response"
	"doctors-portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogUseCase usecase.CatalogUseCase
}

func NewCatalogHandler(catalogUseCase usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{
		catalogUseCase: catalogUseCase,
	}
}

// @Summary List treatment names
// @Description List the names of all offered treatments
// @Tags treatments
// @Produce json
// @Success 200 {array} resdto.TreatmentNameResponse
// @Router /treatments [get]
func (h *CatalogHandler) ListTreatmentNames(c *gin.Context) {
	namesRM, err := h.catalogUseCase.ListTreatmentNames(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromTreatmentNameRMs(namesRM))
}

// @Summary Get availability
// @Description Get per-treatment remaining slots for a date
// @Tags treatments
// @Produce json
// @Param date query string false "Date label"
// @Success 200 {array} resdto.AvailabilityResponse
// @Router /treatments/available [get]
func (h *CatalogHandler) GetAvailability(c *gin.Context) {
	// The date is an opaque key, never validated. An absent one matches no
	// bookings and yields the full slot list.
	availabilities, err := h.catalogUseCase.GetAvailability(c.Request.Context(), c.Query("date"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilities(availabilities))
}

// @Summary Create treatment
// @Description Add a treatment to the catalog
// @Tags treatments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateTreatmentRequest true "Treatment"
// @Success 201 {object} resdto.TreatmentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /treatments [post]
func (h *CatalogHandler) CreateTreatment(c *gin.Context) {
	var req reqdto.CreateTreatmentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params := usecase.CreateTreatmentParams{
		Name:       req.Name,
		Slots:      req.Slots,
		PriceCents: req.PriceCents,
	}

	treatmentRM, err := h.catalogUseCase.CreateTreatment(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDuplicateTreatment):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Treatment already exists",
			})
		case errors.Is(err, usecase.ErrDomainValidationFailed):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromTreatmentRM(treatmentRM))
}
