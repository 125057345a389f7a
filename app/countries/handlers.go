package countries

import (
	"errors"
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/joefazee/countries/app/api"
	"github.com/joefazee/countries/internal/logger"
	"github.com/joefazee/countries/internal/sanitizer"
	"github.com/joefazee/countries/internal/validator"
	"github.com/joefazee/countries/models"
)

// Handler handles HTTP requests for countries
type Handler struct {
	service   Service
	sanitizer sanitizer.HTMLStripperer
	logger    logger.Logger
}

// NewHandler creates a new country handler
func NewHandler(service Service, s sanitizer.HTMLStripperer, log logger.Logger) *Handler {
	if log == nil {
		log = logger.NewNullLogger()
	}
	return &Handler{
		service:   service,
		sanitizer: s,
		logger:    log,
	}
}

// ListAllCountries godoc
// @Summary List all countries
// @Description Get every country ordered by name, ignoring case
// @Tags names
// @Produce json
// @Success 200 {array} CountryResponse
// @Failure 503 {object} api.Response{error=api.ErrorInfo}
// @Router /names/all [get]
func (h *Handler) ListAllCountries(c *gin.Context) {
	countries, err := h.service.ListAllSortedByName(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ToCountryResponseList(countries))
}

// ListCountriesByFirstLetter godoc
// @Summary List countries by first letter
// @Description Get the countries whose name starts with the given letter, ignoring case, in dataset order
// @Tags names
// @Produce json
// @Param letter path string true "Single letter"
// @Success 200 {array} CountryResponse
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 503 {object} api.Response{error=api.ErrorInfo}
// @Router /names/start/{letter} [get]
func (h *Handler) ListCountriesByFirstLetter(c *gin.Context) {
	letter := c.Param("letter")

	v := validator.New()
	if h.sanitizer != nil {
		v.Check(!sanitizer.HasMarkup(h.sanitizer, letter), "letter", "letter must not contain markup")
	}
	v.Check(validator.NotBlank(letter), "letter", "letter is required")
	v.Check(validator.PrintableRune(letter), "letter", "letter must be a single printable character")
	if !v.Valid() {
		api.ValidationErrorResponse(c, v.Errors)
		return
	}

	r, _ := utf8.DecodeRuneInString(letter)
	countries, err := h.service.FilterByFirstLetter(c.Request.Context(), r)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ToCountryResponseList(countries))
}

// GetTotalPopulation godoc
// @Summary Total population
// @Description Get the summed population of every country
// @Tags population
// @Produce plain
// @Success 200 {string} string "The total population is 7530000000"
// @Failure 503 {object} api.Response{error=api.ErrorInfo}
// @Router /population/total [get]
func (h *Handler) GetTotalPopulation(c *gin.Context) {
	total, err := h.service.TotalPopulation(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.String(http.StatusOK, TotalPopulationMessage(total))
}

// GetMinPopulation godoc
// @Summary Least populated country
// @Description Get the least populated country, or a two-element array when two countries tie
// @Tags population
// @Produce json
// @Success 200 {object} CountryResponse
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 503 {object} api.Response{error=api.ErrorInfo}
// @Router /population/min [get]
func (h *Handler) GetMinPopulation(c *gin.Context) {
	result, err := h.service.MinPopulation(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ToExtremumResponse(result))
}

// GetMaxPopulation godoc
// @Summary Most populated country
// @Description Get the most populated country, or a two-element array when two countries tie
// @Tags population
// @Produce json
// @Success 200 {object} CountryResponse
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 503 {object} api.Response{error=api.ErrorInfo}
// @Router /population/max [get]
func (h *Handler) GetMaxPopulation(c *gin.Context) {
	result, err := h.service.MaxPopulation(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ToExtremumResponse(result))
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidLetter):
		api.ValidationErrorResponse(c, err.Error())
	case errors.Is(err, models.ErrEmptyDataset):
		api.ErrorResponse(c, http.StatusNotFound, "EMPTY_DATASET", "No countries available", nil)
	case errors.Is(err, models.ErrRepositoryUnavailable):
		api.ServiceUnavailableResponse(c, "Country data is temporarily unavailable")
	default:
		h.logger.Error(err, map[string]interface{}{"path": c.FullPath()})
		api.InternalErrorResponse(c, "Failed to answer country query")
	}
}
