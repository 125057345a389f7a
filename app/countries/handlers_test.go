package countries

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/joefazee/countries/app/api"
	"github.com/joefazee/countries/internal/logger"
	"github.com/joefazee/countries/internal/sanitizer"
	"github.com/joefazee/countries/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) ListAllSortedByName(ctx context.Context) ([]models.Country, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Country), args.Error(1)
}

func (m *MockService) FilterByFirstLetter(ctx context.Context, letter rune) ([]models.Country, error) {
	args := m.Called(ctx, letter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Country), args.Error(1)
}

func (m *MockService) TotalPopulation(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockService) MinPopulation(ctx context.Context) (Extremum, error) {
	args := m.Called(ctx)
	return args.Get(0).(Extremum), args.Error(1)
}

func (m *MockService) MaxPopulation(ctx context.Context) (Extremum, error) {
	args := m.Called(ctx)
	return args.Get(0).(Extremum), args.Error(1)
}

type CountryHandlerTestSuite struct {
	suite.Suite
	service *MockService
	router  *gin.Engine
}

func (suite *CountryHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

func (suite *CountryHandlerTestSuite) SetupTest() {
	suite.service = &MockService{}
	handler := NewHandler(suite.service, sanitizer.NewHTMLStripper(), logger.NewNullLogger())

	suite.router = gin.New()
	suite.router.GET("/names/all", handler.ListAllCountries)
	suite.router.GET("/names/start/:letter", handler.ListCountriesByFirstLetter)
	suite.router.GET("/population/total", handler.GetTotalPopulation)
	suite.router.GET("/population/min", handler.GetMinPopulation)
	suite.router.GET("/population/max", handler.GetMaxPopulation)
}

func (suite *CountryHandlerTestSuite) TearDownTest() {
	suite.service.AssertExpectations(suite.T())
}

func TestCountryHandler(t *testing.T) {
	suite.Run(t, new(CountryHandlerTestSuite))
}

func (suite *CountryHandlerTestSuite) get(path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *CountryHandlerTestSuite) errorCode(w *httptest.ResponseRecorder) string {
	var response api.Response
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.False(response.Success)
	suite.Require().NotNil(response.Error)
	return response.Error.Code
}

func (suite *CountryHandlerTestSuite) TestListAllCountries_Success() {
	suite.service.On("ListAllSortedByName", mock.Anything).Return(SortByName(sampleCountries()), nil)

	w := suite.get("/names/all")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[
		{"countryid":3,"name":"Chad","population":50},
		{"countryid":1,"name":"Uruguay","population":100},
		{"countryid":2,"name":"USA","population":300}
	]`, w.Body.String())
}

func (suite *CountryHandlerTestSuite) TestListAllCountries_Empty() {
	suite.service.On("ListAllSortedByName", mock.Anything).Return([]models.Country{}, nil)

	w := suite.get("/names/all")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[]`, w.Body.String())
}

func (suite *CountryHandlerTestSuite) TestListAllCountries_RepositoryUnavailable() {
	suite.service.On("ListAllSortedByName", mock.Anything).Return(nil, models.ErrRepositoryUnavailable)

	w := suite.get("/names/all")

	suite.Equal(http.StatusServiceUnavailable, w.Code)
	suite.Equal("REPOSITORY_UNAVAILABLE", suite.errorCode(w))
}

func (suite *CountryHandlerTestSuite) TestListCountriesByFirstLetter_Success() {
	suite.service.On("FilterByFirstLetter", mock.Anything, 'u').
		Return([]models.Country{{ID: 1, Name: "Uruguay", Population: 100}, {ID: 2, Name: "USA", Population: 300}}, nil)

	w := suite.get("/names/start/u")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[
		{"countryid":1,"name":"Uruguay","population":100},
		{"countryid":2,"name":"USA","population":300}
	]`, w.Body.String())
}

func (suite *CountryHandlerTestSuite) TestListCountriesByFirstLetter_NonASCII() {
	suite.service.On("FilterByFirstLetter", mock.Anything, 'Ö').Return([]models.Country{}, nil)

	w := suite.get("/names/start/%C3%96")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[]`, w.Body.String())
}

func (suite *CountryHandlerTestSuite) TestListCountriesByFirstLetter_InvalidLetter() {
	for _, path := range []string{"/names/start/ab", "/names/start/%20", "/names/start/%3Cb%3E"} {
		w := suite.get(path)

		suite.Equal(http.StatusBadRequest, w.Code, path)
		suite.Equal("VALIDATION_ERROR", suite.errorCode(w), path)
	}
	suite.service.AssertNotCalled(suite.T(), "FilterByFirstLetter", mock.Anything, mock.Anything)
}

func (suite *CountryHandlerTestSuite) TestListCountriesByFirstLetter_PunctuationIsALetter() {
	for path, letter := range map[string]rune{
		"/names/start/&":   '&',
		"/names/start/%27": '\'',
		"/names/start/%3C": '<',
		"/names/start/%22": '"',
	} {
		suite.service.On("FilterByFirstLetter", mock.Anything, letter).Return([]models.Country{}, nil).Once()

		w := suite.get(path)

		suite.Equal(http.StatusOK, w.Code, path)
		suite.JSONEq(`[]`, w.Body.String(), path)
	}
}

func (suite *CountryHandlerTestSuite) TestListCountriesByFirstLetter_ServiceRejectsLetter() {
	suite.service.On("FilterByFirstLetter", mock.Anything, 'x').Return(nil, models.ErrInvalidLetter)

	w := suite.get("/names/start/x")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("VALIDATION_ERROR", suite.errorCode(w))
}

func (suite *CountryHandlerTestSuite) TestGetTotalPopulation_Success() {
	suite.service.On("TotalPopulation", mock.Anything).Return(int64(7530000000), nil)

	w := suite.get("/population/total")

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Header().Get("Content-Type"), "text/plain")
	suite.Equal("The total population is 7530000000", w.Body.String())
}

func (suite *CountryHandlerTestSuite) TestGetTotalPopulation_RepositoryUnavailable() {
	suite.service.On("TotalPopulation", mock.Anything).Return(int64(0), models.ErrRepositoryUnavailable)

	w := suite.get("/population/total")

	suite.Equal(http.StatusServiceUnavailable, w.Code)
}

func (suite *CountryHandlerTestSuite) TestGetMinPopulation_Single() {
	suite.service.On("MinPopulation", mock.Anything).
		Return(Extremum{Country: models.Country{ID: 3, Name: "Chad", Population: 50}}, nil)

	w := suite.get("/population/min")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"countryid":3,"name":"Chad","population":50}`, w.Body.String())
}

func (suite *CountryHandlerTestSuite) TestGetMinPopulation_Tie() {
	suite.service.On("MinPopulation", mock.Anything).Return(Extremum{
		Country:  models.Country{ID: 1, Name: "A", Population: 10},
		TiedWith: &models.Country{ID: 2, Name: "B", Population: 10},
	}, nil)

	w := suite.get("/population/min")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[
		{"countryid":1,"name":"A","population":10},
		{"countryid":2,"name":"B","population":10}
	]`, w.Body.String())
}

func (suite *CountryHandlerTestSuite) TestGetMinPopulation_EmptyDataset() {
	suite.service.On("MinPopulation", mock.Anything).Return(Extremum{}, models.ErrEmptyDataset)

	w := suite.get("/population/min")

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("EMPTY_DATASET", suite.errorCode(w))
}

func (suite *CountryHandlerTestSuite) TestGetMaxPopulation_Single() {
	suite.service.On("MaxPopulation", mock.Anything).
		Return(Extremum{Country: models.Country{ID: 2, Name: "USA", Population: 300}}, nil)

	w := suite.get("/population/max")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"countryid":2,"name":"USA","population":300}`, w.Body.String())
}

func (suite *CountryHandlerTestSuite) TestGetMaxPopulation_UnexpectedError() {
	suite.service.On("MaxPopulation", mock.Anything).Return(Extremum{}, errors.New("boom"))

	w := suite.get("/population/max")

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("INTERNAL_ERROR", suite.errorCode(w))
}
