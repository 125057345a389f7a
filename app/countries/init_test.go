package countries

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/joefazee/countries/internal/deps"
	"github.com/joefazee/countries/internal/logger"
	"github.com/joefazee/countries/internal/metrics"
	"github.com/joefazee/countries/internal/sanitizer"
	"github.com/joefazee/countries/models"
)

func createTestContainer() *deps.Container {
	container := deps.NewContainer(sanitizer.NewHTMLStripper(), logger.NewNullLogger(), metrics.New())
	InitRepositories(container, NewMemoryRepository(models.SeedCountries()))
	return container
}

func assertRouteExists(t *testing.T, routes gin.RoutesInfo, method, path string) {
	t.Helper()
	for _, route := range routes {
		if route.Method == method && route.Path == path {
			return
		}
	}
	t.Errorf("route %s %s not found", method, path)
}

func TestInitRepositories(t *testing.T) {
	container := createTestContainer()

	assert.Implements(t, (*Repository)(nil), container.GetRepository(CountryRepoKey))
	assert.Implements(t, (*Service)(nil), container.GetService(CountryServiceKey))
}

func TestMountPublic(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	MountPublic(router.Group("/"), createTestContainer())

	routes := router.Routes()
	assertRouteExists(t, routes, "GET", "/names/all")
	assertRouteExists(t, routes, "GET", "/names/start/:letter")
	assertRouteExists(t, routes, "GET", "/population/total")
	assertRouteExists(t, routes, "GET", "/population/min")
	assertRouteExists(t, routes, "GET", "/population/max")
}

func TestMountPublic_SeedDataset(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	MountPublic(router.Group("/"), createTestContainer())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/population/max", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"countryid":1,"name":"China","population":1420062022}`, w.Body.String())
}
