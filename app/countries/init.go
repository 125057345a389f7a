package countries

import (
	"github.com/gin-gonic/gin"

	"github.com/joefazee/countries/internal/deps"
)

const (
	CountryRepoKey    = "country_repository"
	CountryServiceKey = "country_service"
)

// MountPublic mounts the read-only country routes
func MountPublic(r *gin.RouterGroup, container *deps.Container) {
	handler := createHandler(container)

	namesGroup := r.Group("/names")
	namesGroup.GET("/all", handler.ListAllCountries)
	namesGroup.GET("/start/:letter", handler.ListCountriesByFirstLetter)

	populationGroup := r.Group("/population")
	populationGroup.GET("/total", handler.GetTotalPopulation)
	populationGroup.GET("/min", handler.GetMinPopulation)
	populationGroup.GET("/max", handler.GetMaxPopulation)
}

// InitRepositories registers repo and the service built on it
func InitRepositories(container *deps.Container, repo Repository) {
	container.RegisterRepository(CountryRepoKey, repo)
	container.RegisterService(CountryServiceKey, NewService(repo, container.Logger, container.Metrics))
}

// createHandler creates a handler with all dependencies
func createHandler(container *deps.Container) *Handler {
	service := container.GetService(CountryServiceKey).(Service)

	return NewHandler(service, container.Sanitizer, container.Logger)
}
