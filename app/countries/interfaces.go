package countries

import (
	"context"

	"github.com/joefazee/countries/models"
)

// Repository supplies the complete country dataset.
// Every call returns a fresh snapshot the caller may freely reorder.
type Repository interface {
	FetchAll(ctx context.Context) ([]models.Country, error)
}

// Seeder loads a dataset into a store that supports writes
type Seeder interface {
	Seed(ctx context.Context, countries []models.Country) error
}

// Store is a repository that can also be seeded
type Store interface {
	Repository
	Seeder
}

// Service defines the interface for country queries
type Service interface {
	ListAllSortedByName(ctx context.Context) ([]models.Country, error)
	FilterByFirstLetter(ctx context.Context, letter rune) ([]models.Country, error)
	TotalPopulation(ctx context.Context) (int64, error)
	MinPopulation(ctx context.Context) (Extremum, error)
	MaxPopulation(ctx context.Context) (Extremum, error)
}
