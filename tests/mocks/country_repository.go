package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/joefazee/countries/models"
)

// MockCountryRepository is a testify mock for country repositories and seeders
type MockCountryRepository struct {
	mock.Mock
}

func (m *MockCountryRepository) FetchAll(ctx context.Context) ([]models.Country, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Country), args.Error(1)
}

func (m *MockCountryRepository) Seed(ctx context.Context, countries []models.Country) error {
	args := m.Called(ctx, countries)
	return args.Error(0)
}
