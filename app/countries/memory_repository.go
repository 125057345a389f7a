package countries

import (
	"context"

	"github.com/joefazee/countries/models"
)

// memoryRepository serves a fixed dataset held in process
type memoryRepository struct {
	countries []models.Country
}

// NewMemoryRepository copies countries into a read-only repository
func NewMemoryRepository(countries []models.Country) Repository {
	data := make([]models.Country, len(countries))
	copy(data, countries)
	return &memoryRepository{countries: data}
}

func (r *memoryRepository) FetchAll(ctx context.Context) ([]models.Country, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	snapshot := make([]models.Country, len(r.countries))
	copy(snapshot, r.countries)
	return snapshot, nil
}
