package countries

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/joefazee/countries/models"
)

// repository implements the Repository interface using GORM
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new postgres-backed country repository
func NewRepository(db *gorm.DB) Store {
	return &repository{
		db: db,
	}
}

// FetchAll returns all countries ordered by id
func (r *repository) FetchAll(ctx context.Context) ([]models.Country, error) {
	var countries []models.Country
	err := r.db.WithContext(ctx).Order("countryid").Find(&countries).Error
	return countries, err
}

// Seed inserts countries, updating the population of names that already exist
func (r *repository) Seed(ctx context.Context, countries []models.Country) error {
	if len(countries) == 0 {
		return nil
	}
	for i := range countries {
		if err := countries[i].Validate(); err != nil {
			return err
		}
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"population"}),
		}).
		Create(&countries).Error
}
