package countries

import (
	"context"
	"fmt"
	"time"

	"github.com/joefazee/countries/internal/logger"
	"github.com/joefazee/countries/internal/metrics"
	"github.com/joefazee/countries/models"
)

const (
	queryListAll     = "list_all"
	queryFirstLetter = "first_letter"
	queryTotal       = "total_population"
	queryMin         = "min_population"
	queryMax         = "max_population"
)

// service implements the Service interface
type service struct {
	repo    Repository
	logger  logger.Logger
	metrics *metrics.Metrics
}

// NewService creates a new country query service
func NewService(repo Repository, log logger.Logger, m *metrics.Metrics) Service {
	if log == nil {
		log = logger.NewNullLogger()
	}
	return &service{
		repo:    repo,
		logger:  log,
		metrics: m,
	}
}

// snapshot fetches the dataset for a single query. Repository failures are
// reported as ErrRepositoryUnavailable with the cause kept in the chain.
func (s *service) snapshot(ctx context.Context, query string) ([]models.Country, error) {
	countries, err := s.repo.FetchAll(ctx)
	if err != nil {
		s.logger.Error(err, map[string]interface{}{"query": query})
		return nil, fmt.Errorf("%w: %w", models.ErrRepositoryUnavailable, err)
	}

	if s.metrics != nil {
		s.metrics.ObserveSnapshot(len(countries))
	}
	s.logger.Debug("snapshot fetched", map[string]interface{}{
		"query": query,
		"count": len(countries),
	})
	return countries, nil
}

func (s *service) observe(query string, start time.Time, err error) {
	if s.metrics != nil {
		s.metrics.ObserveQuery(query, start, err)
	}
}

// ListAllSortedByName returns every country ordered by name
func (s *service) ListAllSortedByName(ctx context.Context) (result []models.Country, err error) {
	defer func(start time.Time) { s.observe(queryListAll, start, err) }(time.Now())

	countries, err := s.snapshot(ctx, queryListAll)
	if err != nil {
		return nil, err
	}
	return SortByName(countries), nil
}

// FilterByFirstLetter returns the countries whose name starts with letter
func (s *service) FilterByFirstLetter(ctx context.Context, letter rune) (result []models.Country, err error) {
	defer func(start time.Time) { s.observe(queryFirstLetter, start, err) }(time.Now())

	countries, err := s.snapshot(ctx, queryFirstLetter)
	if err != nil {
		return nil, err
	}
	return FilterByFirstLetter(countries, letter)
}

// TotalPopulation returns the summed population of all countries
func (s *service) TotalPopulation(ctx context.Context) (total int64, err error) {
	defer func(start time.Time) { s.observe(queryTotal, start, err) }(time.Now())

	countries, err := s.snapshot(ctx, queryTotal)
	if err != nil {
		return 0, err
	}
	return TotalPopulation(countries), nil
}

// MinPopulation returns the least populated country and its tie partner, if any
func (s *service) MinPopulation(ctx context.Context) (result Extremum, err error) {
	defer func(start time.Time) { s.observe(queryMin, start, err) }(time.Now())

	countries, err := s.snapshot(ctx, queryMin)
	if err != nil {
		return Extremum{}, err
	}
	return MinPopulation(countries)
}

// MaxPopulation returns the most populated country and its tie partner, if any
func (s *service) MaxPopulation(ctx context.Context) (result Extremum, err error) {
	defer func(start time.Time) { s.observe(queryMax, start, err) }(time.Now())

	countries, err := s.snapshot(ctx, queryMax)
	if err != nil {
		return Extremum{}, err
	}
	return MaxPopulation(countries)
}
