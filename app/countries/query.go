package countries

import (
	"sort"
	"unicode"

	"github.com/joefazee/countries/models"
)

// Predicate reports whether a country should be kept by FilterCountries
type Predicate func(c *models.Country) bool

// Extremum is the result of a min/max population scan.
// TiedWith is set when another country (different id) shares the population.
type Extremum struct {
	Country  models.Country
	TiedWith *models.Country
}

// IsTie reports whether a tie partner was found
func (e Extremum) IsTie() bool {
	return e.TiedWith != nil
}

// SortByName returns a copy of countries ordered by name, ignoring case.
// Equal names keep their input order.
func SortByName(countries []models.Country) []models.Country {
	sorted := make([]models.Country, len(countries))
	copy(sorted, countries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SortKey() < sorted[j].SortKey()
	})
	return sorted
}

// FilterCountries returns, in input order, the countries accepted by pred
func FilterCountries(countries []models.Country, pred Predicate) []models.Country {
	filtered := make([]models.Country, 0, len(countries))
	for i := range countries {
		if pred(&countries[i]) {
			filtered = append(filtered, countries[i])
		}
	}
	return filtered
}

// FilterByFirstLetter returns the countries whose name starts with letter, ignoring case.
// Countries with an empty name never match.
func FilterByFirstLetter(countries []models.Country, letter rune) ([]models.Country, error) {
	if !unicode.IsPrint(letter) || unicode.IsSpace(letter) {
		return nil, models.ErrInvalidLetter
	}
	want := unicode.ToLower(letter)

	return FilterCountries(countries, func(c *models.Country) bool {
		first, ok := c.FirstLetter()
		return ok && first == want
	}), nil
}

// TotalPopulation sums the population of every country
func TotalPopulation(countries []models.Country) int64 {
	var total int64
	for i := range countries {
		total += countries[i].Population
	}
	return total
}

// MinPopulation returns the least populated country
func MinPopulation(countries []models.Country) (Extremum, error) {
	return scanExtremum(countries, func(candidate, current int64) bool {
		return candidate < current
	})
}

// MaxPopulation returns the most populated country
func MaxPopulation(countries []models.Country) (Extremum, error) {
	return scanExtremum(countries, func(candidate, current int64) bool {
		return candidate > current
	})
}

// scanExtremum keeps a single tie slot: with three or more countries sharing
// the extremum only the first one found and the last distinct one seen are kept.
func scanExtremum(countries []models.Country, better func(candidate, current int64) bool) (Extremum, error) {
	if len(countries) == 0 {
		return Extremum{}, models.ErrEmptyDataset
	}

	best := countries[0]
	var tied *models.Country

	for i := 1; i < len(countries); i++ {
		c := countries[i]
		switch {
		case better(c.Population, best.Population):
			best = c
			tied = nil
		case c.Population == best.Population && c.ID != best.ID:
			tied = &c
		}
	}

	return Extremum{Country: best, TiedWith: tied}, nil
}
