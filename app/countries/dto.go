package countries

import (
	"fmt"

	"github.com/joefazee/countries/models"
)

// CountryResponse represents the response for country data
type CountryResponse struct {
	CountryID  int64  `json:"countryid"`
	Name       string `json:"name"`
	Population int64  `json:"population"`
}

// ToCountryResponse converts a models.Country to CountryResponse
func ToCountryResponse(country *models.Country) CountryResponse {
	return CountryResponse{
		CountryID:  country.ID,
		Name:       country.Name,
		Population: country.Population,
	}
}

// ToCountryResponseList converts a slice of models.Country to CountryResponse
func ToCountryResponseList(countries []models.Country) []CountryResponse {
	responses := make([]CountryResponse, len(countries))
	for i := range countries {
		responses[i] = ToCountryResponse(&countries[i])
	}
	return responses
}

// ToExtremumResponse renders a single country, or the pair when a tie was found
func ToExtremumResponse(e Extremum) interface{} {
	if !e.IsTie() {
		return ToCountryResponse(&e.Country)
	}
	return []CountryResponse{
		ToCountryResponse(&e.Country),
		ToCountryResponse(e.TiedWith),
	}
}

// TotalPopulationMessage is the body of GET /population/total
func TotalPopulationMessage(total int64) string {
	return fmt.Sprintf("The total population is %d", total)
}
