package models

// seedCountries is the fixed dataset served when no external store is configured.
// Populations are mid-2019 estimates.
var seedCountries = []Country{
	{ID: 1, Name: "China", Population: 1420062022},
	{ID: 2, Name: "India", Population: 1368737513},
	{ID: 3, Name: "United States", Population: 329093110},
	{ID: 4, Name: "Indonesia", Population: 269536482},
	{ID: 5, Name: "Brazil", Population: 212392717},
	{ID: 6, Name: "Pakistan", Population: 204596442},
	{ID: 7, Name: "Nigeria", Population: 200962417},
	{ID: 8, Name: "Bangladesh", Population: 168065920},
	{ID: 9, Name: "Russia", Population: 143895551},
	{ID: 10, Name: "Mexico", Population: 132328035},
	{ID: 11, Name: "Japan", Population: 126854745},
	{ID: 12, Name: "Ethiopia", Population: 110135635},
	{ID: 13, Name: "Philippines", Population: 108106310},
	{ID: 14, Name: "Egypt", Population: 101168745},
	{ID: 15, Name: "Vietnam", Population: 97429061},
	{ID: 16, Name: "Germany", Population: 82438639},
	{ID: 17, Name: "Turkey", Population: 82961805},
	{ID: 18, Name: "Iran", Population: 82820766},
	{ID: 19, Name: "Thailand", Population: 69306160},
	{ID: 20, Name: "France", Population: 65480710},
	{ID: 21, Name: "United Kingdom", Population: 66959016},
	{ID: 22, Name: "Italy", Population: 59216525},
	{ID: 23, Name: "South Africa", Population: 58065097},
	{ID: 24, Name: "Tanzania", Population: 60913557},
	{ID: 25, Name: "Kenya", Population: 52214791},
	{ID: 26, Name: "South Korea", Population: 51339238},
	{ID: 27, Name: "Colombia", Population: 49849818},
	{ID: 28, Name: "Spain", Population: 46441049},
	{ID: 29, Name: "Argentina", Population: 45101781},
	{ID: 30, Name: "Uganda", Population: 45711874},
	{ID: 31, Name: "Ukraine", Population: 43795220},
	{ID: 32, Name: "Algeria", Population: 42679018},
	{ID: 33, Name: "Canada", Population: 37279811},
	{ID: 34, Name: "Peru", Population: 32933835},
	{ID: 35, Name: "Australia", Population: 25088636},
	{ID: 36, Name: "Chile", Population: 18336653},
	{ID: 37, Name: "Netherlands", Population: 17132908},
	{ID: 38, Name: "Chad", Population: 15814345},
	{ID: 39, Name: "Sweden", Population: 10053135},
	{ID: 40, Name: "Portugal", Population: 10254666},
	{ID: 41, Name: "Switzerland", Population: 8608259},
	{ID: 42, Name: "Norway", Population: 5400916},
	{ID: 43, Name: "New Zealand", Population: 4792409},
	{ID: 44, Name: "Uruguay", Population: 3482156},
	{ID: 45, Name: "Iceland", Population: 340566},
	{ID: 46, Name: "Liechtenstein", Population: 38404},
	{ID: 47, Name: "Monaco", Population: 39102},
	{ID: 48, Name: "San Marino", Population: 33683},
	{ID: 49, Name: "Tuvalu", Population: 11393},
	{ID: 50, Name: "Vatican City", Population: 799},
}

// SeedCountries returns a fresh copy of the built-in dataset
func SeedCountries() []Country {
	out := make([]Country, len(seedCountries))
	copy(out, seedCountries)
	return out
}
