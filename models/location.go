package models

// Coordinates is a geocoded place
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Name      string  `json:"name"`
}

// Suggestion is a single autocomplete match from the geocoding service
type Suggestion struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Country   string  `json:"country"`
	Admin1    string  `json:"admin1,omitempty"` // state / region
	Admin2    string  `json:"admin2,omitempty"` // county / district
}
