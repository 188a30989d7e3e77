package domain

// Area is a named sub-region of a city returned by the location lookup.
type Area struct {
	ID        string
	Name      string
	Latitude  float64
	Longitude float64
}
