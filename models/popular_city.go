package models

// PopularCity is one entry of the popular-cities endpoint.
type PopularCity struct {
	CityName   string `json:"cityName"`
	CafesCount int    `json:"cafesCount"`
}
