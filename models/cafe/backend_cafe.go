package cafe

// Photo is one gallery entry on a raw catalog record.
type Photo struct {
	PhotoLink string `json:"photoLink"`
}

// CityResponse is the innermost address DTO.
type CityResponse struct {
	Name string `json:"name"`
}

// StreetResponse nests the city DTO.
type StreetResponse struct {
	Name string       `json:"name"`
	City CityResponse `json:"cityDtoResponse"`
}

// AddressResponse mirrors the catalog API's nested address DTO.
type AddressResponse struct {
	BuildingNumber string         `json:"buildingNumber"`
	Street         StreetResponse `json:"streetDtoResponse"`
}

// BackendCafe mirrors a raw record from the catalog API. Photos may arrive as a
// single main link, a list, or both; tags in either TagList shape. Records without
// an id fall back to their position in the page.
type BackendCafe struct {
	ID           *int            `json:"id,omitempty"`
	Name         string          `json:"name"`
	MainPhoto    *Photo          `json:"mainPhoto,omitempty"`
	Photos       []Photo         `json:"photos,omitempty"`
	PriceRating  int             `json:"priceRating"`
	OpeningHours string          `json:"openingHours"`
	Rating       float64         `json:"rating"`
	VotesCount   int             `json:"votesCount"`
	Description  string          `json:"description,omitempty"`
	Tags         TagList         `json:"tags,omitempty"`
	Address      AddressResponse `json:"addressDtoResponse"`
}
