package catalog

import (
	"fmt"

	"cafe-server/models"
	"cafe-server/models/cafe"
)

// CatalogApiClientMock serves a small in-memory catalog for dev and tests.
type CatalogApiClientMock struct {
	cafes  []cafe.BackendCafe
	tags   []string
	cities []models.PopularCity
}

// NewCatalogApiClientMock creates a new instance of CatalogApiClientMock
func NewCatalogApiClientMock() *CatalogApiClientMock {
	return &CatalogApiClientMock{
		cafes:  fixtureCafes(),
		tags:   []string{"Wi-Fi", "Pet-Friendly", "Vegan", "Coworking", "Quiet zone"},
		cities: []models.PopularCity{{CityName: "Lviv", CafesCount: 2}, {CityName: "Kyiv", CafesCount: 1}},
	}
}

func (c *CatalogApiClientMock) GetCafes(params models.CafeQueryParams) (*models.CatalogPage, error) {
	return &models.CatalogPage{
		Content:       c.cafes,
		TotalPages:    1,
		TotalElements: len(c.cafes),
	}, nil
}

func (c *CatalogApiClientMock) GetCafe(cafeID int) (*cafe.BackendCafe, error) {
	for i := range c.cafes {
		if c.cafes[i].ID != nil && *c.cafes[i].ID == cafeID {
			return &c.cafes[i], nil
		}
	}
	return nil, fmt.Errorf("cafe %d not found", cafeID)
}

func (c *CatalogApiClientMock) GetTags() ([]string, error) {
	return c.tags, nil
}

func (c *CatalogApiClientMock) GetPopularCities() ([]models.PopularCity, error) {
	return c.cities, nil
}

func fixtureCafes() []cafe.BackendCafe {
	ids := []int{1, 2, 3}
	return []cafe.BackendCafe{
		{
			ID:           &ids[0],
			Name:         "Blue Cup",
			MainPhoto:    &cafe.Photo{PhotoLink: "/img/blue_cup.jpg"},
			PriceRating:  2,
			OpeningHours: "Mo-Fr 08:00-18:00; Sa,Su 10:00-16:00",
			Rating:       4.6,
			VotesCount:   120,
			Description:  "Specialty coffee near the square.",
			Tags:         cafe.TagList{"Wi-Fi", "cozy"},
			Address: cafe.AddressResponse{
				BuildingNumber: "12",
				Street: cafe.StreetResponse{
					Name: "Rynok Square",
					City: cafe.CityResponse{Name: "Lviv"},
				},
			},
		},
		{
			ID:           &ids[1],
			Name:         "Mocha House",
			MainPhoto:    &cafe.Photo{PhotoLink: "/img/mocha_house.jpg"},
			PriceRating:  3,
			OpeningHours: "Mo-Su 09:00-21:00",
			Rating:       4.2,
			VotesCount:   87,
			Tags:         cafe.TagList{"Pet-Friendly"},
			Address: cafe.AddressResponse{
				BuildingNumber: "4",
				Street: cafe.StreetResponse{
					Name: "Virmenska",
					City: cafe.CityResponse{Name: "Lviv"},
				},
			},
		},
		{
			ID:           &ids[2],
			Name:         "Night Owl",
			PriceRating:  1,
			OpeningHours: "Fr,Sa 18:00-23:00",
			Rating:       4.9,
			VotesCount:   45,
			Tags:         cafe.TagList{"Quiet zone"},
			Address: cafe.AddressResponse{
				BuildingNumber: "7",
				Street: cafe.StreetResponse{
					Name: "Khreshchatyk",
					City: cafe.CityResponse{Name: "Kyiv"},
				},
			},
		},
	}
}
