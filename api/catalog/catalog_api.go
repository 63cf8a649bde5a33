package catalog

import (
	"cafe-server/models"
	"cafe-server/models/cafe"
)

// CatalogAPI defines the interface for interacting with the upstream café catalog
type CatalogAPI interface {
	GetCafes(params models.CafeQueryParams) (*models.CatalogPage, error)
	GetCafe(cafeID int) (*cafe.BackendCafe, error)
	GetTags() ([]string, error)
	GetPopularCities() ([]models.PopularCity, error)
}
