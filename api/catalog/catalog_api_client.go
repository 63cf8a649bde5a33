package catalog

import (
	"strconv"

	"cafe-server/api"
	"cafe-server/models"
	"cafe-server/models/cafe"
)

// CatalogApiClient embeds the common HTTPClient
type CatalogApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
}

// NewCatalogApiClient creates a new instance of CatalogApiClient
func NewCatalogApiClient(httpClient *api.HTTPClient) *CatalogApiClient {
	return &CatalogApiClient{
		HTTPClient: httpClient,
	}
}

// GetCafes queries the catalog with pagination, sorting and filter parameters.
func (c *CatalogApiClient) GetCafes(params models.CafeQueryParams) (*models.CatalogPage, error) {
	var response models.CatalogPage
	err := c.Request("GET", "/cafes", params.ToValues(), nil, nil, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// GetCafe retrieves a single raw record by identifier.
func (c *CatalogApiClient) GetCafe(cafeID int) (*cafe.BackendCafe, error) {
	var response cafe.BackendCafe
	err := c.Request("GET", "/cafes/"+strconv.Itoa(cafeID), nil, nil, nil, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// GetTags fetches the tag vocabulary; both wire shapes decode via TagList.
func (c *CatalogApiClient) GetTags() ([]string, error) {
	var response cafe.TagList
	err := c.Request("GET", "/tags", nil, nil, nil, &response)
	if err != nil {
		return nil, err
	}
	return []string(response), nil
}

// GetPopularCities fetches the popular-cities entries.
func (c *CatalogApiClient) GetPopularCities() ([]models.PopularCity, error) {
	var response []models.PopularCity
	err := c.Request("GET", "/cities/popular", nil, nil, nil, &response)
	if err != nil {
		return nil, err
	}
	return response, nil
}
