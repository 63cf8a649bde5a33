package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"cafe-server/filters"
	"cafe-server/models"
	"cafe-server/models/cafe"
)

// recordingCatalogAPI captures query params and serves canned pages.
type recordingCatalogAPI struct {
	params []models.CafeQueryParams
	page   *models.CatalogPage
	err    error
}

func (r *recordingCatalogAPI) GetCafes(params models.CafeQueryParams) (*models.CatalogPage, error) {
	r.params = append(r.params, params)
	if r.err != nil {
		return nil, r.err
	}
	if r.page != nil {
		return r.page, nil
	}
	return &models.CatalogPage{Content: []cafe.BackendCafe{}}, nil
}

func (r *recordingCatalogAPI) GetCafe(cafeID int) (*cafe.BackendCafe, error) {
	if r.err != nil {
		return nil, r.err
	}
	return &cafe.BackendCafe{ID: &cafeID, Name: "Blue Cup"}, nil
}

func (r *recordingCatalogAPI) GetTags() ([]string, error) {
	return []string{"Wi-Fi"}, nil
}

func (r *recordingCatalogAPI) GetPopularCities() ([]models.PopularCity, error) {
	return nil, nil
}

func backendCafes(names ...string) []cafe.BackendCafe {
	out := make([]cafe.BackendCafe, 0, len(names))
	for _, name := range names {
		out = append(out, cafe.BackendCafe{Name: name})
	}
	return out
}

func TestGetAllCafes_UsesFirstPageWithDefaultSize(t *testing.T) {
	api := &recordingCatalogAPI{page: &models.CatalogPage{Content: backendCafes("Blue Cup")}}
	service := NewCafeService(api)

	cafes, err := service.GetAllCafes()

	assert.NoError(t, err)
	assert.Len(t, cafes, 1)
	assert.Equal(t, 0, *api.params[0].Page)
	assert.Equal(t, DEFAULT_PAGE_SIZE, *api.params[0].Size)
}

func TestSectionSlices_UseExpectedSortKeys(t *testing.T) {
	api := &recordingCatalogAPI{}
	service := NewCafeService(api)

	_, _ = service.GetBestOffers()
	_, _ = service.GetChosenCafes()
	_, _ = service.GetNewCafes()

	assert.Equal(t, "rating,desc", api.params[0].Sort)
	assert.Equal(t, "votesCount,desc", api.params[1].Sort)
	assert.Equal(t, "id,desc", api.params[2].Sort)
	for _, p := range api.params {
		assert.Equal(t, SECTION_PAGE_SIZE, *p.Size)
	}
}

func TestGetHomeSections_AllSlicesResolveTogether(t *testing.T) {
	api := &recordingCatalogAPI{page: &models.CatalogPage{Content: backendCafes("Blue Cup")}}
	service := NewCafeService(api)

	sections, err := service.GetHomeSections(context.Background())

	assert.NoError(t, err)
	assert.Len(t, sections.BestOffers, 1)
	assert.Len(t, sections.Chosen, 1)
	assert.Len(t, sections.New, 1)
	assert.Len(t, api.params, 3)
}

func TestGetHomeSections_OneFailureFailsTheAggregate(t *testing.T) {
	api := &recordingCatalogAPI{err: errors.New("catalog down")}
	service := NewCafeService(api)

	sections, err := service.GetHomeSections(context.Background())

	assert.Error(t, err)
	assert.Nil(t, sections)
}

func TestFilterCafes_EncodesWireParams(t *testing.T) {
	api := &recordingCatalogAPI{}
	service := NewCafeService(api)

	state := filters.DefaultFilterState()
	state.Tags = []string{"Wi-Fi"}
	state.Prices = []int{2, 3}
	state.Rating = []int{5, 4}
	state.TimeFrom = "10:00 a.m."

	_, err := service.FilterCafes(state)

	assert.NoError(t, err)
	params := api.params[0]
	assert.Equal(t, []string{"Wi-Fi"}, params.Tags)
	assert.Equal(t, []int{2, 3}, params.PriceRatings)
	// Rating travels as the single selected minimum.
	assert.Equal(t, []int{4}, params.Ratings)
	assert.Equal(t, "10:00", params.OpeningHours)
}

func TestSearchCafes_MatchesNameAndAddressCaseInsensitively(t *testing.T) {
	api := &recordingCatalogAPI{page: &models.CatalogPage{Content: []cafe.BackendCafe{
		{Name: "Blue Cup"},
		{Name: "Mocha House", Address: cafe.AddressResponse{
			Street: cafe.StreetResponse{City: cafe.CityResponse{Name: "Lviv"}},
		}},
		{Name: "Unrelated"},
	}}}
	service := NewCafeService(api)

	byName, err := service.SearchCafes("blue")
	assert.NoError(t, err)
	assert.Len(t, byName, 1)
	assert.Equal(t, "Blue Cup", byName[0].Name)

	byCity, err := service.SearchCafes("lviv")
	assert.NoError(t, err)
	assert.Len(t, byCity, 1)
	assert.Equal(t, "Mocha House", byCity[0].Name)
}

func TestSearchCafes_EmptyQueryAndResultCap(t *testing.T) {
	api := &recordingCatalogAPI{page: &models.CatalogPage{
		Content: backendCafes("Cafe A", "Cafe B", "Cafe C", "Cafe D", "Cafe E", "Cafe F", "Cafe G"),
	}}
	service := NewCafeService(api)

	empty, err := service.SearchCafes("")
	assert.NoError(t, err)
	assert.Empty(t, empty)
	assert.Empty(t, api.params, "an empty query must not hit the catalog")

	capped, err := service.SearchCafes("cafe")
	assert.NoError(t, err)
	assert.Len(t, capped, SEARCH_RESULT_LIMIT)
}
