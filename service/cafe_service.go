package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"cafe-server/api/catalog"
	"cafe-server/filters"
	"cafe-server/models"
	"cafe-server/models/cafe"
)

const DEFAULT_PAGE_SIZE = 20
const SECTION_PAGE_SIZE = 5
const SEARCH_RESULT_LIMIT = 5

// CafeService serves normalized catalog records to the HTTP surface.
type CafeService struct {
	catalogAPI catalog.CatalogAPI
	now        func() time.Time
}

// NewCafeService constructs a CafeService with the catalog API injected.
func NewCafeService(catalogAPI catalog.CatalogAPI) *CafeService {
	return &CafeService{
		catalogAPI: catalogAPI,
		now:        time.Now,
	}
}

// HomeSections groups the three landing-page slices.
type HomeSections struct {
	BestOffers []cafe.Cafe `json:"bestOffers"`
	Chosen     []cafe.Cafe `json:"chosen"`
	New        []cafe.Cafe `json:"new"`
}

// GetAllCafes fetches the first catalog page.
func (cs *CafeService) GetAllCafes() ([]cafe.Cafe, error) {
	return cs.getCafesRequest(models.CafeQueryParams{
		Page: models.IntPtr(0),
		Size: models.IntPtr(DEFAULT_PAGE_SIZE),
	})
}

// GetBestOffers fetches the top-rated slice.
func (cs *CafeService) GetBestOffers() ([]cafe.Cafe, error) {
	return cs.getCafesRequest(models.CafeQueryParams{
		Sort: "rating,desc",
		Page: models.IntPtr(0),
		Size: models.IntPtr(SECTION_PAGE_SIZE),
	})
}

// GetChosenCafes fetches the most-reviewed slice.
func (cs *CafeService) GetChosenCafes() ([]cafe.Cafe, error) {
	return cs.getCafesRequest(models.CafeQueryParams{
		Sort: "votesCount,desc",
		Page: models.IntPtr(0),
		Size: models.IntPtr(SECTION_PAGE_SIZE),
	})
}

// GetNewCafes fetches the most recently added slice.
func (cs *CafeService) GetNewCafes() ([]cafe.Cafe, error) {
	return cs.getCafesRequest(models.CafeQueryParams{
		Sort: "id,desc",
		Page: models.IntPtr(0),
		Size: models.IntPtr(SECTION_PAGE_SIZE),
	})
}

// GetHomeSections fetches the three landing slices concurrently. The aggregate
// resolves as one unit: any slice failing fails the whole load.
func (cs *CafeService) GetHomeSections(ctx context.Context) (*HomeSections, error) {
	var sections HomeSections

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		best, err := cs.GetBestOffers()
		sections.BestOffers = best
		return err
	})
	g.Go(func() error {
		chosen, err := cs.GetChosenCafes()
		sections.Chosen = chosen
		return err
	})
	g.Go(func() error {
		newest, err := cs.GetNewCafes()
		sections.New = newest
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load home sections: %w", err)
	}
	return &sections, nil
}

// GetCafe fetches and normalizes a single record.
func (cs *CafeService) GetCafe(cafeID int) (*cafe.Cafe, error) {
	raw, err := cs.catalogAPI.GetCafe(cafeID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cafe %d: %w", cafeID, err)
	}
	normalized := cafe.Normalize(*raw, 0, cs.now())
	return &normalized, nil
}

// FilterCafes queries the catalog with the wire encoding of a filter state.
func (cs *CafeService) FilterCafes(state filters.FilterState) ([]cafe.Cafe, error) {
	params := models.CafeQueryParams{
		Page:         models.IntPtr(0),
		Size:         models.IntPtr(DEFAULT_PAGE_SIZE),
		Tags:         state.Tags,
		PriceRatings: state.Prices,
	}

	wire := filters.EncodeWire(state)
	if rating := wire.Get(filters.RATING_QUERY_ARG); rating != "" {
		if min, err := strconv.Atoi(rating); err == nil {
			params.Ratings = []int{min}
		}
	}
	params.OpeningHours = wire.Get(filters.OPENING_HOURS_QUERY_ARG)

	return cs.getCafesRequest(params)
}

// SearchCafes matches the free-text query against name and address, capped at
// SEARCH_RESULT_LIMIT entries. An empty query yields an empty result.
func (cs *CafeService) SearchCafes(query string) ([]cafe.Cafe, error) {
	if query == "" {
		return []cafe.Cafe{}, nil
	}

	all, err := cs.GetAllCafes()
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	matches := make([]cafe.Cafe, 0, SEARCH_RESULT_LIMIT)
	for _, c := range all {
		if strings.Contains(strings.ToLower(c.Name), needle) ||
			strings.Contains(strings.ToLower(c.Address), needle) {
			matches = append(matches, c)
			if len(matches) == SEARCH_RESULT_LIMIT {
				break
			}
		}
	}
	return matches, nil
}

func (cs *CafeService) getCafesRequest(params models.CafeQueryParams) ([]cafe.Cafe, error) {
	page, err := cs.catalogAPI.GetCafes(params)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog: %w", err)
	}

	now := cs.now()
	out := make([]cafe.Cafe, 0, len(page.Content))
	for i, raw := range page.Content {
		out = append(out, cafe.Normalize(raw, i, now))
	}
	return out, nil
}
