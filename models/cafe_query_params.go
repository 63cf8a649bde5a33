package models

import (
	"net/url"
	"strconv"
)

// CafeQueryParams mirrors the catalog API's query args. Use zero-values to omit.
type CafeQueryParams struct {
	Page         *int     // optional, 0-based
	Size         *int     // optional
	Sort         string   // e.g. "rating,desc"
	Query        string   // free-text search
	Tags         []string // repeated
	PriceRatings []int    // repeated (1..4)
	Ratings      []int    // repeated or single minimum (2..5)
	OpeningHours string   // "HH:MM" or "HH:MM-HH:MM"
}

func (p CafeQueryParams) ToValues() url.Values {
	q := url.Values{}

	if p.Page != nil {
		q.Set("page", itoa(*p.Page))
	}
	if p.Size != nil {
		q.Set("size", itoa(*p.Size))
	}
	if p.Sort != "" {
		q.Set("sort", p.Sort)
	}
	if p.Query != "" {
		q.Set("query", p.Query)
	}

	for _, tag := range p.Tags {
		q.Add("tags", tag)
	}
	for _, price := range p.PriceRatings {
		q.Add("priceRating", itoa(price))
	}
	for _, rating := range p.Ratings {
		q.Add("rating", itoa(rating))
	}

	if p.OpeningHours != "" {
		q.Set("openingHours", p.OpeningHours)
	}

	return q
}

// lightweight helper (no fmt.Sprintf allocations for ints)
func itoa(i int) string { return strconv.Itoa(i) }

// IntPtr is a convenience for optional query args.
func IntPtr(i int) *int { return &i }
