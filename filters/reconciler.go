package filters

import (
	"net/url"
	"strconv"
	"strings"
)

// URL query keys recognized by the catalog surface.
const (
	TAGS_QUERY_ARG          = "tags"
	PRICE_RATING_QUERY_ARG  = "priceRating"
	RATING_QUERY_ARG        = "rating"
	OPENING_HOURS_QUERY_ARG = "openingHours"
)

// URLCarriesFilters reports whether the query string determines the filter state.
// The presence of any single key suppresses the persisted blob entirely.
func URLCarriesFilters(q url.Values) bool {
	return q.Has(TAGS_QUERY_ARG) ||
		q.Has(PRICE_RATING_QUERY_ARG) ||
		q.Has(RATING_QUERY_ARG) ||
		q.Has(OPENING_HOURS_QUERY_ARG)
}

// Reconcile produces one canonical FilterState from the three candidate sources
// under fixed precedence: URL query parameters win wholesale, then the persisted
// blob, then defaults. Sources are never merged.
func Reconcile(urlQuery url.Values, persisted *FilterState) FilterState {
	if URLCarriesFilters(urlQuery) {
		return fromURL(urlQuery)
	}
	if persisted != nil {
		return *persisted
	}
	return DefaultFilterState()
}

func fromURL(q url.Values) FilterState {
	f := DefaultFilterState()
	f.Tags = append(f.Tags, q[TAGS_QUERY_ARG]...)
	f.Prices = atoiAll(q[PRICE_RATING_QUERY_ARG])
	f.Rating = atoiAll(q[RATING_QUERY_ARG])

	if hours := q.Get(OPENING_HOURS_QUERY_ARG); hours != "" {
		if from, to, isRange := strings.Cut(hours, "-"); isRange {
			f.TimeFrom = From24Hour(from)
			f.TimeTo = From24Hour(to)
		} else {
			f.TimeFrom = From24Hour(hours)
		}
	}
	return f
}

// EncodeWire serializes a FilterState into catalog query parameters: tags and
// priceRating repeated, rating as the single selected minimum, openingHours as a
// 24-hour time or dash-joined range. Default time sentinels are never encoded.
func EncodeWire(f FilterState) url.Values {
	q := url.Values{}

	for _, tag := range f.Tags {
		q.Add(TAGS_QUERY_ARG, tag)
	}
	for _, price := range f.Prices {
		q.Add(PRICE_RATING_QUERY_ARG, strconv.Itoa(price))
	}
	if len(f.Rating) > 0 {
		q.Add(RATING_QUERY_ARG, strconv.Itoa(minOf(f.Rating)))
	}

	fromSet := f.TimeFrom != "" && f.TimeFrom != DEFAULT_TIME_FROM
	toSet := f.TimeTo != "" && f.TimeTo != DEFAULT_TIME_TO
	switch {
	case fromSet && toSet:
		q.Add(OPENING_HOURS_QUERY_ARG, To24Hour(f.TimeFrom)+"-"+To24Hour(f.TimeTo))
	case fromSet:
		q.Add(OPENING_HOURS_QUERY_ARG, To24Hour(f.TimeFrom))
	}

	return q
}

func atoiAll(values []string) []int {
	out := make([]int, 0, len(values))
	for _, v := range values {
		if n, err := strconv.Atoi(v); err == nil {
			out = append(out, n)
		}
	}
	return out
}

func minOf(values []int) int {
	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}
