package filters

import "errors"

// Default time bounds. A bound equal to its default sentinel means "no constraint"
// and is never serialized or counted as an active filter.
const DEFAULT_TIME_FROM = "9:00 a.m."
const DEFAULT_TIME_TO = "9:00 p.m."

// FilterState is the canonical filter criteria for the catalog surface.
type FilterState struct {
	Tags     []string `json:"tags"`
	Prices   []int    `json:"prices"`
	Rating   []int    `json:"rating"`
	TimeFrom string   `json:"timeFrom"`
	TimeTo   string   `json:"timeTo"`
}

// DefaultFilterState returns the hard-coded defaults used when neither the URL nor
// the persisted blob carries filter criteria.
func DefaultFilterState() FilterState {
	return FilterState{
		Tags:     []string{},
		Prices:   []int{},
		Rating:   []int{},
		TimeFrom: DEFAULT_TIME_FROM,
		TimeTo:   DEFAULT_TIME_TO,
	}
}

// ActiveCount is the badge value summarizing how many criteria are non-default.
// It is a pure projection of the state and is never stored.
func ActiveCount(f FilterState) int {
	count := len(f.Tags) + len(f.Prices) + len(f.Rating)
	if f.TimeFrom != "" && f.TimeFrom != DEFAULT_TIME_FROM {
		count++
	}
	return count
}

// ErrInvalidTimeRange blocks Apply when the opening-hours bounds are inverted.
var ErrInvalidTimeRange = errors.New("\"From\" time must be earlier than \"To\" time")

// ValidateTimeRange checks that TimeFrom represents an earlier minute of day than
// TimeTo. A violation is a recoverable validation state, not a failure.
func ValidateTimeRange(f FilterState) error {
	from := MinuteOfDay(To24Hour(f.TimeFrom))
	to := MinuteOfDay(To24Hour(f.TimeTo))
	if from >= to {
		return ErrInvalidTimeRange
	}
	return nil
}
