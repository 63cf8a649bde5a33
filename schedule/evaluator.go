package schedule

import (
	"strconv"
	"strings"
	"time"
)

// Result is the outcome of evaluating an opening-hours string at a point in time.
// ClosingTime carries the raw close token of the matched clause, "Closed" when no
// clause covers today, or "N/A" when the schedule string is absent.
type Result struct {
	IsOpen      bool   `json:"isOpen"`
	ClosingTime string `json:"closingTime"`
}

// dayCodes in Monday-first weekly order; range selectors compare against these indexes.
var dayCodes = []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

// Evaluate decides whether a venue is open at the given time and, if so, when it
// closes today. The schedule string is a semicolon-separated list of clauses
// "<days> <open>-<close>", e.g. "Mo-Fr 08:00-18:00; Sa,Su 10:00-16:00". Clauses are
// scanned in order and the first one covering today wins. The open interval is
// half-open: a venue open "08:00-18:00" reads closed at exactly 18:00.
//
// Close times numerically earlier than the open time (midnight-spanning ranges) are
// unsupported input; the half-open comparison reads them as closed all day.
func Evaluate(openingHours string, now time.Time) Result {
	if openingHours == "" {
		return Result{IsOpen: false, ClosingTime: "N/A"}
	}

	todayIdx := mondayFirstIndex(now.Weekday())
	todayCode := dayCodes[todayIdx]

	var todayClause string
	for _, clause := range strings.Split(openingHours, ";") {
		clause = strings.TrimSpace(clause)
		daySelector := strings.SplitN(clause, " ", 2)[0]

		if coversToday(daySelector, todayIdx, todayCode) {
			todayClause = clause
			break
		}
	}

	if todayClause != "" {
		fields := strings.Split(todayClause, " ")
		if len(fields) > 1 && strings.Contains(fields[1], "-") {
			openToken, closeToken, _ := strings.Cut(fields[1], "-")

			nowMinutes := now.Hour()*60 + now.Minute()
			openMinutes := timeToMinutes(openToken)
			closeMinutes := timeToMinutes(closeToken)

			return Result{
				IsOpen:      nowMinutes >= openMinutes && nowMinutes < closeMinutes,
				ClosingTime: closeToken,
			}
		}
	}

	return Result{IsOpen: false, ClosingTime: "Closed"}
}

// coversToday checks a single day-selector. The range form is checked before the
// list form, so a selector containing both a dash and commas reads as a range.
func coversToday(daySelector string, todayIdx int, todayCode string) bool {
	switch {
	case strings.Contains(daySelector, "-"):
		start, end, _ := strings.Cut(daySelector, "-")
		sIdx := dayIndex(start)
		eIdx := dayIndex(end)
		return todayIdx >= sIdx && todayIdx <= eIdx
	case strings.Contains(daySelector, ","):
		return strings.Contains(daySelector, todayCode)
	default:
		return daySelector == todayCode
	}
}

// mondayFirstIndex remaps time.Weekday (Sunday=0) to Monday-first order (Monday=0).
func mondayFirstIndex(w time.Weekday) int {
	return (int(w) + 6) % 7
}

// dayIndex returns the Monday-first index of a day code, or -1 for unknown codes.
// An unknown range bound is accepted but unvalidated: -1 widens the window downward.
func dayIndex(code string) int {
	for i, d := range dayCodes {
		if d == code {
			return i
		}
	}
	return -1
}

// timeToMinutes converts an "HH:MM" token into minutes since midnight. Unparseable
// components read as 0 rather than raising; the input is accepted but unvalidated.
func timeToMinutes(token string) int {
	if token == "" {
		return 0
	}
	h, m, _ := strings.Cut(token, ":")
	hours, _ := strconv.Atoi(h)
	minutes, _ := strconv.Atoi(m)
	return hours*60 + minutes
}
