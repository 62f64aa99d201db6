// Package resolve classifies a calendar date against a business's weekly
// schedule, vacation periods and market-day windows. Resolution is a
// pure computation; a calendar view may call it concurrently for every
// visible date.
package resolve

import (
	"time"

	"horaires/internal/model"
	"horaires/internal/period"
)

// Status classifies a resolved date.
type Status string

const (
	StatusOpen           Status = "open"
	StatusClosedWeekly   Status = "closed_weekly"
	StatusClosedVacation Status = "closed_vacation"
)

// Vacation reasons shown to end users. The UI is French-facing, so these
// two strings are fixed regardless of locale.
const (
	ReasonVacation          = "Vacances"
	ReasonRecurringVacation = "Vacances (annuel)"
	ReasonWeeklyClosure     = "Fermé"
)

// DayStatus is the outcome of resolving one date. OpeningRanges and
// MarketRanges are informational "HH:MM-HH:MM" strings; both are empty
// unless the status is open.
type DayStatus struct {
	Status        Status   `json:"status"`
	Reason        string   `json:"reason,omitempty"`
	OpeningRanges []string `json:"opening_ranges,omitempty"`
	MarketRanges  []string `json:"market_ranges,omitempty"`
}

// Day resolves a single date. Precedence: any matching vacation period
// closes the day; otherwise an explicitly closed weekday closes it; an
// open or never-configured weekday counts as open. market may be nil.
func Day(date time.Time, week model.WeekSchedule, periods []model.VacationPeriod, market model.MarketDaySchedule) DayStatus {
	for _, p := range periods {
		if period.Contains(p, date) {
			reason := ReasonVacation
			if p.IsRecurring {
				reason = ReasonRecurringVacation
			}
			return DayStatus{Status: StatusClosedVacation, Reason: reason}
		}
	}

	weekday := WeekdayOf(date)
	day := week.Day(weekday)
	if day.Assignment() == model.AssignmentClosed {
		return DayStatus{Status: StatusClosedWeekly, Reason: ReasonWeeklyClosure}
	}

	return DayStatus{
		Status:        StatusOpen,
		OpeningRanges: openingRanges(day),
		MarketRanges:  marketRanges(market, weekday),
	}
}

// WeekdayOf maps a date to the schedule's weekday identifier.
func WeekdayOf(date time.Time) model.Weekday {
	switch date.Weekday() {
	case time.Monday:
		return model.Monday
	case time.Tuesday:
		return model.Tuesday
	case time.Wednesday:
		return model.Wednesday
	case time.Thursday:
		return model.Thursday
	case time.Friday:
		return model.Friday
	case time.Saturday:
		return model.Saturday
	default:
		return model.Sunday
	}
}

func openingRanges(d model.DaySchedule) []string {
	if d.Assignment() != model.AssignmentOpen {
		return nil
	}
	if d.HasLunchBreak {
		return []string{
			d.MorningOpen + "-" + d.MorningClose,
			d.AfternoonOpen + "-" + d.AfternoonClose,
		}
	}
	return []string{d.OpenTime + "-" + d.CloseTime}
}

func marketRanges(market model.MarketDaySchedule, weekday model.Weekday) []string {
	if market == nil {
		return nil
	}
	ranges := market[weekday]
	if len(ranges) == 0 {
		return nil
	}
	out := make([]string, len(ranges))
	for i, r := range ranges {
		out[i] = r.Start + "-" + r.End
	}
	return out
}
