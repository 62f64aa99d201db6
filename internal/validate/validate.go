// Package validate holds the consistency checks run before a schedule or
// a set of vacation periods is saved. Checks return a structured Result
// instead of an error so the caller can surface the message as-is.
package validate

import (
	"fmt"
	"strconv"
	"strings"

	"horaires/internal/model"
	"horaires/internal/period"
)

// Result is the outcome of a validation check. Message is set only when
// Valid is false.
type Result struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

func ok() Result {
	return Result{Valid: true}
}

func fail(format string, args ...any) Result {
	return Result{Valid: false, Message: fmt.Sprintf(format, args...)}
}

// Day checks one weekday's configuration. Unset and closed days are
// always valid. Open days need their time fields present and strictly
// ordered at minute resolution; equal times are invalid.
func Day(d model.DaySchedule) Result {
	if d.NotSet || !d.IsOpen {
		return ok()
	}

	if d.HasLunchBreak {
		for _, t := range []struct {
			name, value string
		}{
			{"morningOpen", d.MorningOpen},
			{"morningClose", d.MorningClose},
			{"afternoonOpen", d.AfternoonOpen},
			{"afternoonClose", d.AfternoonClose},
		} {
			if t.value == "" {
				return fail("missing %s on a day with a lunch break", t.name)
			}
		}
		mo, err := minutes(d.MorningOpen)
		if err != nil {
			return fail("invalid morningOpen: %v", err)
		}
		mc, err := minutes(d.MorningClose)
		if err != nil {
			return fail("invalid morningClose: %v", err)
		}
		ao, err := minutes(d.AfternoonOpen)
		if err != nil {
			return fail("invalid afternoonOpen: %v", err)
		}
		ac, err := minutes(d.AfternoonClose)
		if err != nil {
			return fail("invalid afternoonClose: %v", err)
		}
		if mc <= mo {
			return fail("morning closing time must be after morning opening time")
		}
		if ao <= mc {
			return fail("afternoon opening time must be after morning closing time")
		}
		if ac <= ao {
			return fail("afternoon closing time must be after afternoon opening time")
		}
		if ac <= mo {
			return fail("afternoon closing time must be after morning opening time")
		}
		return ok()
	}

	if d.OpenTime == "" || d.CloseTime == "" {
		return fail("opening and closing times are required on an open day")
	}
	open, err := minutes(d.OpenTime)
	if err != nil {
		return fail("invalid openTime: %v", err)
	}
	closeAt, err := minutes(d.CloseTime)
	if err != nil {
		return fail("invalid closeTime: %v", err)
	}
	if closeAt <= open {
		return fail("closing time must be after opening time")
	}
	return ok()
}

// Week checks a whole week. A fully unconfigured week is valid (fresh
// state), but once any day is assigned all seven must be. Per-day checks
// run Monday first and the first failure wins.
func Week(w model.WeekSchedule) Result {
	assigned, unset := 0, 0
	for _, day := range model.Weekdays {
		if w.Day(day).NotSet {
			unset++
		} else {
			assigned++
		}
	}
	if assigned > 0 && unset > 0 {
		return fail("incomplete schedule: all seven days must be assigned")
	}
	for _, day := range model.Weekdays {
		if r := Day(w.Day(day)); !r.Valid {
			return fail("%s: %s", day, r.Message)
		}
	}
	return ok()
}

// WeekViolations returns every violation in the week instead of stopping
// at the first one. Meant for batch imports and tests; interactive saves
// use Week.
func WeekViolations(w model.WeekSchedule) []string {
	var violations []string
	assigned, unset := 0, 0
	for _, day := range model.Weekdays {
		if w.Day(day).NotSet {
			unset++
		} else {
			assigned++
		}
	}
	if assigned > 0 && unset > 0 {
		violations = append(violations, "incomplete schedule: all seven days must be assigned")
	}
	for _, day := range model.Weekdays {
		if r := Day(w.Day(day)); !r.Valid {
			violations = append(violations, fmt.Sprintf("%s: %s", day, r.Message))
		}
	}
	return violations
}

// VacationPeriods checks each period's fields and then looks for overlaps
// between periods sharing the same recurrence kind. The first violating
// pair is reported by 1-based position.
func VacationPeriods(periods []model.VacationPeriod) Result {
	for i, p := range periods {
		if r := vacationPeriod(p); !r.Valid {
			return fail("period %d: %s", i+1, r.Message)
		}
	}
	for i := 0; i < len(periods); i++ {
		for j := i + 1; j < len(periods); j++ {
			if periods[i].IsRecurring != periods[j].IsRecurring {
				continue
			}
			if period.Overlap(periods[i], periods[j]) {
				return fail("periods %d and %d overlap", i+1, j+1)
			}
		}
	}
	return ok()
}

func vacationPeriod(p model.VacationPeriod) Result {
	switch p.InputType {
	case model.WeeksRange:
		if p.StartWeek < 1 || p.StartWeek > 53 || p.EndWeek < 1 || p.EndWeek > 53 {
			return fail("week numbers must be between 1 and 53")
		}
		if !p.IsRecurring && p.StartWeek > p.EndWeek {
			return fail("start week must not be after end week")
		}
	case model.DateRange:
		if p.StartDate.IsZero() || p.EndDate.IsZero() {
			return fail("start and end dates are required")
		}
		if !p.IsRecurring && p.StartDate.After(p.EndDate) {
			return fail("start date must not be after end date")
		}
	default:
		return fail("unknown period input type %q", p.InputType)
	}
	if !p.IsRecurring && p.Year == 0 {
		return fail("year is required on a non-recurring period")
	}
	return ok()
}

// minutes parses a zero-padded "HH:MM" string into minutes since
// midnight.
func minutes(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("expected HH:MM, got %q", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	return hour*60 + minute, nil
}
