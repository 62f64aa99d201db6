// Package period implements the calendar arithmetic behind vacation
// periods: ISO-8601 week conversions, normalization of recurring periods
// and the overlap test used by the validators.
package period

import (
	"time"

	"horaires/internal/model"
)

// RecurringYear is the fixed year recurring bounds are re-based to so two
// recurring periods are directly comparable. 2000 is a leap year, so
// February 29 bounds survive the re-basing.
const RecurringYear = 2000

// ISOWeek returns the ISO-8601 week number (1..53) of the date. Weeks
// start on Monday; week 1 is the week containing the year's first
// Thursday.
func ISOWeek(date time.Time) int {
	_, week := date.ISOWeek()
	return week
}

// StartOfISOWeek returns the Monday starting the given ISO week of year.
func StartOfISOWeek(week, year int) time.Time {
	// January 4 is always inside ISO week 1.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	offset := (int(jan4.Weekday()) + 6) % 7 // days since Monday
	monday := jan4.AddDate(0, 0, -offset)
	return monday.AddDate(0, 0, (week-1)*7)
}

// EndOfISOWeek returns the Sunday ending the week that starts at start.
func EndOfISOWeek(start time.Time) time.Time {
	return start.AddDate(0, 0, 6)
}

// WeekRangeToDateRange converts a span of ISO week numbers into the
// concrete [start, end] date span it covers in the given year.
func WeekRangeToDateRange(startWeek, endWeek, year int) (time.Time, time.Time) {
	start := StartOfISOWeek(startWeek, year)
	end := EndOfISOWeek(StartOfISOWeek(endWeek, year))
	return start, end
}

// Bounds normalizes a period to a [start, end] date pair. Recurring
// periods are re-based to RecurringYear so that two recurring periods
// compare on month and day only.
func Bounds(p model.VacationPeriod) (time.Time, time.Time) {
	if p.InputType == model.WeeksRange {
		year := p.Year
		if p.IsRecurring {
			year = RecurringYear
		}
		return WeekRangeToDateRange(p.StartWeek, p.EndWeek, year)
	}
	start := dateOnly(p.StartDate)
	end := dateOnly(p.EndDate)
	if p.IsRecurring {
		start = rebase(start)
		end = rebase(end)
	}
	return start, end
}

// Overlap reports whether two periods cover at least one common day. The
// test is only meaningful between periods with the same IsRecurring
// value; both are normalized via Bounds first. Symmetric.
func Overlap(p1, p2 model.VacationPeriod) bool {
	s1, e1 := Bounds(p1)
	s2, e2 := Bounds(p2)
	return !s1.After(e2) && !s2.After(e1)
}

// Contains reports whether the date falls inside the period. Recurring
// periods wrap across the year boundary: a recurring span whose start
// bound is after its end bound (week 51..week 2, or Dec 20..Jan 5)
// matches dates on either side of New Year.
func Contains(p model.VacationPeriod, date time.Time) bool {
	d := dateOnly(date)

	if p.InputType == model.WeeksRange {
		if p.IsRecurring {
			w := ISOWeek(d)
			if p.StartWeek <= p.EndWeek {
				return w >= p.StartWeek && w <= p.EndWeek
			}
			return w >= p.StartWeek || w <= p.EndWeek
		}
		start, end := WeekRangeToDateRange(p.StartWeek, p.EndWeek, p.Year)
		return !d.Before(start) && !d.After(end)
	}

	if p.IsRecurring {
		md := monthDay(d)
		start := monthDay(p.StartDate)
		end := monthDay(p.EndDate)
		if start <= end {
			return md >= start && md <= end
		}
		return md >= start || md <= end
	}

	start := dateOnly(p.StartDate)
	end := dateOnly(p.EndDate)
	return !d.Before(start) && !d.After(end)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func rebase(t time.Time) time.Time {
	return time.Date(RecurringYear, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// monthDay encodes month and day as a single comparable int (MMDD).
func monthDay(t time.Time) int {
	return int(t.Month())*100 + t.Day()
}
