package validate

import (
	"strings"
	"testing"
	"time"

	"horaires/internal/model"
)

func TestDay(t *testing.T) {
	tests := []struct {
		name  string
		day   model.DaySchedule
		valid bool
	}{
		{"unset day is valid", model.UnsetDay(), true},
		{"closed day is valid", model.DaySchedule{IsOpen: false}, true},
		{
			"plain open day",
			model.DaySchedule{IsOpen: true, OpenTime: "09:00", CloseTime: "18:00"},
			true,
		},
		{
			"equal open and close times are invalid",
			model.DaySchedule{IsOpen: true, OpenTime: "09:00", CloseTime: "09:00"},
			false,
		},
		{
			"close before open",
			model.DaySchedule{IsOpen: true, OpenTime: "18:00", CloseTime: "09:00"},
			false,
		},
		{
			"missing close time",
			model.DaySchedule{IsOpen: true, OpenTime: "09:00"},
			false,
		},
		{
			"malformed time",
			model.DaySchedule{IsOpen: true, OpenTime: "9h00", CloseTime: "18:00"},
			false,
		},
		{
			"lunch break day",
			model.DaySchedule{IsOpen: true, HasLunchBreak: true,
				MorningOpen: "09:00", MorningClose: "12:00",
				AfternoonOpen: "14:00", AfternoonClose: "18:00"},
			true,
		},
		{
			"lunch break with missing afternoon close",
			model.DaySchedule{IsOpen: true, HasLunchBreak: true,
				MorningOpen: "09:00", MorningClose: "12:00", AfternoonOpen: "14:00"},
			false,
		},
		{
			"afternoon starts at morning close",
			model.DaySchedule{IsOpen: true, HasLunchBreak: true,
				MorningOpen: "09:00", MorningClose: "12:00",
				AfternoonOpen: "12:00", AfternoonClose: "18:00"},
			false,
		},
		{
			"morning close equals morning open",
			model.DaySchedule{IsOpen: true, HasLunchBreak: true,
				MorningOpen: "09:00", MorningClose: "09:00",
				AfternoonOpen: "14:00", AfternoonClose: "18:00"},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Day(tt.day)
			if r.Valid != tt.valid {
				t.Errorf("expected valid=%v, got %v (message %q)", tt.valid, r.Valid, r.Message)
			}
			if !r.Valid && r.Message == "" {
				t.Error("invalid result must carry a message")
			}
		})
	}
}

func TestWeek(t *testing.T) {
	t.Run("all unset is valid", func(t *testing.T) {
		if r := Week(model.DefaultWeekSchedule()); !r.Valid {
			t.Errorf("fresh schedule should be valid, got %q", r.Message)
		}
	})

	t.Run("partially assigned fails with completeness message", func(t *testing.T) {
		week := model.DefaultWeekSchedule()
		week.Monday = model.DaySchedule{IsOpen: false}
		week.Tuesday = model.DaySchedule{IsOpen: true, OpenTime: "09:00", CloseTime: "18:00"}
		week.Wednesday = week.Tuesday
		week.Thursday = week.Tuesday
		week.Friday = week.Tuesday
		week.Saturday = week.Tuesday
		// Sunday stays unset

		r := Week(week)
		if r.Valid {
			t.Fatal("expected invalid week")
		}
		if !strings.Contains(r.Message, "all seven days must be assigned") {
			t.Errorf("expected completeness message, got %q", r.Message)
		}
	})

	t.Run("bad day fails with day name", func(t *testing.T) {
		week := model.DefaultWeekSchedule()
		for _, d := range model.Weekdays {
			week.SetDay(d, model.DaySchedule{IsOpen: true, OpenTime: "09:00", CloseTime: "18:00"})
		}
		week.Wednesday = model.DaySchedule{IsOpen: true, OpenTime: "09:00", CloseTime: "09:00"}

		r := Week(week)
		if r.Valid {
			t.Fatal("expected invalid week")
		}
		if !strings.Contains(r.Message, "wednesday") {
			t.Errorf("expected failing day in message, got %q", r.Message)
		}
	})
}

func TestWeekViolations(t *testing.T) {
	week := model.DefaultWeekSchedule()
	week.Monday = model.DaySchedule{IsOpen: true, OpenTime: "09:00", CloseTime: "09:00"}
	week.Tuesday = model.DaySchedule{IsOpen: true, OpenTime: "18:00", CloseTime: "09:00"}
	// rest unset

	violations := WeekViolations(week)
	if len(violations) != 3 {
		t.Fatalf("expected 3 violations (completeness + 2 days), got %d: %v", len(violations), violations)
	}

	if got := WeekViolations(model.DefaultWeekSchedule()); len(got) != 0 {
		t.Errorf("fresh schedule should have no violations, got %v", got)
	}
}

func TestVacationPeriods(t *testing.T) {
	mkDate := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name    string
		periods []model.VacationPeriod
		valid   bool
		message string
	}{
		{"empty list", nil, true, ""},
		{
			"single valid date range",
			[]model.VacationPeriod{{
				InputType: model.DateRange, Year: 2024,
				StartDate: mkDate(2024, time.July, 1), EndDate: mkDate(2024, time.July, 15),
			}},
			true, "",
		},
		{
			"missing year on non-recurring period",
			[]model.VacationPeriod{{
				InputType: model.DateRange,
				StartDate: mkDate(2024, time.July, 1), EndDate: mkDate(2024, time.July, 15),
			}},
			false, "year is required",
		},
		{
			"reversed dates",
			[]model.VacationPeriod{{
				InputType: model.DateRange, Year: 2024,
				StartDate: mkDate(2024, time.July, 15), EndDate: mkDate(2024, time.July, 1),
			}},
			false, "start date must not be after end date",
		},
		{
			"week number out of range",
			[]model.VacationPeriod{{InputType: model.WeeksRange, Year: 2024, StartWeek: 0, EndWeek: 2}},
			false, "between 1 and 53",
		},
		{
			"overlapping periods reported by position",
			[]model.VacationPeriod{
				{InputType: model.DateRange, Year: 2024,
					StartDate: mkDate(2024, time.July, 1), EndDate: mkDate(2024, time.July, 15)},
				{InputType: model.DateRange, Year: 2024,
					StartDate: mkDate(2024, time.August, 1), EndDate: mkDate(2024, time.August, 5)},
				{InputType: model.DateRange, Year: 2024,
					StartDate: mkDate(2024, time.July, 10), EndDate: mkDate(2024, time.July, 20)},
			},
			false, "periods 1 and 3 overlap",
		},
		{
			"recurring and non-recurring never compared",
			[]model.VacationPeriod{
				{InputType: model.DateRange, Year: 2024,
					StartDate: mkDate(2024, time.July, 1), EndDate: mkDate(2024, time.July, 15)},
				{InputType: model.DateRange, IsRecurring: true,
					StartDate: mkDate(2024, time.July, 1), EndDate: mkDate(2024, time.July, 15)},
			},
			true, "",
		},
		{
			"recurring week range may wrap",
			[]model.VacationPeriod{{InputType: model.WeeksRange, IsRecurring: true, StartWeek: 51, EndWeek: 2}},
			true, "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := VacationPeriods(tt.periods)
			if r.Valid != tt.valid {
				t.Fatalf("expected valid=%v, got %v (message %q)", tt.valid, r.Valid, r.Message)
			}
			if tt.message != "" && !strings.Contains(r.Message, tt.message) {
				t.Errorf("expected message containing %q, got %q", tt.message, r.Message)
			}
		})
	}
}
