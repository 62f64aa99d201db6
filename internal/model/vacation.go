package model

import "time"

// PeriodInput says how a vacation period was entered: as a span of ISO
// week numbers or as a span of calendar dates.
type PeriodInput string

const (
	WeeksRange PeriodInput = "weeks"
	DateRange  PeriodInput = "dates"
)

// VacationPeriod is a closure period for the business. Non-recurring
// periods are anchored to a concrete year; recurring periods carry
// month/day (or week-number) bounds evaluated against every year.
type VacationPeriod struct {
	ID          string      `json:"id"`
	InputType   PeriodInput `json:"inputType"`
	IsRecurring bool        `json:"isRecurring"`
	StartDate   time.Time   `json:"startDate"`
	EndDate     time.Time   `json:"endDate"`
	StartWeek   int         `json:"startWeek,omitempty"`
	EndWeek     int         `json:"endWeek,omitempty"`
	Year        int         `json:"year,omitempty"`
}

// TimeSlot is the deduplicated editing view of identically configured
// weekdays. It is recomputed from the WeekSchedule for each editing
// session and never persisted.
type TimeSlot struct {
	ID             string    `json:"id"`
	HasLunchBreak  bool      `json:"hasLunchBreak"`
	OpenTime       string    `json:"openTime,omitempty"`
	CloseTime      string    `json:"closeTime,omitempty"`
	MorningOpen    string    `json:"morningOpen,omitempty"`
	MorningClose   string    `json:"morningClose,omitempty"`
	AfternoonOpen  string    `json:"afternoonOpen,omitempty"`
	AfternoonClose string    `json:"afternoonClose,omitempty"`
	AssignedDays   []Weekday `json:"assignedDays"`
}

// DaySchedule expands the slot into the per-day storage form.
func (s TimeSlot) DaySchedule() DaySchedule {
	return DaySchedule{
		IsOpen:         true,
		HasLunchBreak:  s.HasLunchBreak,
		OpenTime:       s.OpenTime,
		CloseTime:      s.CloseTime,
		MorningOpen:    s.MorningOpen,
		MorningClose:   s.MorningClose,
		AfternoonOpen:  s.AfternoonOpen,
		AfternoonClose: s.AfternoonClose,
	}
}

// SlotFromDay builds an unassigned slot carrying the day's hour fields.
func SlotFromDay(id string, d DaySchedule) TimeSlot {
	return TimeSlot{
		ID:             id,
		HasLunchBreak:  d.HasLunchBreak,
		OpenTime:       d.OpenTime,
		CloseTime:      d.CloseTime,
		MorningOpen:    d.MorningOpen,
		MorningClose:   d.MorningClose,
		AfternoonOpen:  d.AfternoonOpen,
		AfternoonClose: d.AfternoonClose,
	}
}

// Matches reports whether the slot's hour fields are structurally equal
// to the day's.
func (s TimeSlot) Matches(d DaySchedule) bool {
	return s.DaySchedule().SameHours(d)
}
