package model

// Weekday identifies a day of the week. Values are the lowercase English
// identifiers used as JSON keys regardless of UI locale.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// Weekdays lists the seven weekdays in ISO order (Monday first).
var Weekdays = [7]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Assignment is the tri-state configuration status of a weekday.
type Assignment int

const (
	AssignmentUnknown Assignment = iota // never configured
	AssignmentOpen
	AssignmentClosed
)

// DaySchedule holds one weekday's opening configuration. Times are
// zero-padded "HH:MM" 24-hour strings. NotSet means the day was never
// configured, which is distinct from explicitly closed.
type DaySchedule struct {
	IsOpen         bool   `json:"isOpen"`
	NotSet         bool   `json:"notSet"`
	HasLunchBreak  bool   `json:"hasLunchBreak"`
	OpenTime       string `json:"openTime,omitempty"`
	CloseTime      string `json:"closeTime,omitempty"`
	MorningOpen    string `json:"morningOpen,omitempty"`
	MorningClose   string `json:"morningClose,omitempty"`
	AfternoonOpen  string `json:"afternoonOpen,omitempty"`
	AfternoonClose string `json:"afternoonClose,omitempty"`
}

// Assignment reports whether the day is confirmed open, explicitly closed
// or was never configured.
func (d DaySchedule) Assignment() Assignment {
	switch {
	case d.NotSet:
		return AssignmentUnknown
	case d.IsOpen:
		return AssignmentOpen
	default:
		return AssignmentClosed
	}
}

// SameHours reports field-wise equality of the opening-hour fields
// (lunch-break flag and all six time fields). Open/NotSet flags are not
// part of the comparison.
func (d DaySchedule) SameHours(o DaySchedule) bool {
	return d.HasLunchBreak == o.HasLunchBreak &&
		d.OpenTime == o.OpenTime &&
		d.CloseTime == o.CloseTime &&
		d.MorningOpen == o.MorningOpen &&
		d.MorningClose == o.MorningClose &&
		d.AfternoonOpen == o.AfternoonOpen &&
		d.AfternoonClose == o.AfternoonClose
}

// UnsetDay returns the configuration of a never-configured weekday.
func UnsetDay() DaySchedule {
	return DaySchedule{NotSet: true}
}

// WeekSchedule maps the seven weekdays to their opening configuration.
// All seven entries are always present; the zero value is not usable,
// construct with DefaultWeekSchedule.
type WeekSchedule struct {
	Monday    DaySchedule `json:"monday"`
	Tuesday   DaySchedule `json:"tuesday"`
	Wednesday DaySchedule `json:"wednesday"`
	Thursday  DaySchedule `json:"thursday"`
	Friday    DaySchedule `json:"friday"`
	Saturday  DaySchedule `json:"saturday"`
	Sunday    DaySchedule `json:"sunday"`
}

// DefaultWeekSchedule returns a week with all seven days not set.
func DefaultWeekSchedule() WeekSchedule {
	return WeekSchedule{
		Monday:    UnsetDay(),
		Tuesday:   UnsetDay(),
		Wednesday: UnsetDay(),
		Thursday:  UnsetDay(),
		Friday:    UnsetDay(),
		Saturday:  UnsetDay(),
		Sunday:    UnsetDay(),
	}
}

// Day returns the configuration of the given weekday.
func (w WeekSchedule) Day(d Weekday) DaySchedule {
	switch d {
	case Monday:
		return w.Monday
	case Tuesday:
		return w.Tuesday
	case Wednesday:
		return w.Wednesday
	case Thursday:
		return w.Thursday
	case Friday:
		return w.Friday
	case Saturday:
		return w.Saturday
	case Sunday:
		return w.Sunday
	}
	return UnsetDay()
}

// SetDay replaces the configuration of the given weekday.
func (w *WeekSchedule) SetDay(d Weekday, ds DaySchedule) {
	switch d {
	case Monday:
		w.Monday = ds
	case Tuesday:
		w.Tuesday = ds
	case Wednesday:
		w.Wednesday = ds
	case Thursday:
		w.Thursday = ds
	case Friday:
		w.Friday = ds
	case Saturday:
		w.Saturday = ds
	case Sunday:
		w.Sunday = ds
	}
}

// TimeRange is a single "HH:MM" start/end window.
type TimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// MarketDaySchedule maps weekdays to the market time windows held on that
// day. Days without market activity are simply absent. Ranges are kept in
// the order they were entered; no overlap or ordering is enforced.
type MarketDaySchedule map[Weekday][]TimeRange
