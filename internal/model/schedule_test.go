package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultWeekSchedule(t *testing.T) {
	week := DefaultWeekSchedule()
	for _, d := range Weekdays {
		assert.True(t, week.Day(d).NotSet, "day %s should start unset", d)
		assert.Equal(t, AssignmentUnknown, week.Day(d).Assignment())
	}
}

func TestDaySchedule_Assignment(t *testing.T) {
	assert.Equal(t, AssignmentUnknown, UnsetDay().Assignment())
	assert.Equal(t, AssignmentClosed, DaySchedule{IsOpen: false}.Assignment())
	assert.Equal(t, AssignmentOpen, DaySchedule{IsOpen: true}.Assignment())
}

func TestDaySchedule_SameHours(t *testing.T) {
	a := DaySchedule{IsOpen: true, OpenTime: "09:00", CloseTime: "18:00"}
	b := DaySchedule{IsOpen: false, OpenTime: "09:00", CloseTime: "18:00"}
	// Open/NotSet flags are not part of the hour comparison.
	assert.True(t, a.SameHours(b))

	c := DaySchedule{IsOpen: true, OpenTime: "09:00", CloseTime: "18:30"}
	assert.False(t, a.SameHours(c))

	d := DaySchedule{IsOpen: true, HasLunchBreak: true, OpenTime: "09:00", CloseTime: "18:00"}
	assert.False(t, a.SameHours(d))
}

func TestWeekSchedule_SetDay(t *testing.T) {
	week := DefaultWeekSchedule()
	open := DaySchedule{IsOpen: true, OpenTime: "08:00", CloseTime: "19:00"}
	week.SetDay(Thursday, open)
	assert.Equal(t, open, week.Day(Thursday))
	assert.True(t, week.Day(Friday).NotSet)
}

func TestWeekSchedule_JSONKeys(t *testing.T) {
	week := DefaultWeekSchedule()
	week.Monday = DaySchedule{IsOpen: true, OpenTime: "09:00", CloseTime: "18:00"}

	data, err := json.Marshal(week)
	assert.NoError(t, err)

	var raw map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(data, &raw))
	assert.Len(t, raw, 7)
	for _, d := range Weekdays {
		assert.Contains(t, raw, string(d))
	}

	var back WeekSchedule
	assert.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, week, back)
}

func TestTimeSlot_RoundTripFields(t *testing.T) {
	day := DaySchedule{
		IsOpen:         true,
		HasLunchBreak:  true,
		MorningOpen:    "09:00",
		MorningClose:   "12:00",
		AfternoonOpen:  "14:00",
		AfternoonClose: "18:00",
	}
	slot := SlotFromDay("slot-1", day)
	assert.True(t, slot.Matches(day))
	assert.Equal(t, day, slot.DaySchedule())
}
