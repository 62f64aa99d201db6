// Package slots converts between the per-weekday storage schedule and
// the deduplicated time-slot view shown while editing. Days sharing the
// exact same opening hours are grouped into one editable slot.
package slots

import (
	"github.com/google/uuid"

	"horaires/internal/model"
)

// Grouped is the editing view of a week: one slot per distinct set of
// opening hours plus the list of explicitly closed days. Days configured
// in neither are not set. Each weekday belongs to at most one bucket.
type Grouped struct {
	Slots      []model.TimeSlot `json:"slots"`
	ClosedDays []model.Weekday  `json:"closedDays"`
}

// Group builds the slot view of a week. Explicitly closed days go to
// ClosedDays, unset days are dropped, and every open day is appended to
// the slot with structurally identical hours, creating one if needed.
func Group(week model.WeekSchedule) Grouped {
	var g Grouped
	for _, day := range model.Weekdays {
		d := week.Day(day)
		switch d.Assignment() {
		case model.AssignmentUnknown:
			continue
		case model.AssignmentClosed:
			g.ClosedDays = append(g.ClosedDays, day)
		case model.AssignmentOpen:
			idx := -1
			for i, s := range g.Slots {
				if s.Matches(d) {
					idx = i
					break
				}
			}
			if idx < 0 {
				g.Slots = append(g.Slots, model.SlotFromDay(uuid.NewString(), d))
				idx = len(g.Slots) - 1
			}
			g.Slots[idx].AssignedDays = append(g.Slots[idx].AssignedDays, day)
		}
	}
	return g
}

// Ungroup flattens a slot view back into a week. Closed days become
// explicitly closed, each slot's hours are applied to its assigned days,
// and any weekday touched by neither stays not set.
func Ungroup(timeSlots []model.TimeSlot, closedDays []model.Weekday) model.WeekSchedule {
	week := model.DefaultWeekSchedule()
	for _, day := range closedDays {
		week.SetDay(day, model.DaySchedule{IsOpen: false})
	}
	for _, s := range timeSlots {
		d := s.DaySchedule()
		for _, day := range s.AssignedDays {
			week.SetDay(day, d)
		}
	}
	return week
}

// Ungroup is the inverse view of g.
func (g Grouped) Ungroup() model.WeekSchedule {
	return Ungroup(g.Slots, g.ClosedDays)
}

// AssignDay moves a weekday into the slot with the given ID, removing it
// from whichever bucket held it before. Returns false if no such slot
// exists.
func (g *Grouped) AssignDay(day model.Weekday, slotID string) bool {
	idx := -1
	for i, s := range g.Slots {
		if s.ID == slotID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	for _, d := range g.Slots[idx].AssignedDays {
		if d == day {
			return true // already there
		}
	}
	g.remove(day)
	// remove may have dropped an emptied slot before idx
	for i, s := range g.Slots {
		if s.ID == slotID {
			idx = i
			break
		}
	}
	g.Slots[idx].AssignedDays = append(g.Slots[idx].AssignedDays, day)
	return true
}

// CloseDay marks a weekday as explicitly closed, removing it from its
// previous bucket.
func (g *Grouped) CloseDay(day model.Weekday) {
	g.remove(day)
	g.ClosedDays = append(g.ClosedDays, day)
}

// UnsetDay removes a weekday from every bucket, returning it to the
// never-configured state.
func (g *Grouped) UnsetDay(day model.Weekday) {
	g.remove(day)
}

// remove drops the day from all slots and from ClosedDays. Slots left
// with no assigned days are removed entirely.
func (g *Grouped) remove(day model.Weekday) {
	kept := g.Slots[:0]
	for _, s := range g.Slots {
		s.AssignedDays = withoutDay(s.AssignedDays, day)
		if len(s.AssignedDays) > 0 {
			kept = append(kept, s)
		}
	}
	g.Slots = kept
	g.ClosedDays = withoutDay(g.ClosedDays, day)
}

func withoutDay(days []model.Weekday, day model.Weekday) []model.Weekday {
	out := days[:0]
	for _, d := range days {
		if d != day {
			out = append(out, d)
		}
	}
	return out
}
