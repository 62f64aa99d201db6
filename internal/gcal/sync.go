// Package gcal mirrors a client's closure periods into a Google
// calendar as all-day events, so staff see planned closures alongside
// their own agenda.
package gcal

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"horaires/internal/model"
	"horaires/internal/period"
)

// Service pushes vacation periods to one calendar.
type Service struct {
	calendar   *calendar.Service
	calendarID string
}

// NewService authenticates with a service-account credentials file.
func NewService(ctx context.Context, credentialsFile, calendarID string) (*Service, error) {
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}
	conf, err := google.JWTConfigFromJSON(data, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("parse credentials: %w", err)
	}
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("create calendar service: %w", err)
	}
	return &Service{calendar: svc, calendarID: calendarID}, nil
}

// SyncVacations inserts one all-day event per period and returns how
// many were created. Recurring periods become yearly recurring events
// anchored to the current year.
func (s *Service) SyncVacations(ctx context.Context, clientName string, periods []model.VacationPeriod) (int, error) {
	synced := 0
	for _, p := range periods {
		event := eventFor(clientName, p)
		if _, err := s.calendar.Events.Insert(s.calendarID, event).Context(ctx).Do(); err != nil {
			return synced, fmt.Errorf("insert event for period %s: %w", p.ID, err)
		}
		synced++
	}
	return synced, nil
}

func eventFor(clientName string, p model.VacationPeriod) *calendar.Event {
	start, end := periodDates(p)

	summary := fmt.Sprintf("Fermeture: %s", clientName)
	if p.IsRecurring {
		summary += " (annuel)"
	}

	event := &calendar.Event{
		Summary: summary,
		Start:   &calendar.EventDateTime{Date: start.Format("2006-01-02")},
		// End date is exclusive for all-day events.
		End: &calendar.EventDateTime{Date: end.AddDate(0, 0, 1).Format("2006-01-02")},
	}
	if p.IsRecurring {
		event.Recurrence = []string{"RRULE:FREQ=YEARLY"}
	}
	return event
}

// periodDates anchors a period to concrete dates. Recurring periods are
// rebased to the current year; the yearly recurrence rule carries them
// forward.
func periodDates(p model.VacationPeriod) (time.Time, time.Time) {
	if !p.IsRecurring {
		if p.InputType == model.WeeksRange {
			return period.WeekRangeToDateRange(p.StartWeek, p.EndWeek, p.Year)
		}
		return p.StartDate, p.EndDate
	}

	year := time.Now().Year()
	if p.InputType == model.WeeksRange {
		endWeek := p.EndWeek
		endYear := year
		if p.StartWeek > p.EndWeek {
			endYear++ // wraps past New Year
		}
		start := period.StartOfISOWeek(p.StartWeek, year)
		end := period.EndOfISOWeek(period.StartOfISOWeek(endWeek, endYear))
		return start, end
	}

	start := time.Date(year, p.StartDate.Month(), p.StartDate.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(year, p.EndDate.Month(), p.EndDate.Day(), 0, 0, 0, 0, time.UTC)
	if end.Before(start) {
		end = end.AddDate(1, 0, 0)
	}
	return start, end
}
