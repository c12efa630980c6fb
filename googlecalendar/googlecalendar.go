package googlecalendar

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/assignwatch/assignwatch/util"
	"github.com/assignwatch/assignwatch/util/googlecalendarutil"
)

// GoogleCalendar wraps one Google Calendar that assignment events are synced
// into. Only events carrying the assignment ID prefix are ever touched, other
// events in the same calendar are left alone.
type GoogleCalendar struct {
	Service *calendar.Service
	ID      string
	Logger  zerolog.Logger
}

// New creates a calendar wrapper from an authorized HTTP client.
func New(client *http.Client, calendarID string) (*GoogleCalendar, error) {
	service, err := calendar.NewService(context.Background(), option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("could not create calendar service: %w", err)
	}

	return &GoogleCalendar{
		Service: service,
		ID:      calendarID,
		Logger:  log.With().Str("calendar", calendarID).Logger(),
	}, nil
}

// GetEvents returns all assignment events in the calendar, keyed by event ID.
// Deleted events are included so a later sync can revive an event that shares
// an ID with a previously removed one.
func (c *GoogleCalendar) GetEvents() (map[string]*calendar.Event, error) {
	events := make(map[string]*calendar.Event)
	pageToken := ""

	for {
		req := c.Service.Events.List(c.ID).ShowDeleted(true)
		if pageToken != "" {
			req.PageToken(pageToken)
		}
		r, err := req.Do()
		if err != nil {
			return nil, fmt.Errorf("could not list calendar events: %w", err)
		}

		for _, item := range r.Items {
			if googlecalendarutil.IsAssignmentEventID(item.Id) {
				events[item.Id] = item
			}
		}

		pageToken = r.NextPageToken
		if pageToken == "" {
			break
		}
	}

	return events, nil
}

// UpdateCalendar reconciles the calendar with the desired assignment events.
// Desired events missing from the calendar are inserted, calendar events that
// are no longer desired are deleted, and events whose content drifted are
// updated in place. Both maps are keyed by Google Calendar event ID.
func (c *GoogleCalendar) UpdateCalendar(desired, existing map[string]*calendar.Event) error {
	startTime := time.Now()
	var inserted, updated, deleted int

	extras, missing := util.CompareMaps(desired, existing)

	for id, event := range missing {
		if _, err := c.Service.Events.Insert(c.ID, event).Do(); err != nil {
			return fmt.Errorf("could not insert event %s: %w", id, err)
		}
		inserted++
	}

	for id, event := range extras {
		if event.Status == "cancelled" {
			continue
		}
		if err := c.Service.Events.Delete(c.ID, id).Do(); err != nil {
			return fmt.Errorf("could not delete event %s: %w", id, err)
		}
		deleted++
	}

	for id, want := range desired {
		got, ok := existing[id]
		if !ok {
			continue
		}
		if !googlecalendarutil.EventChanged(want, got) {
			continue
		}
		if _, err := c.Service.Events.Update(c.ID, id, want).Do(); err != nil {
			return fmt.Errorf("could not update event %s: %w", id, err)
		}
		updated++
	}

	c.Logger.Info().
		Int("inserted", inserted).
		Int("updated", updated).
		Int("deleted", deleted).
		Dur("took", time.Since(startTime)).
		Msg("calendar reconciled")
	return nil
}

// Clear deletes every assignment event from the calendar.
func (c *GoogleCalendar) Clear() error {
	startTime := time.Now()

	events, err := c.GetEvents()
	if err != nil {
		return err
	}

	deleted := 0
	for id, event := range events {
		if event.Status == "cancelled" {
			continue
		}
		if err := c.Service.Events.Delete(c.ID, id).Do(); err != nil {
			return fmt.Errorf("could not delete event %s: %w", id, err)
		}
		deleted++
	}

	c.Logger.Info().
		Int("deleted", deleted).
		Dur("took", time.Since(startTime)).
		Msg("calendar cleared")
	return nil
}
