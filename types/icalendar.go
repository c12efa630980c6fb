package types

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/assignwatch/assignwatch/util"
)

const (
	// MIMEType is the content type calendar documents are served with.
	MIMEType = "text/calendar;charset=utf-8"
	// DefaultFilename is the file name calendar downloads are offered under.
	DefaultFilename = "assignments.ics"
	// UIDDomain is the domain part of every event UID this module emits.
	UIDDomain = "assignwatch.app"
)

// ICalendar holds the events of a single calendar document. Serialize renders
// the events in the order they appear here, without sorting or deduplication.
type ICalendar struct {
	Events []*ICalEvent

	// Now supplies the DTSTAMP instant. When nil, time.Now is used. Tests
	// inject a fixed clock here to get byte identical output.
	Now func() time.Time
}

// ICalEvent is one VEVENT of a calendar document. All fields are plain text;
// reserved characters are escaped at serialization time, except for URL which
// is emitted verbatim.
type ICalEvent struct {
	UID         string
	StartDate   time.Time
	EndDate     time.Time
	Summary     string
	Description string
	Location    string
	URL         string
}

// Serialize returns the calendar as an RFC 5545 document. Every line is
// terminated with CRLF, as required by the format. A calendar without events
// serializes to a valid document with an empty body.
func (c *ICalendar) Serialize() string {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	stamp := util.TimeToICalTimestamp(now())

	var b strings.Builder
	writeLine(&b, "BEGIN:VCALENDAR")
	writeLine(&b, "VERSION:2.0")
	writeLine(&b, "PRODID:-//AssignWatch//Assignment Calendar//EN")
	writeLine(&b, "CALSCALE:GREGORIAN")
	writeLine(&b, "METHOD:PUBLISH")
	writeLine(&b, "X-WR-CALNAME:AssignWatch - Assignments")
	writeLine(&b, "X-WR-TIMEZONE:UTC")
	for _, event := range c.Events {
		event.write(&b, stamp)
	}
	writeLine(&b, "END:VCALENDAR")
	return b.String()
}

// Bytes returns the serialized calendar as a byte slice, ready to be written
// to a file or an HTTP response.
func (c *ICalendar) Bytes() []byte {
	return []byte(c.Serialize())
}

// WriteFile writes the serialized calendar to the given path, replacing any
// previous content.
func (c *ICalendar) WriteFile(path string) error {
	if err := os.WriteFile(path, c.Bytes(), 0644); err != nil {
		return fmt.Errorf("could not write calendar to %s: %w", path, err)
	}
	return nil
}

// write renders the event as a VEVENT block. An event without a UID gets one
// derived from its start date, so every event carries a usable client side
// identity even when the producer left it out.
func (e *ICalEvent) write(b *strings.Builder, stamp string) {
	uid := e.UID
	if uid == "" {
		uid = fmt.Sprintf("%d@%s", e.StartDate.Unix(), UIDDomain)
	}

	writeLine(b, "BEGIN:VEVENT")
	writeLine(b, "UID:"+uid)
	writeLine(b, "DTSTAMP:"+stamp)
	writeLine(b, "DTSTART:"+util.TimeToICalTimestamp(e.StartDate))
	writeLine(b, "DTEND:"+util.TimeToICalTimestamp(e.EndDate))
	writeLine(b, "SUMMARY:"+util.EscapeText(e.Summary))
	writeLine(b, "DESCRIPTION:"+util.EscapeText(e.Description))
	if e.Location != "" {
		writeLine(b, "LOCATION:"+util.EscapeText(e.Location))
	}
	if e.URL != "" {
		writeLine(b, "URL:"+e.URL)
	}
	e.writeAlarm(b, "-PT24H", "24 hours")
	e.writeAlarm(b, "-PT1H", "1 hour")
	writeLine(b, "END:VEVENT")
}

// writeAlarm renders one of the two fixed display reminders of an event.
func (e *ICalEvent) writeAlarm(b *strings.Builder, trigger, lead string) {
	writeLine(b, "BEGIN:VALARM")
	writeLine(b, "TRIGGER:"+trigger)
	writeLine(b, "ACTION:DISPLAY")
	writeLine(b, "DESCRIPTION:"+util.EscapeText(e.Summary+" is due in "+lead))
	writeLine(b, "END:VALARM")
}

func writeLine(b *strings.Builder, line string) {
	b.WriteString(line)
	b.WriteString("\r\n")
}
