package icalutil

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/assignwatch/assignwatch/types"
)

const (
	// eventLocation is the fixed LOCATION value every assignment event carries.
	eventLocation = "AssignWatch"
	// assignmentURLFormat links an event back to its assignment page on the portal.
	assignmentURLFormat = "https://assignwatch.app/classes/%s/assignments/%s"
	// uidFormat keeps UIDs stable across rebuilds. Calendar clients use the UID
	// to update events in place instead of duplicating them on re-import.
	uidFormat = "assignment-%s-class-%s@" + types.UIDDomain
)

// Classifier derives the submission status of an assignment. The portal
// package provides the production implementation.
type Classifier func(types.Assignment) types.SubmissionStatus

// ClassByID returns the first class matching the given ID, or the zero value
// when no class matches. A missing class never fails the conversion, it only
// degrades the rendered class title and description to empty strings.
func ClassByID(classes []types.Class, id string) types.Class {
	for _, class := range classes {
		if class.ID == id {
			return class
		}
	}
	return types.Class{}
}

// AssignmentToICalEvent converts a single assignment into a calendar event.
// The due date is used as both start and end, modeling the deadline as a zero
// duration point in time.
func AssignmentToICalEvent(a types.Assignment, classes []types.Class, classify Classifier) *types.ICalEvent {
	class := ClassByID(classes, a.ClassID)

	due, err := time.Parse(time.RFC3339, a.DueDate)
	if err != nil {
		// The portal is trusted to hand out well formed dates. A malformed
		// one degrades to the zero instant instead of failing the batch.
		log.Warn().
			Str("assignment", a.ID).
			Str("dueDate", a.DueDate).
			Msg("could not parse due date")
	}

	return &types.ICalEvent{
		UID:         fmt.Sprintf(uidFormat, a.ID, a.ClassID),
		StartDate:   due,
		EndDate:     due,
		Summary:     fmt.Sprintf("%s (%s)", a.Title, class.Title),
		Description: describeAssignment(a, class, classify(a)),
		Location:    eventLocation,
		URL:         fmt.Sprintf(assignmentURLFormat, a.ClassID, a.ID),
	}
}

// AssignmentsToICalEvents converts each assignment independently, preserving
// input order. Ordering and deduplication are left to the caller.
func AssignmentsToICalEvents(assignments []types.Assignment, classes []types.Class, classify Classifier) []*types.ICalEvent {
	events := make([]*types.ICalEvent, 0, len(assignments))
	for _, a := range assignments {
		events = append(events, AssignmentToICalEvent(a, classes, classify))
	}
	return events
}

// describeAssignment composes the multi line event description. Lines that
// come out empty are dropped before joining. The assignment details follow
// after a blank line so they stand apart from the summary block.
func describeAssignment(a types.Assignment, class types.Class, status types.SubmissionStatus) string {
	classTitle := class.Title
	if classTitle == "" {
		classTitle = "Unknown"
	}

	typeLine := "Type: Assignment"
	if a.Type == types.TypeQuiz {
		typeLine = "Type: Quiz"
	}

	workLine := "Work: Individual"
	if a.GroupType == types.GroupTypeGroup {
		workLine = "Work: Group"
	}

	lines := []string{
		strings.TrimSpace("Class: " + classTitle + " " + class.Description),
		typeLine,
		workLine,
		"Status: " + types.StatusLabel(status),
	}

	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if line != "" {
			kept = append(kept, line)
		}
	}

	description := strings.Join(kept, "\n")
	if a.Description != "" {
		description += "\n\n" + a.Description
	}
	return description
}
