package icalutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assignwatch/assignwatch/types"
)

var testClasses = []types.Class{
	{ID: "7", Title: "Math 101", Description: "Algebra and friends"},
	{ID: "8", Title: "History", Description: ""},
}

func notSubmitted(types.Assignment) types.SubmissionStatus {
	return types.StatusNotSubmitted
}

func essayDraft() types.Assignment {
	return types.Assignment{
		ID:          "41",
		ClassID:     "7",
		Title:       "Essay draft",
		Description: "Two pages minimum.",
		DueDate:     "2024-03-01T00:00:00Z",
		Type:        types.TypeAssignment,
		GroupType:   types.GroupTypeIndividual,
	}
}

func TestAssignmentToICalEvent(t *testing.T) {
	t.Parallel()

	event := AssignmentToICalEvent(essayDraft(), testClasses, notSubmitted)

	assert.Equal(t, "assignment-41-class-7@assignwatch.app", event.UID)
	assert.Equal(t, "Essay draft (Math 101)", event.Summary)
	assert.Equal(t, "AssignWatch", event.Location)
	assert.Equal(t, "https://assignwatch.app/classes/7/assignments/41", event.URL)

	due := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, event.StartDate.Equal(due))
	assert.True(t, event.EndDate.Equal(due))

	want := "Class: Math 101 Algebra and friends\n" +
		"Type: Assignment\n" +
		"Work: Individual\n" +
		"Status: Not Submitted\n" +
		"\n" +
		"Two pages minimum."
	assert.Equal(t, want, event.Description)
}

func TestAssignmentToICalEventWithoutDetails(t *testing.T) {
	t.Parallel()

	a := essayDraft()
	a.Description = ""

	event := AssignmentToICalEvent(a, testClasses, notSubmitted)

	want := "Class: Math 101 Algebra and friends\n" +
		"Type: Assignment\n" +
		"Work: Individual\n" +
		"Status: Not Submitted"
	assert.Equal(t, want, event.Description)
}

func TestAssignmentToICalEventQuizAndGroupLines(t *testing.T) {
	t.Parallel()

	a := essayDraft()
	a.ClassID = "8"
	a.Type = types.TypeQuiz
	a.GroupType = types.GroupTypeGroup

	event := AssignmentToICalEvent(a, testClasses, notSubmitted)

	// The history class has no description, so its line carries the title only.
	want := "Class: History\n" +
		"Type: Quiz\n" +
		"Work: Group\n" +
		"Status: Not Submitted\n" +
		"\n" +
		"Two pages minimum."
	assert.Equal(t, want, event.Description)
	assert.Equal(t, "Essay draft (History)", event.Summary)
}

func TestAssignmentToICalEventMissingClass(t *testing.T) {
	t.Parallel()

	a := essayDraft()
	a.ClassID = "999"
	a.Description = ""

	event := AssignmentToICalEvent(a, testClasses, notSubmitted)

	assert.Equal(t, "Essay draft ()", event.Summary)
	assert.Equal(t, "assignment-41-class-999@assignwatch.app", event.UID)
	assert.Equal(t, "https://assignwatch.app/classes/999/assignments/41", event.URL)

	want := "Class: Unknown\n" +
		"Type: Assignment\n" +
		"Work: Individual\n" +
		"Status: Not Submitted"
	assert.Equal(t, want, event.Description)
}

func TestAssignmentToICalEventUnknownStatusPassesThrough(t *testing.T) {
	t.Parallel()

	classify := func(types.Assignment) types.SubmissionStatus {
		return types.SubmissionStatus("archived")
	}

	event := AssignmentToICalEvent(essayDraft(), testClasses, classify)
	assert.Contains(t, event.Description, "Status: archived")
}

func TestAssignmentToICalEventBadDueDate(t *testing.T) {
	t.Parallel()

	a := essayDraft()
	a.DueDate = "next friday"

	event := AssignmentToICalEvent(a, testClasses, notSubmitted)

	assert.True(t, event.StartDate.IsZero())
	assert.True(t, event.EndDate.IsZero())
	assert.Equal(t, "assignment-41-class-7@assignwatch.app", event.UID)
}

func TestAssignmentToICalEventUIDIsStableAcrossBuilds(t *testing.T) {
	t.Parallel()

	first := AssignmentToICalEvent(essayDraft(), testClasses, notSubmitted)
	second := AssignmentToICalEvent(essayDraft(), nil, notSubmitted)

	assert.Equal(t, first.UID, second.UID)
}

func TestAssignmentsToICalEventsKeepsOrderAndDuplicates(t *testing.T) {
	t.Parallel()

	second := essayDraft()
	second.ID = "42"
	second.Title = "Essay final"

	events := AssignmentsToICalEvents(
		[]types.Assignment{essayDraft(), second, essayDraft()},
		testClasses,
		notSubmitted,
	)

	require.Len(t, events, 3)
	assert.Equal(t, "Essay draft (Math 101)", events[0].Summary)
	assert.Equal(t, "Essay final (Math 101)", events[1].Summary)
	assert.Equal(t, events[0].UID, events[2].UID)
}

func TestAssignmentsToICalEventsEmptyInput(t *testing.T) {
	t.Parallel()

	events := AssignmentsToICalEvents(nil, testClasses, notSubmitted)
	assert.Empty(t, events)
}

func TestClassByID(t *testing.T) {
	t.Parallel()

	duplicated := []types.Class{
		{ID: "7", Title: "First"},
		{ID: "7", Title: "Second"},
	}

	assert.Equal(t, "First", ClassByID(duplicated, "7").Title)
	assert.Equal(t, types.Class{}, ClassByID(duplicated, "404"))
	assert.Equal(t, types.Class{}, ClassByID(nil, "7"))
}
