package portal

import (
	"time"

	"github.com/assignwatch/assignwatch/types"
)

// SubmissionStatus derives the submission status of an assignment from the
// facts the portal exposes. It satisfies icalutil.Classifier.
//
// A handed in assignment is late when the submission time lies after the due
// date. When either timestamp fails to parse the submission counts as on
// time, matching how the portal itself displays it.
func SubmissionStatus(a types.Assignment) types.SubmissionStatus {
	if a.Submitted {
		due, dueErr := time.Parse(time.RFC3339, a.DueDate)
		submittedAt, subErr := time.Parse(time.RFC3339, a.SubmittedAt)
		if dueErr == nil && subErr == nil && submittedAt.After(due) {
			return types.StatusSubmittedLate
		}
		return types.StatusSubmitted
	}
	if a.InProgress {
		return types.StatusInProgress
	}
	if a.Type == types.TypeQuiz {
		return types.StatusQuizNotSubmitted
	}
	return types.StatusNotSubmitted
}
