package types

// SubmissionStatus is the submission state of an assignment, as reported by a
// status classifier. The calendar layers treat it as opaque text so that new
// portal statuses flow through without a code change.
type SubmissionStatus string

const (
	StatusSubmitted        SubmissionStatus = "submitted"
	StatusSubmittedLate    SubmissionStatus = "submitted_late"
	StatusNotSubmitted     SubmissionStatus = "not_submitted"
	StatusQuizNotSubmitted SubmissionStatus = "quiz_not_submitted"
	StatusInProgress       SubmissionStatus = "in_progress"
)

// StatusLabel returns the human readable label of a submission status. A
// status without a known label is passed through as its raw string value.
func StatusLabel(s SubmissionStatus) string {
	switch s {
	case StatusSubmitted:
		return "Submitted"
	case StatusSubmittedLate:
		return "Submitted Late"
	case StatusNotSubmitted:
		return "Not Submitted"
	case StatusQuizNotSubmitted:
		return "Quiz Not Submitted"
	case StatusInProgress:
		return "In Progress"
	}
	return string(s)
}
