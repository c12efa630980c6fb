package types

// AssignmentType discriminates regular assignments from quizzes.
type AssignmentType string

const (
	TypeAssignment AssignmentType = "assignment"
	TypeQuiz       AssignmentType = "quiz"
)

// GroupType describes whether an assignment is handed in individually or as a group.
type GroupType string

const (
	GroupTypeIndividual GroupType = "individual"
	GroupTypeGroup      GroupType = "group"
)

// Assignment represents a single assignment as the AssignWatch portal presents it.
// Dates are kept as the raw RFC 3339 strings the portal hands out and are only
// parsed where a real time.Time is needed.
type Assignment struct {
	ID          string         `json:"id"`          // Portal identifier of the assignment
	ClassID     string         `json:"classId"`     // Identifier of the class the assignment belongs to
	Title       string         `json:"title"`       // Title of the assignment (e.g. "Essay draft")
	Description string         `json:"description"` // Optional assignment details
	DueDate     string         `json:"dueDate"`     // Due date (e.g. "2024-03-01T00:00:00Z")
	Type        AssignmentType `json:"type"`        // Regular assignment or quiz
	GroupType   GroupType      `json:"groupType"`   // Individual or group hand-in

	Submitted   bool   `json:"submitted"`   // Whether a submission has been handed in
	SubmittedAt string `json:"submittedAt"` // Submission time, empty when nothing was handed in
	InProgress  bool   `json:"inProgress"`  // Whether a submission was started but not handed in
}

// Class represents a class record from the AssignWatch portal.
type Class struct {
	ID          string `json:"id"`          // Portal identifier of the class
	Title       string `json:"title"`       // Title of the class (e.g. "Math 101")
	Description string `json:"description"` // Optional class description
}
