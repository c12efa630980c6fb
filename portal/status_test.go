package portal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/assignwatch/assignwatch/types"
)

func TestSubmissionStatus(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		in   types.Assignment
		want types.SubmissionStatus
	}{
		{
			name: "not submitted assignment",
			in:   types.Assignment{Type: types.TypeAssignment},
			want: types.StatusNotSubmitted,
		},
		{
			name: "not submitted quiz",
			in:   types.Assignment{Type: types.TypeQuiz},
			want: types.StatusQuizNotSubmitted,
		},
		{
			name: "in progress",
			in:   types.Assignment{Type: types.TypeAssignment, InProgress: true},
			want: types.StatusInProgress,
		},
		{
			name: "submitted on time",
			in: types.Assignment{
				Submitted:   true,
				DueDate:     "2024-03-01T00:00:00Z",
				SubmittedAt: "2024-02-29T18:00:00Z",
			},
			want: types.StatusSubmitted,
		},
		{
			name: "submitted exactly at the due date counts as on time",
			in: types.Assignment{
				Submitted:   true,
				DueDate:     "2024-03-01T00:00:00Z",
				SubmittedAt: "2024-03-01T00:00:00Z",
			},
			want: types.StatusSubmitted,
		},
		{
			name: "submitted late",
			in: types.Assignment{
				Submitted:   true,
				DueDate:     "2024-03-01T00:00:00Z",
				SubmittedAt: "2024-03-01T00:00:01Z",
			},
			want: types.StatusSubmittedLate,
		},
		{
			name: "submission wins over in progress",
			in: types.Assignment{
				Submitted:   true,
				InProgress:  true,
				DueDate:     "2024-03-01T00:00:00Z",
				SubmittedAt: "2024-02-29T18:00:00Z",
			},
			want: types.StatusSubmitted,
		},
		{
			name: "unparseable submission time counts as on time",
			in: types.Assignment{
				Submitted:   true,
				DueDate:     "2024-03-01T00:00:00Z",
				SubmittedAt: "yesterday",
			},
			want: types.StatusSubmitted,
		},
		{
			name: "submitted quiz is a plain submission",
			in: types.Assignment{
				Type:        types.TypeQuiz,
				Submitted:   true,
				DueDate:     "2024-03-01T00:00:00Z",
				SubmittedAt: "2024-02-29T18:00:00Z",
			},
			want: types.StatusSubmitted,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, SubmissionStatus(tc.in))
		})
	}
}
