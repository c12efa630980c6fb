package cmd

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assignwatch/assignwatch/types"
)

func TestFeedServesCalendarDocument(t *testing.T) {
	t.Parallel()

	document := "BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"
	f := newFeed(func() ([]byte, error) {
		return []byte(document), nil
	})
	require.NoError(t, f.refresh())

	rec := httptest.NewRecorder()
	f.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assignments.ics", nil))

	assert.Equal(t, types.MIMEType, rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="assignments.ics"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, document, rec.Body.String())
}

func TestFeedKeepsPreviousDocumentWhenRefreshFails(t *testing.T) {
	t.Parallel()

	calls := 0
	f := newFeed(func() ([]byte, error) {
		calls++
		if calls > 1 {
			return nil, errors.New("portal unavailable")
		}
		return []byte("first"), nil
	})

	require.NoError(t, f.refresh())
	require.Error(t, f.refresh())

	rec := httptest.NewRecorder()
	f.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assignments.ics", nil))
	assert.Equal(t, "first", rec.Body.String())
}
