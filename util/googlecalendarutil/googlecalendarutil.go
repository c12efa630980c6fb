package googlecalendarutil

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"

	"github.com/assignwatch/assignwatch/types"
)

// eventIDPrefix marks the Google Calendar events this module owns. Sync and
// clear never touch events without it. Google limits event IDs to lowercase
// base32hex characters, which the numeric portal IDs satisfy.
const eventIDPrefix = "aw"

// EventID returns the Google Calendar event ID of an assignment. The ID is
// deterministic so repeated syncs address the same calendar event.
func EventID(a types.Assignment) string {
	return fmt.Sprintf("%s%sc%s", eventIDPrefix, a.ID, a.ClassID)
}

// IsAssignmentEventID reports whether a Google Calendar event ID belongs to
// this module.
func IsAssignmentEventID(id string) bool {
	return len(id) > len(eventIDPrefix) && id[:len(eventIDPrefix)] == eventIDPrefix
}

// AssignmentToGoogleEvent converts a mapped calendar event into its Google
// Calendar representation. The two reminder overrides match the 24 hour and
// 1 hour alarms of the iCalendar output.
func AssignmentToGoogleEvent(a types.Assignment, e *types.ICalEvent) *calendar.Event {
	return &calendar.Event{
		Id:          EventID(a),
		Summary:     e.Summary,
		Description: e.Description,
		Location:    e.Location,
		Source: &calendar.EventSource{
			Title: "AssignWatch",
			Url:   e.URL,
		},
		Start: &calendar.EventDateTime{
			DateTime: e.StartDate.UTC().Format(time.RFC3339),
			TimeZone: "UTC",
		},
		End: &calendar.EventDateTime{
			DateTime: e.EndDate.UTC().Format(time.RFC3339),
			TimeZone: "UTC",
		},
		Reminders: &calendar.EventReminders{
			UseDefault: false,
			Overrides: []*calendar.EventReminder{
				{Method: "popup", Minutes: 24 * 60},
				{Method: "popup", Minutes: 60},
			},
			ForceSendFields: []string{"UseDefault"},
		},
	}
}

// EventChanged reports whether the existing Google Calendar event differs
// from the wanted one in any field the sync owns. Cancelled events always
// count as changed so a re-sync revives them.
func EventChanged(want, got *calendar.Event) bool {
	if got.Status == "cancelled" {
		return true
	}
	if want.Summary != got.Summary || want.Description != got.Description || want.Location != got.Location {
		return true
	}
	return !sameEventTime(want.Start, got.Start) || !sameEventTime(want.End, got.End)
}

// sameEventTime compares two event times by instant. The API renders the
// same instant with varying UTC offsets, so string equality is not enough.
func sameEventTime(want, got *calendar.EventDateTime) bool {
	if want == nil || got == nil {
		return want == got
	}
	wantTime, wantErr := time.Parse(time.RFC3339, want.DateTime)
	gotTime, gotErr := time.Parse(time.RFC3339, got.DateTime)
	if wantErr != nil || gotErr != nil {
		return want.DateTime == got.DateTime
	}
	return wantTime.Equal(gotTime)
}

// GetClient returns an authorized HTTP client, using the cached token at
// tokenPath when present and running the browser authorization flow when not.
func GetClient(config *oauth2.Config, tokenPath string) (*http.Client, error) {
	token, err := tokenFromFile(tokenPath)
	if err != nil {
		token, err = getTokenFromWeb(config)
		if err != nil {
			return nil, err
		}
		if err := saveToken(tokenPath, token); err != nil {
			return nil, err
		}
	}
	return config.Client(context.Background(), token), nil
}

// getTokenFromWeb runs the OAuth authorization code flow, catching the
// redirect on a short lived local server.
func getTokenFromWeb(config *oauth2.Config) (*oauth2.Token, error) {
	config.RedirectURL = "http://localhost:8080/oauth"
	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)

	fmt.Printf("Open the following link in your browser and authorize the application:\n%v\n", authURL)

	codeCh := make(chan string, 1)
	mux := http.NewServeMux()
	server := &http.Server{Addr: ":8080", Handler: mux}
	mux.HandleFunc("/oauth", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Authorization received. You can close this tab.")
		codeCh <- r.URL.Query().Get("code")
	})

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("authorization callback server failed")
		}
	}()

	authCode := <-codeCh

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return nil, fmt.Errorf("could not shut down callback server: %w", err)
	}

	token, err := config.Exchange(context.Background(), authCode)
	if err != nil {
		return nil, fmt.Errorf("could not exchange authorization code: %w", err)
	}
	return token, nil
}

// tokenFromFile reads a cached OAuth token.
func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	token := &oauth2.Token{}
	err = json.NewDecoder(f).Decode(token)
	return token, err
}

// saveToken caches an OAuth token for later runs.
func saveToken(path string, token *oauth2.Token) error {
	log.Info().Str("path", path).Msg("saving OAuth token")
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("could not create token file: %w", err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(token); err != nil {
		return fmt.Errorf("could not encode token: %w", err)
	}
	return nil
}
