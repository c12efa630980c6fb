/*
Copyright © 2026 AssignWatch <dev@assignwatch.app>
*/
package cmd

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/assignwatch/assignwatch/portal"
	"github.com/assignwatch/assignwatch/types"
	"github.com/assignwatch/assignwatch/util/icalutil"
)

// feed serves the most recently built calendar document. The document is
// rebuilt in the background so requests never wait on the portal.
type feed struct {
	mu       sync.RWMutex
	document []byte
	fetch    func() ([]byte, error)
}

func newFeed(fetch func() ([]byte, error)) *feed {
	return &feed{fetch: fetch}
}

// refresh rebuilds the cached document. On failure the previous document
// stays in place.
func (f *feed) refresh() error {
	document, err := f.fetch()
	if err != nil {
		return err
	}

	f.mu.Lock()
	f.document = document
	f.mu.Unlock()
	return nil
}

func (f *feed) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.RLock()
	document := f.document
	f.mu.RUnlock()

	w.Header().Set("Content-Type", types.MIMEType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", types.DefaultFilename))
	w.Write(document)
}

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the assignments as a calendar subscription feed",
	Long: `Serves the users AssignWatch assignments as an iCalendar feed over HTTP.
Calendar applications can subscribe to http://<host>/assignments.ics and pick
up new assignments automatically. The feed is rebuilt from the portal on a
fixed interval.`,
	Run: func(cmd *cobra.Command, args []string) {
		listenAddr, _ := cmd.Flags().GetString("listen")
		refreshEvery, _ := cmd.Flags().GetDuration("refresh")

		f := newFeed(func() ([]byte, error) {
			assignments, classes, err := fetchRecords(cmd)
			if err != nil {
				return nil, err
			}
			c := &types.ICalendar{
				Events: icalutil.AssignmentsToICalEvents(assignments, classes, portal.SubmissionStatus),
			}
			return c.Bytes(), nil
		})

		if err := f.refresh(); err != nil {
			log.Fatal().Err(err).Msg("could not build the initial calendar")
		}

		go func() {
			ticker := time.NewTicker(refreshEvery)
			defer ticker.Stop()
			for range ticker.C {
				if err := f.refresh(); err != nil {
					log.Error().Err(err).Msg("could not refresh the calendar feed")
				} else {
					log.Debug().Msg("calendar feed refreshed")
				}
			}
		}()

		mux := http.NewServeMux()
		mux.Handle("/assignments.ics", f)
		mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("ok"))
		})

		log.Info().Str("addr", listenAddr).Dur("refresh", refreshEvery).Msg("serving calendar feed")
		if err := http.ListenAndServe(listenAddr, mux); err != nil {
			log.Fatal().Err(err).Msg("feed server failed")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("listen", "l", ":8090", "Address the feed server listens on")
	serveCmd.Flags().DurationP("refresh", "r", time.Hour, "How often the feed is rebuilt from the portal")
}
