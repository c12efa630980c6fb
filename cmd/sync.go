/*
Copyright © 2026 AssignWatch <dev@assignwatch.app>
*/
package cmd

import (
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"

	"github.com/assignwatch/assignwatch/googlecalendar"
	"github.com/assignwatch/assignwatch/portal"
	"github.com/assignwatch/assignwatch/util/googlecalendarutil"
	"github.com/assignwatch/assignwatch/util/icalutil"
)

// syncCmd represents the sync command
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Syncs the assignments into a Google Calendar",
	Long: `Synchronises the users AssignWatch assignments with a Google Calendar.
Assignments are inserted as events with stable IDs, so repeated syncs update
events in place. Events of assignments that disappeared from the portal are
deleted. Other events in the calendar are never touched.`,
	Run: func(cmd *cobra.Command, args []string) {
		calendarID, _ := cmd.Flags().GetString("calendarID")
		tokenPath, _ := cmd.Flags().GetString("token")
		credentialsPath, _ := cmd.Flags().GetString("credentials")

		// Reads the credentials file and creates a config from it - this is used to create the client
		bytes, err := os.ReadFile(credentialsPath)
		if err != nil {
			log.Fatal().Err(err).Msgf("could not read contents of %s", credentialsPath)
		}

		config, err := google.ConfigFromJSON(bytes, calendar.CalendarEventsScope)
		if err != nil {
			log.Fatal().Err(err).Msgf("could not create config from %s", credentialsPath)
		}

		if !strings.HasSuffix(tokenPath, ".json") {
			tokenPath += ".json"
		}

		client, err := googlecalendarutil.GetClient(config, tokenPath)
		if err != nil {
			log.Fatal().Err(err).Msg("could not get Google Calendar client")
		}

		c, err := googlecalendar.New(client, calendarID)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create Google Calendar instance")
		}

		assignments, classes, err := fetchRecords(cmd)
		if err != nil {
			log.Fatal().Err(err).Msg("could not fetch records from the portal")
		}

		desired := make(map[string]*calendar.Event, len(assignments))
		for _, a := range assignments {
			event := icalutil.AssignmentToICalEvent(a, classes, portal.SubmissionStatus)
			googleEvent := googlecalendarutil.AssignmentToGoogleEvent(a, event)
			desired[googleEvent.Id] = googleEvent
		}

		existing, err := c.GetEvents()
		if err != nil {
			log.Fatal().Err(err).Msg("could not get events from Google Calendar")
		}

		if err := c.UpdateCalendar(desired, existing); err != nil {
			log.Fatal().Err(err).Msg("could not update Google Calendar")
		}
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)

	syncCmd.Flags().StringP("calendarID", "c", "primary", "Google Calendar calendar ID")
	syncCmd.Flags().StringP("token", "t", "token.json", "Path to a Google OAuth token file")
	syncCmd.Flags().String("credentials", "credentials.json", "Path to the Google OAuth client credentials file")
}
