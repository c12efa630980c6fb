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
	"github.com/assignwatch/assignwatch/util/googlecalendarutil"
)

// clearCmd represents the clear command
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clears the assignment events from a Google Calendar",
	Long: `Clears a Google Calendar of all events created by the sync command.
Only assignment events are targeted, personal events stay intact.`,
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

		if err := c.Clear(); err != nil {
			log.Fatal().Err(err).Msg("could not clear Google Calendar")
		}
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	clearCmd.Flags().StringP("calendarID", "c", "primary", "Google Calendar calendar ID")
	clearCmd.Flags().StringP("token", "t", "token.json", "Path to a Google OAuth token file")
	clearCmd.Flags().String("credentials", "credentials.json", "Path to the Google OAuth client credentials file")
}
