/*
Copyright © 2026 AssignWatch <dev@assignwatch.app>
*/
package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/assignwatch/assignwatch/portal"
	"github.com/assignwatch/assignwatch/types"
	"github.com/assignwatch/assignwatch/util/icalutil"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Exports all assignments as an iCalendar file",
	Long: `Exports the users AssignWatch assignments as an iCalendar (.ics) file.
The file can be imported into any calendar application. Every assignment
becomes an event on its due date, carrying a 24 hour and a 1 hour reminder.`,
	Run: func(cmd *cobra.Command, args []string) {
		output, _ := cmd.Flags().GetString("output")

		assignments, classes, err := fetchRecords(cmd)
		if err != nil {
			log.Fatal().Err(err).Msg("could not fetch records from the portal")
		}

		c := &types.ICalendar{
			Events: icalutil.AssignmentsToICalEvents(assignments, classes, portal.SubmissionStatus),
		}
		if err := c.WriteFile(output); err != nil {
			log.Fatal().Err(err).Msg("could not write the calendar file")
		}

		log.Info().Str("path", output).Int("events", len(c.Events)).Msg("calendar exported")
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("output", "o", types.DefaultFilename, "Path of the exported .ics file")
}
