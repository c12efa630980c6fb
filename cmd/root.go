/*
Copyright © 2026 AssignWatch <dev@assignwatch.app>
*/
package cmd

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"

	"github.com/assignwatch/assignwatch/portal"
	"github.com/assignwatch/assignwatch/types"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "assignwatch",
	Short: "Turns AssignWatch assignments into calendar events",
	Long: `AssignWatch is a command line companion for the AssignWatch school portal.
It logs in with the users portal credentials, collects all assignments and
their classes, and turns them into calendar events with due date reminders.
The events can be exported as an iCalendar file, served as a subscription
feed, or synced into a Google Calendar.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("email", "u", "", "AssignWatch portal email (or ASSIGNWATCH_EMAIL)")
	rootCmd.PersistentFlags().StringP("password", "p", "", "AssignWatch portal password (or ASSIGNWATCH_PASSWORD)")
	rootCmd.PersistentFlags().String("portal", portal.DefaultBaseURL, "Base URL of the AssignWatch portal")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}

// initConfig loads the optional .env file and configures logging. Values
// already present in the real environment are not overwritten by the file.
func initConfig() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose, _ := rootCmd.PersistentFlags().GetBool("verbose"); verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
}

// fetchRecords logs in to the portal and returns its assignment and class
// records, with assignments sorted by due date. The calendar builder emits
// events in input order, so ordering is decided here.
func fetchRecords(cmd *cobra.Command) ([]types.Assignment, []types.Class, error) {
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")
	portalURL, _ := cmd.Flags().GetString("portal")

	if email == "" {
		email = os.Getenv("ASSIGNWATCH_EMAIL")
	}
	if password == "" {
		password = os.Getenv("ASSIGNWATCH_PASSWORD")
	}
	if email == "" || password == "" {
		return nil, nil, errors.New("portal login missing, set --email/--password or ASSIGNWATCH_EMAIL/ASSIGNWATCH_PASSWORD")
	}

	client, err := portal.NewClientAt(portalURL, &portal.LoginInfo{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, nil, err
	}

	assignments, err := client.GetAssignments()
	if err != nil {
		return nil, nil, err
	}
	classes, err := client.GetClasses()
	if err != nil {
		return nil, nil, err
	}

	// Due dates are RFC 3339 UTC strings, so lexicographic order is
	// chronological order.
	slices.SortFunc(assignments, func(a, b types.Assignment) int {
		return strings.Compare(a.DueDate, b.DueDate)
	})

	log.Info().
		Int("assignments", len(assignments)).
		Int("classes", len(classes)).
		Msg("fetched portal records")
	return assignments, classes, nil
}
