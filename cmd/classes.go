/*
Copyright © 2026 AssignWatch <dev@assignwatch.app>
*/
package cmd

import (
	"encoding/json"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// classesCmd represents the classes command
var classesCmd = &cobra.Command{
	Use:   "classes",
	Short: "Lists the users classes as JSON",
	Long: `Lists the classes of the logged in user as JSON. Useful for checking
which class IDs the portal reports before exporting or syncing.`,
	Run: func(cmd *cobra.Command, args []string) {
		path, _ := cmd.Flags().GetString("output")

		_, classes, err := fetchRecords(cmd)
		if err != nil {
			log.Fatal().Err(err).Msg("could not fetch records from the portal")
		}

		b, err := json.MarshalIndent(classes, "", "  ")
		if err != nil {
			log.Fatal().Err(err).Msg("could not marshal the class list")
		}

		if path == "-" {
			os.Stdout.Write(append(b, '\n'))
			return
		}

		if err := os.WriteFile(path, b, 0644); err != nil {
			log.Fatal().Err(err).Msg("could not write the class list")
		}
		log.Info().Str("path", path).Int("classes", len(classes)).Msg("class list exported")
	},
}

func init() {
	rootCmd.AddCommand(classesCmd)

	classesCmd.Flags().StringP("output", "o", "-", "Path of the written JSON file, - for stdout")
}
