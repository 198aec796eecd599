package main

import (
	"fmt"
	"os"

	"github.com/jwulff/meetingbank/internal/ingest"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var loadCities []string

var loadCmd = &cobra.Command{
	Use:   "load <MeetingBank.json>",
	Short: "Load a MeetingBank export into the store",
	Long: `Load parses a MeetingBank JSON export into one transcript record per
meeting and inserts the records that are not stored yet. Meetings are keyed by
city and meeting ID, so loading the same export twice adds nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open export: %w", err)
		}
		defer f.Close()

		opts := cfg.Ingest
		if cmd.Flags().Changed("cities") {
			opts.Cities = loadCities
		}

		records, err := ingest.Parse(f, opts)
		if err != nil {
			return err
		}
		log.WithField("meetings", len(records)).Info("parsed export")

		s, name, err := openStore(cmd.Context(), cfg, true)
		if err != nil {
			return err
		}
		defer s.Close()

		n, err := s.InsertTranscripts(cmd.Context(), records)
		if err != nil {
			return err
		}
		total, err := s.Count(cmd.Context())
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{
			"store":    name,
			"inserted": n,
			"skipped":  len(records) - n,
			"total":    total,
		}).Info("loaded transcripts")
		return nil
	},
}

func init() {
	loadCmd.Flags().StringSliceVar(&loadCities, "cities", nil,
		fmt.Sprintf("only load these cities (reference extraction: %v)", ingest.DefaultCities))
	rootCmd.AddCommand(loadCmd)
}
