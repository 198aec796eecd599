// Command meetingbank runs read-only reports over a store of city council
// meeting transcripts.
package main

import (
	"context"
	"os"
	"os/signal"
	"strings"

	"github.com/jwulff/meetingbank/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.WithField("component", "cli")

var (
	flagBackend  string
	flagDB       string
	flagEnvFiles []string

	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "meetingbank",
	Short: "Analytical reports over city council meeting transcripts",
	Long: `meetingbank queries a SQLite database or MongoDB collection of meeting
transcripts (one record per meeting with its city, speaker count, word count
and full text) and prints the results as text tables.

Connection settings come from .env files, the environment and an optional
YAML file named by MEETINGBANK_CONFIG; flags override them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(flagEnvFiles...)
		if err != nil {
			return err
		}
		if flagBackend != "" {
			loaded.Backend = strings.ToLower(flagBackend)
		}
		if flagDB != "" {
			loaded.DBPath = flagDB
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = loaded

		logrus.SetOutput(os.Stderr)
		logrus.SetLevel(cfg.Level())
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "store backend: sqlite or mongo")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "SQLite database path")
	rootCmd.PersistentFlags().StringSliceVar(&flagEnvFiles, "env-file", []string{".env"}, ".env files to load")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.WithError(err).Error("command failed")
		stop()
		os.Exit(1)
	}
}
