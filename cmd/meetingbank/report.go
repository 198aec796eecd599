package main

import (
	"os"

	"github.com/jwulff/meetingbank/internal/report"
	"github.com/jwulff/meetingbank/internal/table"
	"github.com/jwulff/meetingbank/internal/ui"
	"github.com/spf13/cobra"
)

var reportColor bool

var reportCmd = &cobra.Command{
	Use:   "report [ids...]",
	Short: "Print report tables",
	Long: `Report runs the catalog queries and prints one table per report.

Reports:
  q1  meetings with the most speakers
  q2  average transcript length per city
  q3  average speakers per city
  q4  meetings mentioning the topic keywords, per city
  q5  longest meeting per city
  q6  meetings per city
  q7  average transcript length per city (same query as q2)
  q8  meetings ranked by transcript length
  q9  longest meetings overall

With no arguments every report is printed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := report.Select(cfg.Report, args...); err != nil {
			return err
		}

		s, name, err := openStore(cmd.Context(), cfg, false)
		if err != nil {
			return err
		}
		defer s.Close()
		log.WithField("store", name).Debug("running reports")

		var opts []table.Option
		if reportColor {
			opts = append(opts, table.WithStyles(ui.TableStyles()))
		}
		return report.Run(cmd.Context(), s, cfg.Report, table.NewPrinter(os.Stdout, opts...), args...)
	},
}

func init() {
	reportCmd.Flags().BoolVar(&reportColor, "color", false, "colour the tables")
	rootCmd.AddCommand(reportCmd)
}
