package main

import (
	"github.com/jwulff/meetingbank/internal/app"
	"github.com/spf13/cobra"

	tea "github.com/charmbracelet/bubbletea"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the reports interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, name, err := openStore(cmd.Context(), cfg, false)
		if err != nil {
			return err
		}
		defer s.Close()

		m := app.New(cmd.Context(), s, cfg.Report, name)
		_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
