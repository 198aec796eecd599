package main

import (
	"github.com/jwulff/meetingbank/internal/mcpserver"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the reports as MCP tools over stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, name, err := openStore(cmd.Context(), cfg, false)
		if err != nil {
			return err
		}
		defer s.Close()

		log.WithField("store", name).Info("serving MCP over stdio")
		return mcpserver.Serve(s, cfg.Report)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
