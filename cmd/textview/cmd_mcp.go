package main

import (
	"fmt"

	"github.com/nvandessel/textview/internal/mcp"
	"github.com/spf13/cobra"
)

func newMCPServerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp-server",
		Short: "Run the MCP server over stdio",
		Long: `Run a Model Context Protocol server on stdin/stdout.

Tools: textview_split, textview_at, textview_slice, textview_find.
Logs go to stderr; use --log-level debug to see each tool call.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger := newLogger(cmd, cfg)

			server, err := mcp.NewServer(&mcp.Config{
				Name:    "textview",
				Version: version,
				Options: cfg.ViewOptions(),
				Logger:  logger,
			})
			if err != nil {
				return fmt.Errorf("failed to create MCP server: %w", err)
			}

			logger.Info("mcp server starting", "version", version, "mode", cfg.Tokenize.Mode)
			return server.Run(cmd.Context())
		},
	}
}
