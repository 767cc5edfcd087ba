package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/nvandessel/textview/internal/config"
	"github.com/nvandessel/textview/internal/logging"
	"github.com/nvandessel/textview/internal/textview"
	"github.com/spf13/cobra"
)

var (
	version = "0.1.0-dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "textview",
		Short: "Split text into words and inspect the result",
		Long: `textview splits text into words (maximal runs of letters, digits and
underscore) and gives list-like access to them: indexing, slicing, counting,
and a short escaped debug representation of the source text.

Text is taken from the arguments, joined by spaces, or from stdin when no
text arguments are given.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().String("config", "", "Config file (default ~/.textview/config.yaml)")
	rootCmd.PersistentFlags().String("mode", "", "Word-character class: unicode or ascii")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: info, debug, or trace")

	rootCmd.AddCommand(
		newVersionCmd(),
		newSplitCmd(),
		newAtCmd(),
		newSliceCmd(),
		newReprCmd(),
		newSummaryCmd(),
		newConfigCmd(),
		newMCPServerCmd(),
	)

	return rootCmd
}

// loadConfig loads the config file and environment, then applies flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadWithPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("mode") {
		cfg.Tokenize.Mode, _ = cmd.Flags().GetString("mode")
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level, _ = cmd.Flags().GetString("log-level")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command, cfg *config.Config) *slog.Logger {
	return logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr())
}

// readText joins args with spaces, or reads stdin when args is empty.
// A single trailing newline from stdin is dropped.
func readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	text := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}

// buildView reads the input text and tokenizes it with the effective config.
func buildView(cmd *cobra.Command, args []string) (*textview.TokenizedText, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	logger := newLogger(cmd, cfg)

	text, err := readText(cmd, args)
	if err != nil {
		return nil, err
	}

	view := textview.NewWithOptions(text, cfg.ViewOptions())
	logger.Debug("tokenized text", "text", view, "mode", view.Mode())
	logger.Log(cmd.Context(), logging.LevelTrace, "tokens", "words", view.Words())
	return view, nil
}
