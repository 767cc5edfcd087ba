package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/nvandessel/textview/internal/textview"
	"github.com/spf13/cobra"
)

// splitResult is the JSON shape of `textview split`.
type splitResult struct {
	Text      string   `json:"text"`
	Words     []string `json:"words"`
	Count     int      `json:"count"`
	Repr      string   `json:"repr"`
	WordsRepr string   `json:"words_repr"`
	Summary   string   `json:"summary"`
}

func newSplitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "split [text...]",
		Short: "Split text into words",
		Long: `Split text into words and print them one per line with their index.

Examples:
  textview split "The quick brown fox jumps over the lazy dog!"
  echo "Hello, world!" | textview split --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := buildView(cmd, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return json.NewEncoder(out).Encode(splitResult{
					Text:      view.Text(),
					Words:     view.Words(),
					Count:     view.Len(),
					Repr:      view.Repr(),
					WordsRepr: view.WordsRepr(),
					Summary:   view.Summary(),
				})
			}

			for i, w := range view.All() {
				fmt.Fprintf(out, "%d\t%s\n", i, w)
			}
			fmt.Fprintf(out, "\n%s\n%d words: %s\n", view.Repr(), view.Len(), view.WordsRepr())
			return nil
		},
	}
}

func newAtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "at INDEX [text...]",
		Short: "Print the word at an index",
		Long: `Print the word at INDEX. Negative indices count from the end; pass them
after "--" so they are not read as flags.

Examples:
  textview at 0 "Hello, world!"
  textview at -- -1 "Hello, world!"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid index %q: %w", args[0], err)
			}

			view, err := buildView(cmd, args[1:])
			if err != nil {
				return err
			}

			word, err := view.At(index)
			if err != nil {
				return err
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{
					"index": index,
					"word":  word,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), word)
			return nil
		},
	}
}

func newSliceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "slice RANGE [text...]",
		Short: "Print the words selected by start:stop[:step]",
		Long: `Print the words selected by RANGE, one per line. Bounds may be omitted
or negative and are clamped to the word list. Ranges that start with "-"
must follow "--".

Examples:
  textview slice 0:3 "The quick brown fox jumps over the lazy dog!"
  textview slice -- -3: "The quick brown fox jumps over the lazy dog!"
  textview slice ::-1 "one two three"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := textview.ParseRange(args[0])
			if err != nil {
				return err
			}

			view, err := buildView(cmd, args[1:])
			if err != nil {
				return err
			}

			words := view.Slice(r)

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{
					"range": r.String(),
					"words": words,
					"count": len(words),
				})
			}
			for _, w := range words {
				fmt.Fprintln(cmd.OutOrStdout(), w)
			}
			return nil
		},
	}
}

func newReprCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repr [text...]",
		Short: "Print the bounded debug representation",
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := buildView(cmd, args)
			if err != nil {
				return err
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]string{
					"repr":       view.Repr(),
					"words_repr": view.WordsRepr(),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), view.Repr())
			return nil
		},
	}
}

func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary [text...]",
		Short: "Print a human-readable summary of the words",
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := buildView(cmd, args)
			if err != nil {
				return err
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{
					"summary": view.Summary(),
					"count":   view.Len(),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), view.Summary())
			return nil
		},
	}
}
