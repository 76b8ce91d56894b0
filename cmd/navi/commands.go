package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/vitalvas/navi/urlmatch"
)

// errNoMatch makes the process exit with status 1 without printing an error.
var errNoMatch = errors.New("no match")

type matchOutput struct {
	Pattern string          `json:"pattern"`
	Name    string          `json:"name,omitempty"`
	Values  urlmatch.Values `json:"values"`
}

func matchCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "match URL",
		Short: "Print the first pattern matching URL and its values as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			candidates := opts.candidates()
			if len(candidates) == 0 {
				return errors.New("no patterns: use --pattern or --routes")
			}

			res, ok := opts.matcher().MatchString(args[0], candidates)
			if !ok {
				opts.logger.Info("no pattern matched", slog.String("url", args[0]), slog.Int("candidates", len(candidates)))
				return errNoMatch
			}

			out := matchOutput{Pattern: res.Pattern, Values: res.Values}
			if opts.routes != nil {
				if route, found := opts.routes.Route(res.Pattern); found {
					out.Name = route.Name
				}
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
}

func normalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize URL",
		Short: "Print the normalized form of URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), urlmatch.NormalizeString(args[0]))
			return err
		},
	}
}

func queryCmd() *cobra.Command {
	var items bool

	cmd := &cobra.Command{
		Use:   "query URL",
		Short: "Print the query parameters of URL as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc := urlmatch.FromString(args[0])
			if items {
				list := urlmatch.QueryItems(loc)
				if list == nil {
					list = []urlmatch.QueryItem{}
				}
				return writeJSON(cmd.OutOrStdout(), list)
			}
			return writeJSON(cmd.OutOrStdout(), urlmatch.QueryParameters(loc))
		},
	}

	cmd.Flags().BoolVar(&items, "items", false, "print every key/value pair in order, keeping duplicates")

	return cmd
}

func checkCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report configuration warnings for the configured patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m := opts.matcher()
			count := 0
			for _, pattern := range opts.candidates() {
				for _, w := range m.Check(pattern) {
					count++
					if _, err := fmt.Fprintln(cmd.OutOrStdout(), w); err != nil {
						return err
					}
				}
			}
			if count > 0 {
				return fmt.Errorf("%d warning(s)", count)
			}
			return nil
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
