package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// listEntry is the JSON shape of one candidate.
type listEntry struct {
	Path    string    `json:"path"`
	ModTime time.Time `json:"mod_time"`
	Size    int64     `json:"size"`
	Latest  bool      `json:"latest"`
}

func newListCmd(opts *rootOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List candidate log files, newest first",
		Long: `List every file matching the log pattern, newest first.

The first entry is the file recentlog would print.`,
		Example: `  recentlog list
  recentlog list --json`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, opts, jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func runList(cmd *cobra.Command, opts *rootOptions, jsonOutput bool) error {
	s, err := opts.open(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer s.Close()

	candidates, err := s.reader.Ranked()
	if err != nil {
		logFailure(s.logger, err)
		return err
	}

	if jsonOutput {
		entries := make([]listEntry, 0, len(candidates))
		for i, c := range candidates {
			entries = append(entries, listEntry{
				Path:    c.Path,
				ModTime: c.ModTime,
				Size:    c.Size,
				Latest:  i == 0,
			})
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	for i, c := range candidates {
		marker := " "
		if i == 0 {
			marker = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			marker,
			humanize.Time(c.ModTime),
			humanize.Bytes(uint64(c.Size)),
			c.Path)
	}
	return tw.Flush()
}
