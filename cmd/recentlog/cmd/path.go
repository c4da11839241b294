package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPathCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the path of the most recent log file",
		Long: `Print the path of the file recentlog would read, without reading it.

Useful for piping into other tools:

  less "$(recentlog path)"`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.open(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			latest, err := s.reader.Latest()
			if err != nil {
				logFailure(s.logger, err)
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), latest.Path)
			return err
		},
	}
}
