package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yarp-shell/recentlog/internal/output"
	"github.com/yarp-shell/recentlog/internal/ui"
)

func newViewCmd(opts *rootOptions) *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Open the most recent log in a scrollable pager",
		Long: `Open the most recent log file in an interactive pager, positioned
at the end of the file.

Keys: q/esc quit, g/G jump to top/bottom, arrows and pgup/pgdn scroll.

When standard output is not a terminal the content is printed as-is.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.open(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			latest, content, err := s.reader.Read()
			if err != nil {
				logFailure(s.logger, err)
				return err
			}

			stdout := cmd.OutOrStdout()
			if !output.IsTTY(stdout) {
				return output.New(stdout).Content(content)
			}

			return ui.RunPager(cmd.Context(), ui.PagerConfig{
				Path:    latest.Path,
				ModTime: latest.ModTime,
				Content: content,
				NoColor: noColor || output.DetectNoColor(),
				Input:   os.Stdin,
				Output:  stdout,
			})
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colors in the pager")

	return cmd
}
