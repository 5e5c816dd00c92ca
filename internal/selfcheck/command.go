package selfcheck

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

// NewCommand returns the selfcheck CLI. It prints OK and exits cleanly when every
// check holds, otherwise it returns the first failure.
func NewCommand() *cobra.Command {
	var (
		verbose bool
		list    bool
	)

	cmd := &cobra.Command{
		Use:          "selfcheck",
		Short:        "Verify the coffee order builder",
		Long:         "Run the order builder through its pricing, validation and description scenarios.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if list {
				for _, check := range Checks() {
					fmt.Fprintln(cmd.OutOrStdout(), check.Name)
				}
				return nil
			}

			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			if err := Run(cmd.Context(), logger); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every check")
	cmd.Flags().BoolVar(&list, "list", false, "list the checks without running them")

	return cmd
}
