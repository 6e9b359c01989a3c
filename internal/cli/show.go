package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

func newShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name-or-id>",
		Short: "Look up one entry and print it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			record := s.nav.Search(cmd.Context(), strings.Join(args, " "))
			return s.render(record, s.nav)
		},
	}
}
