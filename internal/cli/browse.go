package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

const browseHelp = `commands:
  n, next            next entry
  b, back            previous entry
  s, search <query>  jump to a name or id
  h, help            show this help
  q, quit            leave`

func newBrowseCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Step through the catalog interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(cmd.Context(), opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()
			return browse(cmd, s)
		},
	}
}

// browse runs the read-eval loop until quit or end of input.
func browse(cmd *cobra.Command, s *session) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if err := s.render(s.nav.Start(ctx), s.nav); err != nil {
		return err
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		verb, arg, _ := strings.Cut(strings.TrimSpace(scanner.Text()), " ")
		switch strings.ToLower(verb) {
		case "":
			continue
		case "n", "next":
			if err := s.render(s.nav.Forward(ctx), s.nav); err != nil {
				return err
			}
		case "b", "back":
			if err := s.render(s.nav.Backward(ctx), s.nav); err != nil {
				return err
			}
		case "s", "search":
			if err := s.render(s.nav.Search(ctx, arg), s.nav); err != nil {
				return err
			}
		case "h", "help":
			fmt.Fprintln(out, browseHelp)
		case "q", "quit", "exit":
			return nil
		default:
			unknown(out, verb)
		}
	}
}

func unknown(out io.Writer, verb string) {
	fmt.Fprintf(out, "unknown command %q, type help for a list\n", verb)
}
