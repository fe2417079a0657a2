package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/nixpig/syspal/pkg/oserr"
	"github.com/spf13/cobra"
)

func errnoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "errno [flags] CODE",
		Short:   "Decode a raw OS error code to its portable kind",
		Example: "  syspal errno 111",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parse error code %q: %w", args[0], err)
			}

			kind := oserr.DecodeKind(code)

			detail := ""
			if cause := errors.Unwrap(oserr.New("errno", code)); cause != nil {
				detail = cause.Error()
			}

			if _, err := fmt.Fprintf(
				cmd.OutOrStdout(),
				"%d\t%s\t%s\n",
				code,
				kind,
				detail,
			); err != nil {
				return fmt.Errorf("failed to print decoded code to stdout: %w", err)
			}

			return nil
		},
	}

	return cmd
}
