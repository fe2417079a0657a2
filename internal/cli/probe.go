package cli

import (
	"fmt"
	"os"
	"runtime"

	"github.com/nixpig/syspal/pkg/boot"
	"github.com/nixpig/syspal/pkg/entropy"
	"github.com/spf13/cobra"
)

func probeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "probe",
		Short:   "Report platform backend support and current process identity",
		Example: "  syspal probe",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "platform:\t%s/%s\n", runtime.GOOS, runtime.GOARCH)
			fmt.Fprintf(out, "bootstrap:\t%s\n", boot.Current())
			fmt.Fprintf(
				out,
				"identity:\tuid=%d gid=%d pid=%d\n",
				os.Getuid(),
				os.Getgid(),
				os.Getpid(),
			)

			entropySource := "native"
			if _, _, err := entropy.Keys(); err != nil {
				entropySource = fmt.Sprintf("unavailable (%s)", err)
			}
			fmt.Fprintf(out, "entropy:\t%s\n", entropySource)

			caps, err := effectiveCaps()
			if err != nil {
				return fmt.Errorf("report capabilities: %w", err)
			}
			if caps != "" {
				fmt.Fprintf(out, "capabilities:\t%s\n", caps)
			}

			return nil
		},
	}

	return cmd
}
