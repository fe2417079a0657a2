package cli

import (
	"fmt"
	"net"
	"strconv"

	"github.com/nixpig/syspal/pkg/peercred"
	"github.com/spf13/cobra"
)

func peercredCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "peercred [flags] SOCKET_PATH",
		Short:   "Resolve the peer credential of a unix domain socket",
		Example: "  syspal peercred /run/mydaemon.sock",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			socketPath := args[0]

			conn, err := net.DialUnix(
				"unix",
				nil,
				&net.UnixAddr{Name: socketPath, Net: "unix"},
			)
			if err != nil {
				return fmt.Errorf("dial %s: %w", socketPath, err)
			}
			defer conn.Close()

			cred, err := peercred.Get(conn)
			if err != nil {
				return fmt.Errorf("resolve peer credential: %w", err)
			}

			pid := "-"
			if cred.HasPID {
				pid = strconv.Itoa(int(cred.PID))
			}

			if _, err := fmt.Fprintf(
				cmd.OutOrStdout(),
				"uid=%d gid=%d pid=%s\n",
				cred.UID,
				cred.GID,
				pid,
			); err != nil {
				return fmt.Errorf("failed to print credential to stdout: %w", err)
			}

			return nil
		},
	}

	return cmd
}
