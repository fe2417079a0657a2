package main

import (
	"fmt"
	"os"

	"github.com/nixpig/syspal/internal/cli"
	"github.com/nixpig/syspal/pkg/boot"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	if err := boot.Init(args); err != nil {
		os.Stderr.Write(fmt.Appendf(nil, "failed to bootstrap: %s\n", err))
		return 1
	}

	// Teardown runs whether or not the command succeeded; Cleanup must
	// happen exactly once before a normal exit.
	exitCode := 0

	cmd := cli.RootCmd()
	cmd.SetArgs(args[1:])

	if err := cmd.Execute(); err != nil {
		os.Stderr.Write(fmt.Appendf(nil, "failed to execute: %s\n", err))
		exitCode = 1
	}

	if err := boot.Cleanup(); err != nil {
		os.Stderr.Write(fmt.Appendf(nil, "failed to tear down: %s\n", err))
		exitCode = 1
	}

	return exitCode
}
