package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"advent2020/internal/cli"
)

// main is a thin boundary: it canonicalizes argv into an Invocation
// before any solving logic is invoked, and maps all outcomes to
// semantic exit codes.
func main() {
	inv, err := cli.ParseInvocation(os.Args[1:])
	if err != nil {
		var invErr *cli.InvocationError
		if errors.As(err, &invErr) {
			fmt.Fprintln(os.Stderr, invErr.Message)
			os.Exit(invErr.ExitCode)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitInternalError)
	}

	result, execErr := cli.Execute(context.Background(), inv, os.Stdout)
	if execErr != nil {
		fmt.Fprintln(os.Stderr, execErr)
	}
	os.Exit(result.ExitCode)
}
