package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"advent2020/internal/solve"
)

const (
	ExitSuccess           = 0
	ExitSolveFailure      = 1
	ExitInvalidInvocation = 2
	ExitInputError        = 3
	ExitInternalError     = 4
)

// Invocation is the fully canonicalized description of a run.
//
// All knobs come from parsed flags; parsing reads no environment
// variables, so the same argv always yields the same Invocation.
type Invocation struct {
	// Day is the single day to run; 0 when All is set.
	Day int
	// All runs every registered day.
	All bool
	// Part selects 1, 2, or 0 for both.
	Part int
	// DataDir is the root of the per-day input files (data/dayNN/input.txt).
	DataDir string
	// Jobs bounds parallelism when All is set.
	Jobs int
	// ReportPath, when non-empty, receives a JSON run report.
	ReportPath string

	LogLevel  string
	LogFormat string
}

type InvocationError struct {
	ExitCode int
	Message  string
}

func (e *InvocationError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func invalidInvocationf(format string, args ...any) error {
	return &InvocationError{ExitCode: ExitInvalidInvocation, Message: fmt.Sprintf(format, args...)}
}

// ParseInvocation parses CLI flags into a canonical Invocation.
func ParseInvocation(args []string) (Invocation, error) {
	fs := flag.NewFlagSet("advent2020", flag.ContinueOnError)
	fs.SetOutput(io.Discard) // parsing errors are returned, not printed

	var inv Invocation
	fs.IntVar(&inv.Day, "day", 0, "Day to run (1-25).")
	fs.BoolVar(&inv.All, "all", false, "Run every registered day.")
	fs.IntVar(&inv.Part, "part", 0, "Part to run: 1, 2, or 0 for both.")
	fs.StringVar(&inv.DataDir, "data", "data", "Root directory holding data/dayNN/input.txt files.")
	fs.IntVar(&inv.Jobs, "jobs", 1, "Worker count for -all (1 = serial).")
	fs.StringVar(&inv.ReportPath, "report", "", "Write a JSON run report to this path (optional).")
	fs.StringVar(&inv.LogLevel, "log-level", "info", "Log level: trace|debug|info|warn|error.")
	fs.StringVar(&inv.LogFormat, "log-format", "console", "Log format: console|json.")

	if err := fs.Parse(args); err != nil {
		return Invocation{}, invalidInvocationf("%v", err)
	}
	if fs.NArg() != 0 {
		return Invocation{}, invalidInvocationf("unexpected positional arguments: %q", strings.Join(fs.Args(), " "))
	}

	if inv.All == (inv.Day != 0) {
		return Invocation{}, invalidInvocationf("exactly one of -day or -all is required")
	}
	if !inv.All && (inv.Day < solve.MinDay || inv.Day > solve.MaxDay) {
		return Invocation{}, invalidInvocationf("-day must be in [%d, %d] (got %d)", solve.MinDay, solve.MaxDay, inv.Day)
	}
	if inv.Part < 0 || inv.Part > 2 {
		return Invocation{}, invalidInvocationf("-part must be 1, 2, or 0 for both (got %d)", inv.Part)
	}
	if inv.Jobs < 1 {
		return Invocation{}, invalidInvocationf("-jobs must be >= 1 (got %d)", inv.Jobs)
	}
	if inv.DataDir == "" {
		return Invocation{}, invalidInvocationf("-data must not be empty")
	}
	switch inv.LogFormat {
	case "console", "json":
	default:
		return Invocation{}, invalidInvocationf("invalid -log-format %q (expected console|json)", inv.LogFormat)
	}

	inv.DataDir = filepath.Clean(inv.DataDir)
	return inv, nil
}

// ExitCode extracts a semantic exit code from a ParseInvocation error.
// Unknown errors map to ExitInternalError.
func ExitCode(err error) int {
	var invErr *InvocationError
	if errors.As(err, &invErr) && invErr != nil {
		if invErr.ExitCode != 0 {
			return invErr.ExitCode
		}
		return ExitInvalidInvocation
	}
	if err == nil {
		return ExitSuccess
	}
	return ExitInternalError
}
