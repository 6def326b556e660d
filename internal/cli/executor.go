package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"advent2020/internal/days"
	"advent2020/internal/log"
	"advent2020/internal/runner"
	"advent2020/internal/solve"
)

// CLIResult carries the semantic exit code and the per-day results of
// an executed invocation.
type CLIResult struct {
	ExitCode int
	Results  []runner.Result
}

// Execute maps a canonical Invocation to runner execution.
//
// Responsibilities:
//   - Build the solution registry and logger.
//   - Run the requested day(s).
//   - Print answers to out in ascending day order.
//   - Finalize the report artifact even on failure/panic.
//   - Translate outcomes to semantic exit codes.
func Execute(ctx context.Context, inv Invocation, out io.Writer) (res CLIResult, execErr error) {
	res.ExitCode = ExitInternalError
	if ctx == nil {
		ctx = context.Background()
	}
	if out == nil {
		out = os.Stdout
	}

	logger := log.New(log.Config{Level: inv.LogLevel, Format: inv.LogFormat})

	registry, err := solve.NewRegistry(days.All())
	if err != nil {
		return res, err
	}

	defer func() {
		if rec := recover(); rec != nil {
			res.ExitCode = ExitInternalError
			res.Results = nil
			execErr = fmt.Errorf("panic: %v", rec)
		}
		if inv.ReportPath != "" {
			// Always leave a valid report behind, even after a failure.
			if werr := runner.WriteReport(inv.ReportPath, runner.BuildReport(res.Results)); werr != nil && execErr == nil {
				execErr = werr
				res.ExitCode = ExitInternalError
			}
		}
	}()

	run := &runner.Runner{
		Registry: registry,
		DataDir:  inv.DataDir,
		Part:     inv.Part,
		Jobs:     inv.Jobs,
		Logger:   logger,
	}

	var results []runner.Result
	if inv.All {
		results, err = run.RunAll(ctx)
	} else {
		var single runner.Result
		single, err = run.RunDay(ctx, inv.Day)
		results = []runner.Result{single}
	}
	if err != nil {
		res.ExitCode = ExitInternalError
		return res, err
	}

	res.Results = results
	printResults(out, inv.Part, results)
	res.ExitCode = translateResults(results)
	return res, nil
}

func printResults(out io.Writer, part int, results []runner.Result) {
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(out, "day %02d: error: %v\n", r.Day, r.Err)
			continue
		}
		if part == 0 || part == 1 {
			fmt.Fprintf(out, "day %02d part 1: %s\n", r.Day, r.Part1)
		}
		// Part2 stays empty for day 25, which has no second puzzle.
		if (part == 0 || part == 2) && r.Part2 != "" {
			fmt.Fprintf(out, "day %02d part 2: %s\n", r.Day, r.Part2)
		}
	}
}

// translateResults maps per-day outcomes to a single exit code.
//
// Precedence: any failure that is not an input-file problem wins over
// input-file problems, which win over success. A run where the only
// defects are missing input files is distinguishable from one where a
// solution actually failed.
func translateResults(results []runner.Result) int {
	code := ExitSuccess
	for _, r := range results {
		if r.State != runner.DayFailed {
			continue
		}
		var inErr *solve.InputError
		if errors.As(r.Err, &inErr) {
			if code == ExitSuccess {
				code = ExitInputError
			}
			continue
		}
		return ExitSolveFailure
	}
	return code
}
