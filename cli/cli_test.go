// Black-box tests driving the CLI the way a user would: flags in,
// answers and exit codes out.
package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advent2020/internal/cli"
	"advent2020/internal/runner"
)

const day01Input = `1721
979
366
299
675
1456
`

func writeInput(t *testing.T, dataDir string, day int, content string) {
	t.Helper()
	path := runner.InputPath(dataDir, day)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func run(t *testing.T, args ...string) (cli.CLIResult, string, error) {
	t.Helper()
	var out bytes.Buffer
	res, err := cli.Run(context.Background(), args, &out)
	return res, out.String(), err
}

func TestRunSingleDay(t *testing.T) {
	dataDir := t.TempDir()
	writeInput(t, dataDir, 1, day01Input)

	res, out, err := run(t, "-day", "1", "-data", dataDir)
	require.NoError(t, err)
	assert.Equal(t, cli.ExitSuccess, res.ExitCode)
	assert.Equal(t, "day 01 part 1: 514579\nday 01 part 2: 241861950\n", out)
}

func TestRunSinglePart(t *testing.T) {
	dataDir := t.TempDir()
	writeInput(t, dataDir, 1, day01Input)

	res, out, err := run(t, "-day", "1", "-part", "2", "-data", dataDir)
	require.NoError(t, err)
	assert.Equal(t, cli.ExitSuccess, res.ExitCode)
	assert.Equal(t, "day 01 part 2: 241861950\n", out)
}

func TestInvalidInvocation(t *testing.T) {
	res, out, err := run(t, "-day", "1", "-all")
	require.Error(t, err)
	assert.Equal(t, cli.ExitInvalidInvocation, res.ExitCode)
	assert.Empty(t, out)

	res, _, err = run(t)
	require.Error(t, err)
	assert.Equal(t, cli.ExitInvalidInvocation, res.ExitCode)
}

func TestMissingInputFile(t *testing.T) {
	res, out, err := run(t, "-day", "1", "-data", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, cli.ExitInputError, res.ExitCode)
	assert.Contains(t, out, "day 01: error:")
	assert.Contains(t, out, "input.txt")
}

func TestMalformedInputIsSolveFailure(t *testing.T) {
	dataDir := t.TempDir()
	writeInput(t, dataDir, 1, "not a number\n")

	res, out, err := run(t, "-day", "1", "-data", dataDir)
	require.NoError(t, err)
	assert.Equal(t, cli.ExitSolveFailure, res.ExitCode)
	assert.Contains(t, out, "day 01: error:")
}

// With only day 1's input present, -all completes day 1 and fails the
// rest on missing inputs; missing inputs alone map to the input-error
// exit code.
func TestRunAllWithPartialInputs(t *testing.T) {
	dataDir := t.TempDir()
	writeInput(t, dataDir, 1, day01Input)

	res, out, err := run(t, "-all", "-jobs", "4", "-data", dataDir)
	require.NoError(t, err)
	assert.Equal(t, cli.ExitInputError, res.ExitCode)
	assert.Contains(t, out, "day 01 part 1: 514579")
	require.Len(t, res.Results, 25)
	assert.Equal(t, runner.DayCompleted, res.Results[0].State)
	assert.Equal(t, runner.DayFailed, res.Results[1].State)
}

func TestReportIsWrittenAndStable(t *testing.T) {
	dataDir := t.TempDir()
	writeInput(t, dataDir, 1, day01Input)
	reportPath := filepath.Join(t.TempDir(), "report.json")

	readReport := func() runner.Report {
		b, err := os.ReadFile(reportPath)
		require.NoError(t, err)
		var rep runner.Report
		require.NoError(t, json.Unmarshal(b, &rep))
		return rep
	}

	_, _, err := run(t, "-day", "1", "-data", dataDir, "-report", reportPath)
	require.NoError(t, err)
	first := readReport()

	_, _, err = run(t, "-day", "1", "-data", dataDir, "-report", reportPath)
	require.NoError(t, err)
	second := readReport()

	require.Len(t, first.Days, 1)
	assert.Equal(t, "Report Repair", first.Days[0].Title)
	assert.Equal(t, "514579", first.Days[0].Part1)

	// Everything except durations is identical across runs.
	first.Days[0].DurationMS = 0
	second.Days[0].DurationMS = 0
	assert.Equal(t, first, second)
}

func TestReportWrittenOnFailure(t *testing.T) {
	reportPath := filepath.Join(t.TempDir(), "report.json")

	res, _, err := run(t, "-day", "1", "-data", t.TempDir(), "-report", reportPath)
	require.NoError(t, err)
	assert.Equal(t, cli.ExitInputError, res.ExitCode)

	b, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	var rep runner.Report
	require.NoError(t, json.Unmarshal(b, &rep))
	require.Len(t, rep.Days, 1)
	assert.Equal(t, string(runner.DayFailed), rep.Days[0].State)
	assert.NotEmpty(t, rep.Days[0].Error)
}
