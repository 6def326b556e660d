package solve

import (
	"os"
	"strconv"
	"strings"
)

// Input is one day's puzzle text.
//
// The raw text is kept verbatim; the view helpers (Lines, Blocks, Ints)
// are derived on demand and never mutate it, so the same Input can be
// handed to both parts of a day.
type Input struct {
	text string
}

// Load reads a puzzle input file. Failures are returned as *InputError
// so callers can distinguish "input missing" from "input malformed".
func Load(path string) (*Input, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}
	return FromString(string(b)), nil
}

// FromString wraps literal puzzle text. Tests use this to feed the
// published examples through the same path as real inputs.
func FromString(s string) *Input {
	return &Input{text: s}
}

// Text returns the raw input with trailing newlines trimmed.
func (in *Input) Text() string {
	return strings.TrimRight(in.text, "\n")
}

// Lines splits the input into lines. A trailing final newline does not
// produce an empty last element.
func (in *Input) Lines() []string {
	t := in.Text()
	if t == "" {
		return nil
	}
	return strings.Split(t, "\n")
}

// Blocks splits the input into blank-line-separated groups of lines.
func (in *Input) Blocks() [][]string {
	var blocks [][]string
	var current []string
	for _, line := range in.Lines() {
		if line == "" {
			if len(current) > 0 {
				blocks = append(blocks, current)
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}
	return blocks
}

// Ints parses the input as one integer per line.
func (in *Input) Ints() ([]int, error) {
	lines := in.Lines()
	out := make([]int, 0, len(lines))
	for _, line := range lines {
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			return nil, BadInputf("not a number: %q", line)
		}
		out = append(out, n)
	}
	return out, nil
}

// CommaInts parses the first line of the input as comma-separated integers.
func (in *Input) CommaInts() ([]int, error) {
	lines := in.Lines()
	if len(lines) == 0 {
		return nil, BadInputf("empty input")
	}
	fields := strings.Split(lines[0], ",")
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, BadInputf("not a number: %q", f)
		}
		out = append(out, n)
	}
	return out, nil
}
