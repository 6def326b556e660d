package runner

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// DayReport is one day's entry in the run report artifact.
type DayReport struct {
	Day        int    `json:"day"`
	Title      string `json:"title"`
	State      string `json:"state"`
	Part1      string `json:"part1,omitempty"`
	Part2      string `json:"part2,omitempty"`
	Error      string `json:"error,omitempty"`
	DurationMS int64  `json:"duration_ms"`
}

// Report is the JSON artifact summarizing a run.
//
// Entries are ordered by ascending day so two runs over the same inputs
// differ only in durations.
type Report struct {
	Days []DayReport `json:"days"`
}

// BuildReport converts results (already in ascending day order) into a
// serializable report.
func BuildReport(results []Result) Report {
	days := make([]DayReport, 0, len(results))
	for _, res := range results {
		entry := DayReport{
			Day:        res.Day,
			Title:      res.Title,
			State:      string(res.State),
			Part1:      res.Part1,
			Part2:      res.Part2,
			DurationMS: res.Duration.Milliseconds(),
		}
		if res.Err != nil {
			entry.Error = res.Err.Error()
		}
		days = append(days, entry)
	}
	return Report{Days: days}
}

// CanonicalJSON renders the report with stable field order and a
// trailing newline.
func (rep Report) CanonicalJSON() ([]byte, error) {
	b, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

// WriteReport writes the report atomically, creating parent directories.
// The destination never holds a partially written report.
func WriteReport(path string, rep Report) error {
	b, err := rep.CanonicalJSON()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return writeFileAtomic(path, b, 0o644)
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	tmp, err := os.CreateTemp(dir, base+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	_ = tmp.Sync() // best-effort durability
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
