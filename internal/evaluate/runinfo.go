package evaluate

import (
	"encoding/json"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RunInfo is the manifest written next to the result table so a run's
// provenance survives alongside its output.
type RunInfo struct {
	ID       string        `json:"id"`
	Started  time.Time     `json:"started"`
	Duration time.Duration `json:"duration"`
	Workers  int           `json:"workers"`
	Reps     int           `json:"reps"`
	Rows     int           `json:"rows"`
	Output   string        `json:"output"`
}

// NewRunInfo stamps a fresh run identifier and start time.
func NewRunInfo(workers, reps int) RunInfo {
	return RunInfo{
		ID:      uuid.NewString(),
		Started: time.Now().UTC(),
		Workers: workers,
		Reps:    reps,
	}
}

// Write finalizes the manifest and writes it beside the result table as
// <output>.run.json.
func (ri RunInfo) Write(output string, rows int) error {
	ri.Duration = time.Since(ri.Started)
	ri.Rows = rows
	ri.Output = output
	data, err := json.MarshalIndent(ri, "", "  ")
	if err != nil {
		return err
	}
	path := strings.TrimSuffix(output, ".csv") + ".run.json"
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
