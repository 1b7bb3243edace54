package evaluate

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
)

// DefaultOutput is the result table path when plotting is disabled.
const DefaultOutput = "data_distribution_tests.csv"

// OutputFor returns the table path for a run: the fixed default, or a
// rep-count-stamped variant when diagnostic plots are on.
func OutputFor(plotting bool, reps int) string {
	if plotting {
		return fmt.Sprintf("data_distribution_tests_%d.csv", reps)
	}
	return DefaultOutput
}

// Columns returns the table header for the given results: the fixed
// leading columns, the union of parameter names in first-appearance
// order, and required_time last.
func Columns(results []Result) []string {
	cols := []string{"name", "data_name", "pvalue", "statistic"}
	seen := make(map[string]bool)
	for _, r := range results {
		for _, n := range r.ParamNames {
			if !seen[n] {
				seen[n] = true
				cols = append(cols, n)
			}
		}
	}
	return append(cols, "required_time")
}

// WriteTable writes the results as CSV, one row per task in submission
// order. Parameters a family does not have stay empty; non-finite
// statistics render as "inf".
func WriteTable(w io.Writer, results []Result) error {
	cols := Columns(results)
	cw := csv.NewWriter(w)
	if err := cw.Write(cols); err != nil {
		return err
	}
	for _, r := range results {
		row := make([]string, len(cols))
		row[0] = r.Name
		row[1] = r.DataName
		row[2] = formatFloat(r.PValue)
		row[3] = formatFloat(r.Statistic)
		for i, c := range cols[4 : len(cols)-1] {
			if v, ok := r.Params[c]; ok {
				row[4+i] = formatFloat(v)
			}
		}
		row[len(cols)-1] = formatFloat(r.RequiredTime.Seconds())
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTableFile writes the table to path, truncating any existing file.
func WriteTableFile(path string, results []Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create result table: %w", err)
	}
	if err := WriteTable(f, results); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func formatFloat(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsNaN(v):
		return "nan"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
