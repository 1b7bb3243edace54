package evaluate

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"specfit/internal/display"
)

// SummaryRow is one parsed line of a results table, reduced to the
// scoring columns.
type SummaryRow struct {
	Name      string
	DataName  string
	PValue    float64
	Statistic float64
}

// ReadSummary parses a previously written results CSV back into rows.
func ReadSummary(r io.Reader) ([]SummaryRow, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[h] = i
	}
	for _, want := range []string{"name", "data_name", "pvalue", "statistic"} {
		if _, ok := col[want]; !ok {
			return nil, fmt.Errorf("results table missing column %q", want)
		}
	}

	var rows []SummaryRow
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		pv, err := parseTableFloat(rec[col["pvalue"]])
		if err != nil {
			return nil, fmt.Errorf("row %q: %w", rec[col["name"]], err)
		}
		st, err := parseTableFloat(rec[col["statistic"]])
		if err != nil {
			return nil, fmt.Errorf("row %q: %w", rec[col["name"]], err)
		}
		rows = append(rows, SummaryRow{
			Name:      rec[col["name"]],
			DataName:  rec[col["data_name"]],
			PValue:    pv,
			Statistic: st,
		})
	}
	return rows, nil
}

// Top returns the n best-scoring rows per data label, highest p-value
// first with the statistic as tie-breaker.
func Top(rows []SummaryRow, n int) map[string][]SummaryRow {
	byData := make(map[string][]SummaryRow)
	for _, r := range rows {
		byData[r.DataName] = append(byData[r.DataName], r)
	}
	for label, rs := range byData {
		sort.SliceStable(rs, func(i, j int) bool {
			if rs[i].PValue != rs[j].PValue {
				return rs[i].PValue > rs[j].PValue
			}
			return rs[i].Statistic < rs[j].Statistic
		})
		if len(rs) > n {
			byData[label] = rs[:n]
		}
	}
	return byData
}

// RenderTop prints the per-sample leaderboards from a results CSV.
func RenderTop(w io.Writer, path string, n int) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open results: %w", err)
	}
	defer f.Close()

	rows, err := ReadSummary(f)
	if err != nil {
		return err
	}

	top := Top(rows, n)
	labels := make([]string, 0, len(top))
	for label := range top {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for _, label := range labels {
		tw := table.NewWriter()
		tw.SetOutputMirror(w)
		tw.SetTitle(label)
		tw.AppendHeader(table.Row{"#", "family", "p-value", "statistic"})
		for i, r := range top[label] {
			tw.AppendRow(table.Row{
				i + 1,
				display.FamilyNameWithCode(r.Name),
				formatFloat(r.PValue),
				formatFloat(r.Statistic),
			})
		}
		tw.Render()
	}
	return nil
}

func parseTableFloat(s string) (float64, error) {
	// strconv accepts "inf" and "nan" directly.
	return strconv.ParseFloat(s, 64)
}
