package evaluate

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/rand"

	"specfit/internal/dist"
	"specfit/internal/logging"
	"specfit/internal/mgf"
)

func testFamilies(t *testing.T, names ...string) []*dist.Family {
	t.Helper()
	fams := make([]*dist.Family, 0, len(names))
	for _, n := range names {
		f, err := dist.Lookup(n)
		if err != nil {
			t.Fatal(err)
		}
		fams = append(fams, f)
	}
	return fams
}

func normalSample(t *testing.T, label string, n int, seed uint64) mgf.Sample {
	t.Helper()
	f, err := dist.Lookup("norm")
	if err != nil {
		t.Fatal(err)
	}
	vals := f.Sample(f.MustParams(10, 2), n, rand.NewSource(seed))
	return mgf.Sample{Label: label, Values: vals}
}

func TestRunTaskSentinelOnDegenerateSample(t *testing.T) {
	f, err := dist.Lookup("norm")
	if err != nil {
		t.Fatal(err)
	}
	sample := mgf.Sample{Label: "Masses", Values: []float64{5, 5, 5, 5, 5}}

	res := RunTask(f, sample, TaskOptions{Reps: 10, Log: logging.Discard()})
	if res.PValue != 1.0 {
		t.Errorf("pvalue = %v, want 1.0", res.PValue)
	}
	if !math.IsInf(res.Statistic, 1) {
		t.Errorf("statistic = %v, want +Inf", res.Statistic)
	}
	if len(res.Params) != 0 {
		t.Errorf("params = %v, want empty", res.Params)
	}
	if res.RequiredTime < 0 {
		t.Errorf("required time %v", res.RequiredTime)
	}
	if res.Name != "norm" || res.DataName != "Masses" {
		t.Errorf("identity fields = %q/%q", res.Name, res.DataName)
	}
}

func TestRunTaskSuccess(t *testing.T) {
	f, err := dist.Lookup("norm")
	if err != nil {
		t.Fatal(err)
	}
	res := RunTask(f, normalSample(t, "Masses", 300, 1), TaskOptions{Reps: 50, Seed: 9, Log: logging.Discard()})
	if math.IsInf(res.Statistic, 0) || math.IsNaN(res.Statistic) {
		t.Fatalf("statistic = %v", res.Statistic)
	}
	if res.PValue <= 0 || res.PValue > 1 {
		t.Errorf("pvalue = %v", res.PValue)
	}
	for _, name := range []string{"loc", "scale"} {
		if _, ok := res.Params[name]; !ok {
			t.Errorf("params missing %q: %v", name, res.Params)
		}
	}
	if got := res.ParamNames; !cmp.Equal(got, []string{"loc", "scale"}) {
		t.Errorf("param names = %v", got)
	}
}

func TestDispatcherRowCountAndOrder(t *testing.T) {
	fams := testFamilies(t, "uniform", "norm", "expon")
	samples := []mgf.Sample{
		normalSample(t, "Masses", 100, 2),
		normalSample(t, "Intensities", 100, 3),
	}
	d := &Dispatcher{Workers: 2, Opts: TaskOptions{Reps: 20, Seed: 4, Log: logging.Discard()}, Log: logging.Discard()}
	results := d.Run(context.Background(), fams, samples)

	if len(results) != len(fams)*len(samples) {
		t.Fatalf("got %d rows, want %d", len(results), len(fams)*len(samples))
	}
	wantOrder := []string{"uniform", "norm", "expon", "uniform", "norm", "expon"}
	for i, r := range results {
		if r.Name != wantOrder[i] {
			t.Errorf("row %d family = %q, want %q", i, r.Name, wantOrder[i])
		}
		wantData := "Masses"
		if i >= len(fams) {
			wantData = "Intensities"
		}
		if r.DataName != wantData {
			t.Errorf("row %d data = %q, want %q", i, r.DataName, wantData)
		}
	}
}

func TestDispatcherWorkerCountInvariant(t *testing.T) {
	fams := testFamilies(t, "uniform", "norm", "expon", "laplace")
	samples := []mgf.Sample{normalSample(t, "Masses", 150, 5)}
	opts := TaskOptions{Reps: 30, Seed: 11, Log: logging.Discard()}

	serial := (&Dispatcher{Workers: 1, Opts: opts, Log: logging.Discard()}).
		Run(context.Background(), fams, samples)
	parallel := (&Dispatcher{Workers: 4, Opts: opts, Log: logging.Discard()}).
		Run(context.Background(), fams, samples)

	if diff := cmp.Diff(stripTiming(t, serial), stripTiming(t, parallel)); diff != "" {
		t.Errorf("tables differ between worker counts (-serial +parallel):\n%s", diff)
	}
}

// stripTiming renders a table and drops the wall-clock column, the only
// field allowed to differ between equivalent runs.
func stripTiming(t *testing.T, results []Result) []string {
	t.Helper()
	var buf bytes.Buffer
	if err := WriteTable(&buf, results); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	for i, line := range lines {
		lines[i] = line[:strings.LastIndex(line, ",")]
	}
	return lines
}

func TestWriteTableLayout(t *testing.T) {
	results := []Result{
		{
			Name: "norm", DataName: "Masses", PValue: 0.42, Statistic: 1.5,
			Params:       map[string]float64{"loc": 1, "scale": 2},
			ParamNames:   []string{"loc", "scale"},
			RequiredTime: 1500 * time.Millisecond,
		},
		{
			Name: "gamma", DataName: "Masses", PValue: 1.0, Statistic: math.Inf(1),
			Params: map[string]float64{}, ParamNames: []string{"a", "loc", "scale"},
			RequiredTime: 10 * time.Millisecond,
		},
	}

	var buf bytes.Buffer
	if err := WriteTable(&buf, results); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines: %q", len(lines), buf.String())
	}
	if lines[0] != "name,data_name,pvalue,statistic,loc,scale,a,required_time" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "norm,Masses,0.42,1.5,1,2,,1.5" {
		t.Errorf("row 1 = %q", lines[1])
	}
	if lines[2] != "gamma,Masses,1,inf,,,,0.01" {
		t.Errorf("row 2 = %q", lines[2])
	}
}

func TestOutputFor(t *testing.T) {
	if got := OutputFor(false, 1000); got != "data_distribution_tests.csv" {
		t.Errorf("non-plotting output = %q", got)
	}
	if got := OutputFor(true, 250); got != "data_distribution_tests_250.csv" {
		t.Errorf("plotting output = %q", got)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	body := "input_dir: samples\nreps: 200\nworkers: 3\nfamilies: [norm, gamma]\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	want := Config{
		InputDir: "samples",
		Reps:     200,
		Workers:  3,
		Families: []string{"norm", "gamma"},
		PlotDir:  "plots",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Reps != 1000 || cfg.InputDir != "data" {
		t.Errorf("defaults = %+v", cfg)
	}
}

func TestLoadConfigRejectsNegatives(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("workers: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("negative workers accepted")
	}
}

func TestSummaryTop(t *testing.T) {
	csvBody := strings.Join([]string{
		"name,data_name,pvalue,statistic,loc,scale,required_time",
		"norm,Masses,0.8,0.3,0,1,0.5",
		"gamma,Masses,1,inf,,,0.1",
		"expon,Masses,0.9,0.2,0,1,0.4",
		"norm,Intensities,0.2,2.1,0,1,0.5",
	}, "\n") + "\n"

	rows, err := ReadSummary(strings.NewReader(csvBody))
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 4 {
		t.Fatalf("parsed %d rows", len(rows))
	}

	top := Top(rows, 2)
	masses := top["Masses"]
	if len(masses) != 2 || masses[0].Name != "gamma" || masses[1].Name != "expon" {
		t.Errorf("top Masses = %+v", masses)
	}
	if len(top["Intensities"]) != 1 || top["Intensities"][0].Name != "norm" {
		t.Errorf("top Intensities = %+v", top["Intensities"])
	}
}

func TestRunInfoWrite(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "results.csv")
	ri := NewRunInfo(4, 100)
	if ri.ID == "" {
		t.Fatal("empty run id")
	}
	if err := ri.Write(out, 168); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "results.run.json"))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{ri.ID, `"rows": 168`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("manifest missing %q:\n%s", want, data)
		}
	}
}

func TestTwoLineFileYieldsFiniteNormStatistic(t *testing.T) {
	// The minimal two-pair input must still produce a real norm fit: the
	// closed-form MLE needs only two distinct observations, so only
	// families without one may fall back to the sentinel.
	dir := t.TempDir()
	body := "100.123 0.5\n200.456 0.75\n"
	if err := os.WriteFile(filepath.Join(dir, "tiny.mgf"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	masses, intensities := mgf.LoadSamples(dir, logging.Discard())
	if masses.Len() != 2 || intensities.Len() != 2 {
		t.Fatalf("loaded %d/%d values", masses.Len(), intensities.Len())
	}

	fams := testFamilies(t, "uniform", "norm")
	d := &Dispatcher{Workers: 2, Opts: TaskOptions{Reps: 50, Seed: 7, Log: logging.Discard()}, Log: logging.Discard()}
	results := d.Run(context.Background(), fams, []mgf.Sample{masses, intensities})

	if len(results) != 4 {
		t.Fatalf("got %d rows", len(results))
	}
	for _, r := range results {
		if r.Name != "norm" {
			continue
		}
		if math.IsInf(r.Statistic, 0) || math.IsNaN(r.Statistic) {
			t.Errorf("norm on %s: statistic = %v, want finite", r.DataName, r.Statistic)
		}
		if r.PValue <= 0 || r.PValue > 1 {
			t.Errorf("norm on %s: pvalue = %v", r.DataName, r.PValue)
		}
		if len(r.Params) == 0 {
			t.Errorf("norm on %s: no fitted params", r.DataName)
		}
	}
}

func TestEndToEndSmallRun(t *testing.T) {
	fams := testFamilies(t, "uniform", "norm")
	samples := []mgf.Sample{
		normalSample(t, "Masses", 200, 21),
		normalSample(t, "Intensities", 200, 22),
	}
	var logBuf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logBuf, nil))
	d := &Dispatcher{Workers: 2, Opts: TaskOptions{Reps: 40, Seed: 1, Log: logging.Discard()}, Log: log}
	results := d.Run(context.Background(), fams, samples)

	if len(results) != 4 {
		t.Fatalf("got %d rows", len(results))
	}
	for _, r := range results {
		if r.Name == "norm" && math.IsInf(r.Statistic, 0) {
			t.Errorf("norm fit on normal data degenerated: %+v", r)
		}
	}
	if !strings.Contains(logBuf.String(), "dispatching tasks") {
		t.Error("dispatcher did not log progress")
	}

	out := filepath.Join(t.TempDir(), "out.csv")
	if err := WriteTableFile(out, results); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := ReadSummary(f)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 4 {
		t.Errorf("round-trip lost rows: %d", len(rows))
	}
}
