package mgf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParsePairLine(t *testing.T) {
	cases := []struct {
		line string
		mass float64
		in   float64
		ok   bool
	}{
		{"1.5 2.5", 1.5, 2.5, true},
		{"100.123 0.5", 100.123, 0.5, true},
		{"1.5.2 3.0", 0, 0, false},         // three periods
		{"a b c", 0, 0, false},             // no periods, two spaces
		{"1.5  2.5", 0, 0, false},          // two spaces
		{"1.52.5", 0, 0, false},            // no space
		{"15 25", 0, 0, false},             // no periods
		{"1.5 2", 0, 0, false},             // one period
		{"PEPMASS=273.0 1.0", 0, 0, false}, // heuristic match, left token not a float
		{"", 0, 0, false},
	}
	for _, tc := range cases {
		mass, intensity, ok := ParsePairLine(tc.line)
		if ok != tc.ok {
			t.Errorf("ParsePairLine(%q) ok = %v, want %v", tc.line, ok, tc.ok)
			continue
		}
		if ok && (mass != tc.mass || intensity != tc.in) {
			t.Errorf("ParsePairLine(%q) = (%v, %v), want (%v, %v)",
				tc.line, mass, intensity, tc.mass, tc.in)
		}
	}
}

func TestLoadSamples(t *testing.T) {
	dir := t.TempDir()
	content := "BEGIN IONS\nTITLE=spectrum 1\nPEPMASS=273.04\n100.123 0.5\n200.456 0.75\nEND IONS\n"
	if err := os.WriteFile(filepath.Join(dir, "a.mgf"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	masses, intensities := LoadSamples(dir, nil)

	if diff := cmp.Diff([]float64{100.123, 200.456}, masses.Values); diff != "" {
		t.Errorf("masses mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{0.5, 0.75}, intensities.Values); diff != "" {
		t.Errorf("intensities mismatch (-want +got):\n%s", diff)
	}
	if masses.Label != "Masses" || intensities.Label != "Intensities" {
		t.Errorf("labels = %q, %q", masses.Label, intensities.Label)
	}
}

func TestLoadSamples_Idempotent(t *testing.T) {
	dir := t.TempDir()
	content := "header\n10.5 0.1\njunk line here\n20.25 0.2\n"
	if err := os.WriteFile(filepath.Join(dir, "b.mgf"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	m1, i1 := LoadSamples(dir, nil)
	m2, i2 := LoadSamples(dir, nil)

	if diff := cmp.Diff(m1, m2); diff != "" {
		t.Errorf("re-parse changed masses:\n%s", diff)
	}
	if diff := cmp.Diff(i1, i2); diff != "" {
		t.Errorf("re-parse changed intensities:\n%s", diff)
	}
}

func TestLoadSamples_MissingDir(t *testing.T) {
	masses, intensities := LoadSamples(filepath.Join(t.TempDir(), "nope"), nil)
	if masses.Len() != 0 || intensities.Len() != 0 {
		t.Errorf("expected empty samples, got %d/%d values", masses.Len(), intensities.Len())
	}
}
