// Package mgf reads Mascot Generic Format spectra files.
//
// Two readers live here. LoadSamples is the permissive pair scanner the
// fitting pipeline runs on: any line shaped like "<float> <float>" with no
// other periods or spaces is a data row. ParseDocument is the structured
// reader for BEGIN IONS blocks and their key=value metadata.
package mgf

import (
	"bufio"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Sample is an ordered sequence of observations with a source label.
// Immutable once loaded.
type Sample struct {
	Label  string
	Values []float64
}

// Len returns the number of observations.
func (s Sample) Len() int { return len(s.Values) }

// LoadSamples scans every *.mgf file under dir and extracts the mass and
// intensity sequences. A missing or empty directory yields empty samples;
// unreadable files are skipped. Files are visited in sorted path order so
// repeated loads produce identical sequences.
func LoadSamples(dir string, logger *slog.Logger) (masses, intensities Sample) {
	masses = Sample{Label: "Masses"}
	intensities = Sample{Label: "Intensities"}

	paths, err := filepath.Glob(filepath.Join(dir, "*.mgf"))
	if err != nil || len(paths) == 0 {
		if logger != nil {
			logger.Warn("no mgf files found", "dir", dir)
		}
		return masses, intensities
	}
	sort.Strings(paths)

	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			if logger != nil {
				logger.Warn("skipping unreadable file", "path", path, "error", err)
			}
			continue
		}
		scanner := bufio.NewScanner(f)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			mass, intensity, ok := ParsePairLine(scanner.Text())
			if !ok {
				continue
			}
			masses.Values = append(masses.Values, mass)
			intensities.Values = append(intensities.Values, intensity)
		}
		f.Close()
	}

	if logger != nil {
		logger.Info("samples loaded",
			"files", len(paths), "masses", masses.Len(), "intensities", intensities.Len())
	}
	return masses, intensities
}

// ParsePairLine applies the data-line heuristic: a line is a (mass,
// intensity) pair iff it contains exactly two periods and exactly one
// space, and both space-separated tokens parse as floats. Everything else
// (headers, metadata, malformed rows) is not a data line.
//
// The heuristic is deliberately permissive and can match metadata lines
// that happen to have this shape; callers accept that trade-off.
func ParsePairLine(line string) (mass, intensity float64, ok bool) {
	if strings.Count(line, ".") != 2 || strings.Count(line, " ") != 1 {
		return 0, 0, false
	}
	left, right, _ := strings.Cut(line, " ")
	mass, err := strconv.ParseFloat(strings.TrimSpace(left), 64)
	if err != nil {
		return 0, 0, false
	}
	intensity, err = strconv.ParseFloat(strings.TrimSpace(right), 64)
	if err != nil {
		return 0, 0, false
	}
	return mass, intensity, true
}
