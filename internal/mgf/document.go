package mgf

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Peak is one (m/z, intensity) entry from a spectrum block.
type Peak struct {
	Mass      float64
	Intensity float64
}

// Spectrum is one BEGIN IONS / END IONS block with its metadata.
type Spectrum struct {
	FeatureID     string
	Filename      string
	IonMode       string
	PepMass       float64
	RetentionTime float64
	Scans         string
	MSLevel       int
	Charge        int // signed; "2-" parses to -2
	MergedScans   string
	MergedStats   string
	PubMedID      string
	Extra         map[string]string // metadata keys not modeled above
	Peaks         []Peak
}

// Document is the structured content of one MGF file.
type Document struct {
	Spectra []Spectrum
}

// ParseDocument reads a full MGF document. Lines outside BEGIN IONS blocks
// are ignored. Inside a block, KEY=VALUE lines populate metadata and
// numeric pair lines populate the peak list. A malformed metadata value is
// an error; an unterminated block is an error.
func ParseDocument(r io.Reader) (*Document, error) {
	doc := &Document{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var cur *Spectrum
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")

		switch {
		case line == "BEGIN IONS":
			if cur != nil {
				return nil, fmt.Errorf("line %d: nested BEGIN IONS", lineNo)
			}
			cur = &Spectrum{Extra: map[string]string{}}
		case line == "END IONS":
			if cur == nil {
				return nil, fmt.Errorf("line %d: END IONS without BEGIN IONS", lineNo)
			}
			doc.Spectra = append(doc.Spectra, *cur)
			cur = nil
		case cur == nil || line == "":
			// outside a block, or blank
		case strings.Contains(line, "="):
			key, value, _ := strings.Cut(line, "=")
			if err := cur.setMeta(key, value); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
		default:
			fields := strings.Fields(line)
			if len(fields) < 2 {
				continue
			}
			mass, err1 := strconv.ParseFloat(fields[0], 64)
			intensity, err2 := strconv.ParseFloat(fields[1], 64)
			if err1 != nil || err2 != nil {
				continue
			}
			cur.Peaks = append(cur.Peaks, Peak{Mass: mass, Intensity: intensity})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if cur != nil {
		return nil, fmt.Errorf("unterminated BEGIN IONS block")
	}
	return doc, nil
}

func (s *Spectrum) setMeta(key, value string) error {
	switch key {
	case "FEATURE_ID":
		s.FeatureID = value
	case "FILENAME":
		s.Filename = value
	case "IONMODE":
		s.IonMode = strings.ToLower(value)
	case "PEPMASS":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("bad PEPMASS %q: %w", value, err)
		}
		s.PepMass = v
	case "RTINSECONDS":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("bad RTINSECONDS %q: %w", value, err)
		}
		s.RetentionTime = v
	case "SCANS":
		s.Scans = value
	case "MSLEVEL":
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("bad MSLEVEL %q: %w", value, err)
		}
		s.MSLevel = v
	case "CHARGE":
		v, err := parseCharge(value)
		if err != nil {
			return err
		}
		s.Charge = v
	case "MERGED_SCANS":
		s.MergedScans = value
	case "MERGED_STATS":
		s.MergedStats = value
	case "PUBMED":
		s.PubMedID = value
	default:
		s.Extra[key] = value
	}
	return nil
}

// parseCharge accepts "2", "2+", or "2-" (sign suffix form used by MGF).
func parseCharge(value string) (int, error) {
	v := strings.TrimSpace(value)
	sign := 1
	if strings.HasSuffix(v, "+") {
		v = strings.TrimSuffix(v, "+")
	} else if strings.HasSuffix(v, "-") {
		sign = -1
		v = strings.TrimSuffix(v, "-")
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("bad CHARGE %q: %w", value, err)
	}
	return sign * n, nil
}

// Stats summarizes a document for the scan subcommand.
type Stats struct {
	Spectra  int
	Peaks    int
	MinMass  float64
	MaxMass  float64
	IonModes map[string]int
	MSLevels map[int]int
}

// Summarize computes document-level statistics.
func (d *Document) Summarize() Stats {
	st := Stats{IonModes: map[string]int{}, MSLevels: map[int]int{}}
	st.Spectra = len(d.Spectra)
	first := true
	for _, sp := range d.Spectra {
		if sp.IonMode != "" {
			st.IonModes[sp.IonMode]++
		}
		if sp.MSLevel != 0 {
			st.MSLevels[sp.MSLevel]++
		}
		for _, p := range sp.Peaks {
			st.Peaks++
			if first || p.Mass < st.MinMass {
				st.MinMass = p.Mass
			}
			if first || p.Mass > st.MaxMass {
				st.MaxMass = p.Mass
			}
			first = false
		}
	}
	return st
}
