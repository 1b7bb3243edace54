package dist

import (
	"math"
	"testing"
)

func TestCatalogSizeAndUniqueness(t *testing.T) {
	fams := Catalog()
	if len(fams) != 84 {
		t.Fatalf("catalog has %d families, want 84", len(fams))
	}
	seen := make(map[string]bool, len(fams))
	for _, f := range fams {
		if seen[f.Name()] {
			t.Errorf("duplicate family %q", f.Name())
		}
		seen[f.Name()] = true
	}
}

func TestCatalogOrderStable(t *testing.T) {
	names := Names()
	if names[0] != "uniform" || names[1] != "norm" || names[2] != "loggamma" {
		t.Errorf("catalog head = %v", names[:3])
	}
	if names[len(names)-1] != "wrapcauchy" {
		t.Errorf("catalog tail = %q", names[len(names)-1])
	}
}

func TestLookup(t *testing.T) {
	f, err := Lookup("genextreme")
	if err != nil {
		t.Fatal(err)
	}
	if f.Name() != "genextreme" {
		t.Errorf("Lookup returned %q", f.Name())
	}
	if _, err := Lookup("no-such-family"); err == nil {
		t.Error("Lookup of unknown family did not error")
	}
}

func TestParamNamesEndWithLocScale(t *testing.T) {
	for _, f := range Catalog() {
		names := f.ParamNames()
		if len(names) < 2 {
			t.Fatalf("%s: too few param names", f.Name())
		}
		if names[len(names)-2] != "loc" || names[len(names)-1] != "scale" {
			t.Errorf("%s: param names %v do not end with loc, scale", f.Name(), names)
		}
		if len(names) != f.NumShapes()+2 {
			t.Errorf("%s: %d names for %d shapes", f.Name(), len(names), f.NumShapes())
		}
	}
}

// Every family must evaluate to a sane CDF at its default shape guess:
// nondecreasing, bounded in [0, 1], 0 below support and 1 above.
func TestCatalogCDFSanity(t *testing.T) {
	for _, f := range Catalog() {
		f := f
		t.Run(f.Name(), func(t *testing.T) {
			p := defaultParams(f)
			lo, hi := f.Support(p)
			pts := probePoints(lo, hi)
			prev := -1.0
			for _, x := range pts {
				v := f.CDF(p, x)
				if math.IsNaN(v) || v < 0 || v > 1 {
					t.Fatalf("CDF(%v) = %v", x, v)
				}
				if v < prev-1e-9 {
					t.Fatalf("CDF decreasing at %v: %v < %v", x, v, prev)
				}
				prev = v
			}
			if lo > math.Inf(-1) {
				if v := f.CDF(p, lo-1); v != 0 {
					t.Errorf("CDF below support = %v", v)
				}
			}
			if hi < math.Inf(1) {
				if v := f.CDF(p, hi+1); v != 1 {
					t.Errorf("CDF above support = %v", v)
				}
			}
		})
	}
}

func TestCatalogLogPDFOutsideSupport(t *testing.T) {
	for _, f := range Catalog() {
		p := defaultParams(f)
		lo, hi := f.Support(p)
		if lo > math.Inf(-1) {
			if v := f.LogPDF(p, lo-1); !math.IsInf(v, -1) {
				t.Errorf("%s: LogPDF below support = %v", f.Name(), v)
			}
		}
		if hi < math.Inf(1) {
			if v := f.LogPDF(p, hi+1); !math.IsInf(v, -1) {
				t.Errorf("%s: LogPDF above support = %v", f.Name(), v)
			}
		}
	}
}

// defaultParams builds a standard-form parameter set from the family's
// default shape guess.
func defaultParams(f *Family) Params {
	sh := make([]float64, f.NumShapes())
	for i := range sh {
		sh[i] = 1
	}
	if f.shapeInit != nil {
		sh = f.shapeInit([]float64{0.25, 0.5, 0.75})
	}
	vals := append(append([]float64{}, sh...), 0, 1)
	return Params{Names: f.ParamNames(), Values: vals}
}

func probePoints(lo, hi float64) []float64 {
	a, b := lo, hi
	if math.IsInf(a, -1) {
		a = -5
		if b < a {
			a = b - 10
		}
	}
	if math.IsInf(b, 1) {
		b = a + 10
	}
	const n = 21
	pts := make([]float64, 0, n)
	span := b - a
	for i := 0; i < n; i++ {
		// Keep strictly inside the support to dodge edge singularities.
		frac := (float64(i) + 0.5) / n
		pts = append(pts, a+frac*span)
	}
	return pts
}
