// Package dist is the catalog of parametric distribution families the
// pipeline evaluates. Every family is expressed in standard form (shape
// parameters only) and carries universal location and scale parameters the
// way scipy's continuous distributions do: pdf(x) = f((x-loc)/scale)/scale.
package dist

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/rand"
)

// Params holds fitted parameter values in declaration order: shape
// parameters first, then loc and scale.
type Params struct {
	Names  []string
	Values []float64
}

// Map returns the name → value view used for result rows.
func (p Params) Map() map[string]float64 {
	m := make(map[string]float64, len(p.Names))
	for i, n := range p.Names {
		m[n] = p.Values[i]
	}
	return m
}

// Loc returns the location parameter.
func (p Params) Loc() float64 { return p.Values[len(p.Values)-2] }

// Scale returns the scale parameter.
func (p Params) Scale() float64 { return p.Values[len(p.Values)-1] }

func (p Params) shapes() []float64 { return p.Values[:len(p.Values)-2] }

// Family is one catalog entry. The func fields describe the standard-form
// (loc=0, scale=1) distribution; the exported methods add loc/scale.
// Families are stateless and safe for concurrent use.
type Family struct {
	name   string
	shapes []string

	// support reports the standard-form support (lo, hi) for the given
	// shape values. Either bound may be infinite.
	support func(sh []float64) (lo, hi float64)

	// logPDF and cdf evaluate the standard form. Both may assume x lies
	// inside the support and the shapes passed shapeOK.
	logPDF func(sh []float64, x float64) float64
	cdf    func(sh []float64, x float64) float64

	// shapeOK validates shape values; nil means all positive.
	shapeOK func(sh []float64) bool

	// shapeInit seeds the numeric fit; nil means all ones (scipy's
	// default starting guess).
	shapeInit func(xs []float64) []float64

	// fitClosed is an optional closed-form MLE that bypasses the numeric
	// optimizer.
	fitClosed func(xs []float64) (Params, error)

	// randStd is an optional native standard-form sampler; nil falls
	// back to inverse-CDF sampling.
	randStd func(sh []float64, src rand.Source) float64
}

// Name returns the family identifier, e.g. "genextreme".
func (f *Family) Name() string { return f.name }

// NumShapes returns the number of shape parameters.
func (f *Family) NumShapes() int { return len(f.shapes) }

// ParamNames returns shape names followed by "loc" and "scale".
func (f *Family) ParamNames() []string {
	names := make([]string, 0, len(f.shapes)+2)
	names = append(names, f.shapes...)
	return append(names, "loc", "scale")
}

func (f *Family) shapesValid(sh []float64) bool {
	for _, v := range sh {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	if f.shapeOK != nil {
		return f.shapeOK(sh)
	}
	for _, v := range sh {
		if v <= 0 {
			return false
		}
	}
	return true
}

func (f *Family) paramsValid(p Params) error {
	if len(p.Values) != len(f.shapes)+2 {
		return fmt.Errorf("%s: want %d params, got %d", f.name, len(f.shapes)+2, len(p.Values))
	}
	if !f.shapesValid(p.shapes()) {
		return fmt.Errorf("%s: shape parameters out of domain", f.name)
	}
	if !(p.Scale() > 0) || math.IsInf(p.Scale(), 0) || math.IsNaN(p.Loc()) {
		return fmt.Errorf("%s: invalid loc/scale", f.name)
	}
	return nil
}

// Support returns the support of the located-and-scaled distribution.
func (f *Family) Support(p Params) (lo, hi float64) {
	slo, shi := f.support(p.shapes())
	return p.Loc() + slo*p.Scale(), p.Loc() + shi*p.Scale()
}

// LogPDF evaluates the log density at x. Points outside the support
// return -Inf.
func (f *Family) LogPDF(p Params, x float64) float64 {
	z := (x - p.Loc()) / p.Scale()
	lo, hi := f.support(p.shapes())
	if z < lo || z > hi || math.IsNaN(z) {
		return math.Inf(-1)
	}
	return f.logPDF(p.shapes(), z) - math.Log(p.Scale())
}

// PDF evaluates the density at x.
func (f *Family) PDF(p Params, x float64) float64 {
	return math.Exp(f.LogPDF(p, x))
}

// CDF evaluates the cumulative distribution at x, clamped to [0, 1].
func (f *Family) CDF(p Params, x float64) float64 {
	z := (x - p.Loc()) / p.Scale()
	lo, hi := f.support(p.shapes())
	switch {
	case math.IsNaN(z):
		return math.NaN()
	case z <= lo:
		return 0
	case z >= hi:
		return 1
	}
	v := f.cdf(p.shapes(), z)
	return math.Max(0, math.Min(1, v))
}

// stdCDF evaluates the standard-form CDF with support clamping, so the
// bisection helpers can probe arbitrary points.
func (f *Family) stdCDF(sh []float64, x float64) float64 {
	lo, hi := f.support(sh)
	switch {
	case x <= lo:
		return 0
	case x >= hi:
		return 1
	}
	return f.cdf(sh, x)
}

// Quantile inverts the CDF at probability q by bisection on the support.
func (f *Family) Quantile(p Params, q float64) float64 {
	sh := p.shapes()
	lo, hi := f.support(sh)
	z := invertCDF(func(x float64) float64 { return f.stdCDF(sh, x) }, q, lo, hi)
	return p.Loc() + z*p.Scale()
}

// Sample draws n observations from the fitted distribution.
func (f *Family) Sample(p Params, n int, src rand.Source) []float64 {
	out := make([]float64, n)
	if f.randStd != nil {
		sh := p.shapes()
		for i := range out {
			out[i] = p.Loc() + f.randStd(sh, src)*p.Scale()
		}
		return out
	}
	rng := rand.New(src)
	sh := p.shapes()
	lo, hi := f.support(sh)
	cdf := func(x float64) float64 { return f.stdCDF(sh, x) }
	for i := range out {
		u := rng.Float64()
		out[i] = p.Loc() + invertCDF(cdf, u, lo, hi)*p.Scale()
	}
	return out
}

// ErrDegenerate reports a sample unusable for fitting (too small or with
// zero spread).
var ErrDegenerate = errors.New("dist: degenerate sample")

// Fit estimates parameters by maximum likelihood. Families with a
// closed-form MLE use it and accept any two distinct observations; the
// numeric optimizer needs a few more points than shape parameters.
func (f *Family) Fit(xs []float64) (Params, error) {
	if len(xs) < 2 {
		return Params{}, ErrDegenerate
	}
	mn, mx := minMax(xs)
	if !(mx > mn) {
		return Params{}, ErrDegenerate
	}
	if f.fitClosed != nil {
		return f.fitClosed(xs)
	}
	return f.fitNumeric(xs)
}

// MustParams builds Params from values in declaration order (shapes, loc,
// scale), panicking on invalid input. Intended for tests and fixed nulls.
func (f *Family) MustParams(values ...float64) Params {
	p := Params{Names: f.ParamNames(), Values: values}
	if err := f.paramsValid(p); err != nil {
		panic(err)
	}
	return p
}

func (f *Family) newParams(shapes []float64, loc, scale float64) Params {
	vals := make([]float64, 0, len(shapes)+2)
	vals = append(vals, shapes...)
	vals = append(vals, loc, scale)
	return Params{Names: f.ParamNames(), Values: vals}
}

func minMax(xs []float64) (mn, mx float64) {
	mn, mx = xs[0], xs[0]
	for _, v := range xs[1:] {
		if v < mn {
			mn = v
		}
		if v > mx {
			mx = v
		}
	}
	return mn, mx
}
