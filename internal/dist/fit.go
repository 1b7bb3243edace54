package dist

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat"
)

// fitNumeric runs maximum likelihood over (shapes, loc, log scale) with
// Nelder-Mead. The scale is optimized on a log axis to keep it positive.
func (f *Family) fitNumeric(xs []float64) (Params, error) {
	if len(xs) < len(f.shapes)+3 {
		return Params{}, ErrDegenerate
	}
	shapes0 := f.initialShapes(xs)
	if !f.shapesValid(shapes0) {
		return Params{}, fmt.Errorf("%s: invalid initial shapes", f.name)
	}
	loc0, scale0, err := f.initialLocScale(shapes0, xs)
	if err != nil {
		return Params{}, err
	}

	nshape := len(f.shapes)
	x0 := make([]float64, nshape+2)
	copy(x0, shapes0)
	x0[nshape] = loc0
	x0[nshape+1] = math.Log(scale0)

	nll := func(v []float64) float64 {
		sh := v[:nshape]
		if !f.shapesValid(sh) {
			return math.Inf(1)
		}
		loc := v[nshape]
		scale := math.Exp(v[nshape+1])
		if !(scale > 0) || math.IsInf(scale, 0) {
			return math.Inf(1)
		}
		lo, hi := f.support(sh)
		sum := float64(len(xs)) * math.Log(scale)
		for _, x := range xs {
			z := (x - loc) / scale
			if z < lo || z > hi {
				return math.Inf(1)
			}
			lp := f.logPDF(sh, z)
			if math.IsNaN(lp) || math.IsInf(lp, 1) {
				return math.Inf(1)
			}
			sum -= lp
		}
		return sum
	}

	if math.IsInf(nll(x0), 1) {
		// Initial vertex must be feasible for Nelder-Mead. Widen the scale
		// and push loc away from the sample minimum; families whose density
		// vanishes near the support edge need the whole sample shifted
		// deeper into the support.
		loc1, logScale1 := x0[nshape], x0[nshape+1]
		ok := false
		for i := 0; i < 8 && !ok; i++ {
			x0[nshape+1] = logScale1 + float64(i)*math.Ln2
			scale := math.Exp(x0[nshape+1])
			for j := 0; j < 6; j++ {
				x0[nshape] = loc1 - float64(j)*scale
				if !math.IsInf(nll(x0), 1) {
					ok = true
					break
				}
			}
		}
		if !ok {
			return Params{}, fmt.Errorf("%s: no feasible starting point", f.name)
		}
	}

	problem := optimize.Problem{Func: nll}
	settings := &optimize.Settings{
		FuncEvaluations: 5000,
		Converger: &optimize.FunctionConverge{
			Absolute:   1e-10,
			Iterations: 200,
		},
	}
	result, err := optimize.Minimize(problem, x0, settings, &optimize.NelderMead{})
	if err != nil {
		return Params{}, fmt.Errorf("%s: fit did not converge: %w", f.name, err)
	}
	if math.IsInf(result.F, 0) || math.IsNaN(result.F) {
		return Params{}, fmt.Errorf("%s: non-finite likelihood at optimum", f.name)
	}

	v := result.X
	return f.newParams(v[:nshape], v[nshape], math.Exp(v[nshape+1])), nil
}

func (f *Family) initialShapes(xs []float64) []float64 {
	if f.shapeInit != nil {
		return f.shapeInit(xs)
	}
	sh := make([]float64, len(f.shapes))
	for i := range sh {
		sh[i] = 1
	}
	return sh
}

// initialLocScale seeds loc/scale so the whole sample sits strictly inside
// the standard support.
func (f *Family) initialLocScale(shapes []float64, xs []float64) (loc, scale float64, err error) {
	mn, mx := minMax(xs)
	span := mx - mn
	sd := math.Sqrt(stat.Variance(xs, nil))
	if !(sd > 0) {
		return 0, 0, ErrDegenerate
	}
	lo, hi := f.support(shapes)

	switch {
	case !math.IsInf(lo, 0) && !math.IsInf(hi, 0):
		scale = 1.1 * span / (hi - lo)
		loc = mn - (lo+0.05*(hi-lo))*scale
	case !math.IsInf(lo, 0):
		scale = sd
		loc = mn - (lo+0.1)*scale
	case !math.IsInf(hi, 0):
		scale = sd
		loc = mx - (hi-0.1)*scale
	default:
		scale = sd
		loc = stat.Mean(xs, nil)
	}
	if !(scale > 0) {
		return 0, 0, ErrDegenerate
	}
	return loc, scale, nil
}

// --- closed-form MLEs ---

func fitUniform(f *Family) func([]float64) (Params, error) {
	return func(xs []float64) (Params, error) {
		mn, mx := minMax(xs)
		return f.newParams(nil, mn, mx-mn), nil
	}
}

func fitNormal(f *Family) func([]float64) (Params, error) {
	return func(xs []float64) (Params, error) {
		mu := stat.Mean(xs, nil)
		var ss float64
		for _, x := range xs {
			ss += (x - mu) * (x - mu)
		}
		sigma := math.Sqrt(ss / float64(len(xs)))
		if !(sigma > 0) {
			return Params{}, ErrDegenerate
		}
		return f.newParams(nil, mu, sigma), nil
	}
}

func fitExponential(f *Family) func([]float64) (Params, error) {
	return func(xs []float64) (Params, error) {
		mn, _ := minMax(xs)
		mean := stat.Mean(xs, nil)
		if !(mean > mn) {
			return Params{}, ErrDegenerate
		}
		return f.newParams(nil, mn, mean-mn), nil
	}
}
