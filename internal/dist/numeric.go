package dist

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// Numeric toolbox shared by the hand-coded families: normal kernels,
// bisection CDF inversion, adaptive quadrature, Bessel and hypergeometric
// approximations.

const (
	logTwoPi  = 1.8378770664093454836
	sqrtTwoPi = 2.5066282746310002
)

func stdNormLogPDF(x float64) float64 { return -0.5*x*x - 0.5*logTwoPi }

func stdNormPDF(x float64) float64 { return math.Exp(-0.5*x*x) / sqrtTwoPi }

func stdNormCDF(x float64) float64 { return 0.5 * math.Erfc(-x/math.Sqrt2) }

// logStdNormCDF is log Phi(x), using the Mills-ratio asymptote deep in the
// lower tail where Phi underflows.
func logStdNormCDF(x float64) float64 {
	if x > -10 {
		return math.Log(stdNormCDF(x))
	}
	t := -x
	return -0.5*t*t - math.Log(t*sqrtTwoPi) + math.Log1p(-1/(t*t)+3/(t*t*t*t))
}

func lgamma(x float64) float64 {
	v, _ := math.Lgamma(x)
	return v
}

func betaLn(a, b float64) float64 {
	return lgamma(a) + lgamma(b) - lgamma(a+b)
}

// invertCDF solves cdf(x) = q on the support (lo, hi) by bisection,
// expanding infinite bounds until they bracket q.
func invertCDF(cdf func(float64) float64, q, lo, hi float64) float64 {
	a, b := lo, hi
	if math.IsInf(a, -1) {
		a = -1
		if !math.IsInf(b, 1) {
			a = b - 1
		}
		for cdf(a) > q {
			a = a*2 - 1
			if a < -1e300 {
				break
			}
		}
	}
	if math.IsInf(b, 1) {
		b = 1
		if !math.IsInf(lo, -1) {
			b = lo + 1
		}
		for cdf(b) < q {
			b = b*2 + 1
			if b > 1e300 {
				break
			}
		}
	}
	for i := 0; i < 200; i++ {
		mid := 0.5 * (a + b)
		if cdf(mid) < q {
			a = mid
		} else {
			b = mid
		}
		if b-a <= 1e-13*(1+math.Abs(a)) {
			break
		}
	}
	return 0.5 * (a + b)
}

// simpson integrates f on [a, b] with adaptive Simpson's rule.
func simpson(f func(float64) float64, a, b float64) float64 {
	fa, fm, fb := f(a), f(0.5*(a+b)), f(b)
	whole := (b - a) / 6 * (fa + 4*fm + fb)
	return simpsonStep(f, a, b, fa, fm, fb, whole, 1e-10, 24)
}

func simpsonStep(f func(float64) float64, a, b, fa, fm, fb, whole, tol float64, depth int) float64 {
	m := 0.5 * (a + b)
	lm, rm := 0.5*(a+m), 0.5*(m+b)
	flm, frm := f(lm), f(rm)
	left := (m - a) / 6 * (fa + 4*flm + fm)
	right := (b - m) / 6 * (fm + 4*frm + fb)
	if depth <= 0 || math.Abs(left+right-whole) <= 15*tol {
		return left + right + (left+right-whole)/15
	}
	return simpsonStep(f, a, m, fa, flm, fm, left, tol/2, depth-1) +
		simpsonStep(f, m, b, fm, frm, fb, right, tol/2, depth-1)
}

// gaussLegendre integrates f on [a, b] with a fixed-order Gauss-Legendre
// rule. Densities defined by nested integrals use it instead of adaptive
// quadrature so a single evaluation has a fixed, small cost.
func gaussLegendre(f func(float64) float64, a, b float64, n int) float64 {
	if b <= a {
		return 0
	}
	return quad.Fixed(f, a, b, n, quad.Legendre{}, 0)
}

// integratePDF integrates a density over [a, b]; infinite endpoints are
// mapped through x = tan(t).
func integratePDF(pdf func(float64) float64, a, b float64) float64 {
	if !math.IsInf(a, 0) && !math.IsInf(b, 0) {
		if b <= a {
			return 0
		}
		return simpson(pdf, a, b)
	}
	ta, tb := math.Atan(a), math.Atan(b)
	g := func(t float64) float64 {
		c := math.Cos(t)
		x := math.Tan(t)
		v := pdf(x) / (c * c)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0
		}
		return v
	}
	// Stay off the singular endpoints.
	const eps = 1e-10
	if math.IsInf(a, -1) {
		ta = -math.Pi/2 + eps
	}
	if math.IsInf(b, 1) {
		tb = math.Pi/2 - eps
	}
	if tb <= ta {
		return 0
	}
	return simpson(g, ta, tb)
}

// numericLogPDF differentiates a CDF when no closed-form density exists.
func numericLogPDF(cdf func(float64) float64, x float64) float64 {
	h := 1e-6 * (1 + math.Abs(x))
	p := (cdf(x+h) - cdf(x-h)) / (2 * h)
	if p <= 0 {
		return math.Inf(-1)
	}
	return math.Log(p)
}

func poissonLogPMF(lambda float64, k int) float64 {
	fk := float64(k)
	return -lambda + fk*math.Log(lambda) - lgamma(fk+1)
}

// --- Bessel approximations (Abramowitz & Stegun 9.8) ---

func besselI0(x float64) float64 {
	ax := math.Abs(x)
	if ax < 3.75 {
		t := x / 3.75
		t *= t
		return 1 + t*(3.5156229+t*(3.0899424+t*(1.2067492+
			t*(0.2659732+t*(0.0360768+t*0.0045813)))))
	}
	u := 3.75 / ax
	return math.Exp(ax) / math.Sqrt(ax) * (0.39894228 + u*(0.01328592+
		u*(0.00225319+u*(-0.00157565+u*(0.00916281+u*(-0.02057706+
			u*(0.02635537+u*(-0.01647633+u*0.00392377))))))))
}

// logBesselI0 avoids overflow for large arguments.
func logBesselI0(x float64) float64 {
	ax := math.Abs(x)
	if ax < 3.75 {
		return math.Log(besselI0(x))
	}
	u := 3.75 / ax
	poly := 0.39894228 + u*(0.01328592+u*(0.00225319+u*(-0.00157565+
		u*(0.00916281+u*(-0.02057706+u*(0.02635537+u*(-0.01647633+
			u*0.00392377)))))))
	return ax + math.Log(poly/math.Sqrt(ax))
}

func besselI1(x float64) float64 {
	ax := math.Abs(x)
	var v float64
	if ax < 3.75 {
		t := x / 3.75
		t *= t
		v = ax * (0.5 + t*(0.87890594+t*(0.51498869+t*(0.15084934+
			t*(0.02658733+t*(0.00301532+t*0.00032411))))))
	} else {
		u := 3.75 / ax
		v = math.Exp(ax) / math.Sqrt(ax) * (0.39894228 + u*(-0.03988024+
			u*(-0.00362018+u*(0.00163801+u*(-0.01031555+u*(0.02282967+
				u*(-0.02895312+u*(0.01787654+u*-0.00420059))))))))
	}
	if x < 0 {
		return -v
	}
	return v
}

func besselK1(x float64) float64 {
	if x <= 2 {
		t := x * x / 4
		return math.Log(x/2)*besselI1(x) + (1/x)*(1+t*(0.15443144+
			t*(-0.67278579+t*(-0.18156897+t*(-0.01919402+t*(-0.00110404+
				t*-0.00004686))))))
	}
	u := 2 / x
	return math.Exp(-x) / math.Sqrt(x) * (1.25331414 + u*(0.23498619+
		u*(-0.03655620+u*(0.01504268+u*(-0.00780353+u*(0.00325614+
			u*-0.00068245))))))
}

// hyp2f1 evaluates the Gauss hypergeometric function for x < 1 using the
// defining series, reaching negative arguments through the Pfaff
// transformation.
func hyp2f1(a, b, c, x float64) float64 {
	if x < 0 {
		return math.Pow(1-x, -a) * hyp2f1(a, c-b, c, x/(x-1))
	}
	if x >= 1 {
		return math.NaN()
	}
	term := 1.0
	sum := 1.0
	for n := 0; n < 2000; n++ {
		fn := float64(n)
		term *= (a + fn) * (b + fn) / ((c + fn) * (fn + 1)) * x
		sum += term
		if math.Abs(term) < 1e-14*math.Abs(sum) {
			break
		}
	}
	return sum
}
