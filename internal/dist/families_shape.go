package dist

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// Hand-coded families with closed-form densities and CDFs, expressed via
// gonum mathext special functions where needed.

func newAlpha() *Family {
	return &Family{
		name:    "alpha",
		shapes:  []string{"a"},
		support: supportPos,
		logPDF: func(sh []float64, x float64) float64 {
			a := sh[0]
			d := a - 1/x
			return -2*math.Log(x) - math.Log(stdNormCDF(a)) - 0.5*logTwoPi - 0.5*d*d
		},
		cdf: func(sh []float64, x float64) float64 {
			a := sh[0]
			return stdNormCDF(a-1/x) / stdNormCDF(a)
		},
	}
}

func newAnglit() *Family {
	return &Family{
		name:    "anglit",
		support: func([]float64) (float64, float64) { return -math.Pi / 4, math.Pi / 4 },
		logPDF: func(_ []float64, x float64) float64 {
			return math.Log(math.Cos(2 * x))
		},
		cdf: func(_ []float64, x float64) float64 {
			s := math.Sin(x + math.Pi/4)
			return s * s
		},
	}
}

func newArcsine() *Family {
	return &Family{
		name:    "arcsine",
		support: supportUnit,
		logPDF: func(_ []float64, x float64) float64 {
			return -math.Log(math.Pi) - 0.5*math.Log(x*(1-x))
		},
		cdf: func(_ []float64, x float64) float64 {
			return 2 / math.Pi * math.Asin(math.Sqrt(x))
		},
	}
}

func newBetaPrime() *Family {
	return &Family{
		name:    "betaprime",
		shapes:  []string{"a", "b"},
		support: supportPos,
		logPDF: func(sh []float64, x float64) float64 {
			a, b := sh[0], sh[1]
			return (a-1)*math.Log(x) - (a+b)*math.Log1p(x) - betaLn(a, b)
		},
		cdf: func(sh []float64, x float64) float64 {
			return mathext.RegIncBeta(sh[0], sh[1], x/(1+x))
		},
	}
}

func newBradford() *Family {
	return &Family{
		name:    "bradford",
		shapes:  []string{"c"},
		support: supportUnit,
		logPDF: func(sh []float64, x float64) float64 {
			c := sh[0]
			return math.Log(c) - math.Log1p(c*x) - math.Log(math.Log1p(c))
		},
		cdf: func(sh []float64, x float64) float64 {
			c := sh[0]
			return math.Log1p(c*x) / math.Log1p(c)
		},
	}
}

// Burr III in scipy's "burr" spelling.
func newBurrIII() *Family {
	return &Family{
		name:    "burr",
		shapes:  []string{"c", "d"},
		support: supportPos,
		logPDF: func(sh []float64, x float64) float64 {
			c, d := sh[0], sh[1]
			return math.Log(c) + math.Log(d) - (c+1)*math.Log(x) -
				(d+1)*math.Log1p(math.Pow(x, -c))
		},
		cdf: func(sh []float64, x float64) float64 {
			c, d := sh[0], sh[1]
			return math.Pow(1+math.Pow(x, -c), -d)
		},
	}
}

func newBurrXII() *Family {
	return &Family{
		name:    "burr12",
		shapes:  []string{"c", "d"},
		support: supportPos,
		logPDF: func(sh []float64, x float64) float64 {
			c, d := sh[0], sh[1]
			return math.Log(c) + math.Log(d) + (c-1)*math.Log(x) -
				(d+1)*math.Log1p(math.Pow(x, c))
		},
		cdf: func(sh []float64, x float64) float64 {
			c, d := sh[0], sh[1]
			return -math.Expm1(-d * math.Log1p(math.Pow(x, c)))
		},
	}
}

func newSkewCauchy() *Family {
	return &Family{
		name:      "skewcauchy",
		shapes:    []string{"a"},
		support:   supportReal,
		shapeOK:   func(sh []float64) bool { return math.Abs(sh[0]) < 1 },
		shapeInit: func([]float64) []float64 { return []float64{0.5} },
		logPDF: func(sh []float64, x float64) float64 {
			a := sh[0]
			w := 1 + a*sign(x)
			return -math.Log(math.Pi) - math.Log1p((x/w)*(x/w))
		},
		cdf: func(sh []float64, x float64) float64 {
			a := sh[0]
			if x >= 0 {
				return (1-a)/2 + (1+a)/math.Pi*math.Atan(x/(1+a))
			}
			return (1-a)/2 + (1-a)/math.Pi*math.Atan(x/(1-a))
		},
	}
}

func newChi() *Family {
	return &Family{
		name:    "chi",
		shapes:  []string{"df"},
		support: supportPos,
		logPDF: func(sh []float64, x float64) float64 {
			df := sh[0]
			return (df-1)*math.Log(x) - x*x/2 - (df/2-1)*math.Ln2 - lgamma(df/2)
		},
		cdf: func(sh []float64, x float64) float64 {
			return mathext.GammaIncReg(sh[0]/2, x*x/2)
		},
	}
}

func newDoubleGamma() *Family {
	return &Family{
		name:    "dgamma",
		shapes:  []string{"a"},
		support: supportReal,
		logPDF: func(sh []float64, x float64) float64 {
			a := sh[0]
			ax := math.Abs(x)
			return (a-1)*math.Log(ax) - ax - math.Ln2 - lgamma(a)
		},
		cdf: func(sh []float64, x float64) float64 {
			a := sh[0]
			if x <= 0 {
				return 0.5 * mathext.GammaIncRegComp(a, -x)
			}
			return 0.5 + 0.5*mathext.GammaIncReg(a, x)
		},
	}
}

func newDoubleWeibull() *Family {
	return &Family{
		name:    "dweibull",
		shapes:  []string{"c"},
		support: supportReal,
		logPDF: func(sh []float64, x float64) float64 {
			c := sh[0]
			ax := math.Abs(x)
			return math.Log(c/2) + (c-1)*math.Log(ax) - math.Pow(ax, c)
		},
		cdf: func(sh []float64, x float64) float64 {
			c := sh[0]
			if x <= 0 {
				return 0.5 * math.Exp(-math.Pow(-x, c))
			}
			return 1 - 0.5*math.Exp(-math.Pow(x, c))
		},
	}
}

func newExponWeib() *Family {
	return &Family{
		name:    "exponweib",
		shapes:  []string{"a", "c"},
		support: supportPos,
		logPDF: func(sh []float64, x float64) float64 {
			a, c := sh[0], sh[1]
			xc := math.Pow(x, c)
			return math.Log(a) + math.Log(c) + (a-1)*math.Log(-math.Expm1(-xc)) -
				xc + (c-1)*math.Log(x)
		},
		cdf: func(sh []float64, x float64) float64 {
			a, c := sh[0], sh[1]
			return math.Exp(a * math.Log(-math.Expm1(-math.Pow(x, c))))
		},
	}
}

func newExponPow() *Family {
	return &Family{
		name:    "exponpow",
		shapes:  []string{"b"},
		support: supportPos,
		logPDF: func(sh []float64, x float64) float64 {
			b := sh[0]
			xb := math.Pow(x, b)
			return math.Log(b) + (b-1)*math.Log(x) + 1 + xb - math.Exp(xb)
		},
		cdf: func(sh []float64, x float64) float64 {
			return -math.Expm1(1 - math.Exp(math.Pow(x, sh[0])))
		},
	}
}

func newFatigueLife() *Family {
	return &Family{
		name:    "fatiguelife",
		shapes:  []string{"c"},
		support: supportPos,
		logPDF: func(sh []float64, x float64) float64 {
			c := sh[0]
			return math.Log(x+1) - math.Log(2*c) - 0.5*(logTwoPi+3*math.Log(x)) -
				(x-1)*(x-1)/(2*x*c*c)
		},
		cdf: func(sh []float64, x float64) float64 {
			c := sh[0]
			sx := math.Sqrt(x)
			return stdNormCDF((sx - 1/sx) / c)
		},
	}
}

func newFisk() *Family {
	return &Family{
		name:    "fisk",
		shapes:  []string{"c"},
		support: supportPos,
		logPDF: func(sh []float64, x float64) float64 {
			c := sh[0]
			return math.Log(c) - (c+1)*math.Log(x) - 2*math.Log1p(math.Pow(x, -c))
		},
		cdf: func(sh []float64, x float64) float64 {
			return 1 / (1 + math.Pow(x, -sh[0]))
		},
	}
}

func newFoldedCauchy() *Family {
	return &Family{
		name:    "foldcauchy",
		shapes:  []string{"c"},
		support: supportPos,
		shapeOK: func(sh []float64) bool { return sh[0] >= 0 },
		logPDF: func(sh []float64, x float64) float64 {
			c := sh[0]
			return math.Log(1/(1+(x-c)*(x-c))+1/(1+(x+c)*(x+c))) - math.Log(math.Pi)
		},
		cdf: func(sh []float64, x float64) float64 {
			c := sh[0]
			return (math.Atan(x-c) + math.Atan(x+c)) / math.Pi
		},
	}
}

func newFoldedNormal() *Family {
	return &Family{
		name:    "foldnorm",
		shapes:  []string{"c"},
		support: supportPos,
		shapeOK: func(sh []float64) bool { return sh[0] >= 0 },
		logPDF: func(sh []float64, x float64) float64 {
			c := sh[0]
			return math.Log(stdNormPDF(x-c) + stdNormPDF(x+c))
		},
		cdf: func(sh []float64, x float64) float64 {
			c := sh[0]
			return stdNormCDF(x-c) + stdNormCDF(x+c) - 1
		},
	}
}

func newGenLogistic() *Family {
	return &Family{
		name:    "genlogistic",
		shapes:  []string{"c"},
		support: supportReal,
		logPDF: func(sh []float64, x float64) float64 {
			c := sh[0]
			return math.Log(c) - x - (c+1)*math.Log1p(math.Exp(-x))
		},
		cdf: func(sh []float64, x float64) float64 {
			return math.Exp(-sh[0] * math.Log1p(math.Exp(-x)))
		},
	}
}

func newGenPareto() *Family {
	return &Family{
		name:   "genpareto",
		shapes: []string{"c"},
		support: func(sh []float64) (float64, float64) {
			c := sh[0]
			if c < 0 {
				return 0, -1 / c
			}
			return 0, math.Inf(1)
		},
		shapeOK: func(sh []float64) bool { return true },
		logPDF: func(sh []float64, x float64) float64 {
			c := sh[0]
			if math.Abs(c) < 1e-9 {
				return -x
			}
			return -(1/c + 1) * math.Log1p(c*x)
		},
		cdf: func(sh []float64, x float64) float64 {
			c := sh[0]
			if math.Abs(c) < 1e-9 {
				return -math.Expm1(-x)
			}
			return -math.Expm1(-math.Log1p(c*x) / c)
		},
	}
}

// genextreme uses scipy's sign convention: cdf = exp(-(1-cx)^(1/c)).
func newGenExtreme() *Family {
	return &Family{
		name:   "genextreme",
		shapes: []string{"c"},
		support: func(sh []float64) (float64, float64) {
			c := sh[0]
			switch {
			case c > 1e-9:
				return math.Inf(-1), 1 / c
			case c < -1e-9:
				return 1 / c, math.Inf(1)
			}
			return math.Inf(-1), math.Inf(1)
		},
		shapeOK: func(sh []float64) bool { return true },
		logPDF: func(sh []float64, x float64) float64 {
			c := sh[0]
			if math.Abs(c) < 1e-9 {
				return -x - math.Exp(-x)
			}
			lt := math.Log1p(-c*x) / c
			return (1/c-1)*math.Log1p(-c*x) - math.Exp(lt)
		},
		cdf: func(sh []float64, x float64) float64 {
			c := sh[0]
			if math.Abs(c) < 1e-9 {
				return math.Exp(-math.Exp(-x))
			}
			return math.Exp(-math.Exp(math.Log1p(-c*x) / c))
		},
	}
}

func newGenGamma() *Family {
	return &Family{
		name:    "gengamma",
		shapes:  []string{"a", "c"},
		support: supportPos,
		shapeOK: func(sh []float64) bool { return sh[0] > 0 && sh[1] != 0 },
		logPDF: func(sh []float64, x float64) float64 {
			a, c := sh[0], sh[1]
			return math.Log(math.Abs(c)) + (c*a-1)*math.Log(x) - math.Pow(x, c) - lgamma(a)
		},
		cdf: func(sh []float64, x float64) float64 {
			a, c := sh[0], sh[1]
			if c > 0 {
				return mathext.GammaIncReg(a, math.Pow(x, c))
			}
			return mathext.GammaIncRegComp(a, math.Pow(x, c))
		},
	}
}

func newGenHalfLogistic() *Family {
	return &Family{
		name:    "genhalflogistic",
		shapes:  []string{"c"},
		support: func(sh []float64) (float64, float64) { return 0, 1 / sh[0] },
		logPDF: func(sh []float64, x float64) float64 {
			c := sh[0]
			t := math.Exp(math.Log1p(-c*x) / c)
			return math.Ln2 + (1/c-1)*math.Log1p(-c*x) - 2*math.Log1p(t)
		},
		cdf: func(sh []float64, x float64) float64 {
			c := sh[0]
			t := math.Exp(math.Log1p(-c*x) / c)
			return (1 - t) / (1 + t)
		},
	}
}

func newGenNormal() *Family {
	return &Family{
		name:    "gennorm",
		shapes:  []string{"beta"},
		support: supportReal,
		logPDF: func(sh []float64, x float64) float64 {
			b := sh[0]
			return math.Log(b) - math.Ln2 - lgamma(1/b) - math.Pow(math.Abs(x), b)
		},
		cdf: func(sh []float64, x float64) float64 {
			b := sh[0]
			half := 0.5 * mathext.GammaIncReg(1/b, math.Pow(math.Abs(x), b))
			if x < 0 {
				return 0.5 - half
			}
			return 0.5 + half
		},
	}
}

func newGompertz() *Family {
	return &Family{
		name:    "gompertz",
		shapes:  []string{"c"},
		support: supportPos,
		logPDF: func(sh []float64, x float64) float64 {
			c := sh[0]
			return math.Log(c) + x - c*math.Expm1(x)
		},
		cdf: func(sh []float64, x float64) float64 {
			return -math.Expm1(-sh[0] * math.Expm1(x))
		},
	}
}

func newHalfCauchy() *Family {
	return &Family{
		name:    "halfcauchy",
		support: supportPos,
		logPDF: func(_ []float64, x float64) float64 {
			return math.Log(2/math.Pi) - math.Log1p(x*x)
		},
		cdf: func(_ []float64, x float64) float64 {
			return 2 / math.Pi * math.Atan(x)
		},
	}
}

func newHalfNormal() *Family {
	return &Family{
		name:    "halfnorm",
		support: supportPos,
		logPDF: func(_ []float64, x float64) float64 {
			return 0.5*math.Log(2/math.Pi) - x*x/2
		},
		cdf: func(_ []float64, x float64) float64 {
			return math.Erf(x / math.Sqrt2)
		},
	}
}

func newHalfLogistic() *Family {
	return &Family{
		name:    "halflogistic",
		support: supportPos,
		logPDF: func(_ []float64, x float64) float64 {
			return math.Ln2 - x - 2*math.Log1p(math.Exp(-x))
		},
		cdf: func(_ []float64, x float64) float64 {
			return math.Tanh(x / 2)
		},
	}
}

func invGaussCDF(mu, x float64) float64 {
	sx := math.Sqrt(x)
	a := stdNormCDF((x/mu - 1) / sx)
	b := math.Exp(2/mu + logStdNormCDF(-(x/mu+1)/sx))
	return a + b
}

func invGaussLogPDF(mu, x float64) float64 {
	d := x - mu
	return -0.5*logTwoPi - 1.5*math.Log(x) - d*d/(2*mu*mu*x)
}

func newInvGauss() *Family {
	return &Family{
		name:    "invgauss",
		shapes:  []string{"mu"},
		support: supportPos,
		logPDF:  func(sh []float64, x float64) float64 { return invGaussLogPDF(sh[0], x) },
		cdf:     func(sh []float64, x float64) float64 { return invGaussCDF(sh[0], x) },
	}
}

func newWald() *Family {
	return &Family{
		name:    "wald",
		support: supportPos,
		logPDF:  func(_ []float64, x float64) float64 { return invGaussLogPDF(1, x) },
		cdf:     func(_ []float64, x float64) float64 { return invGaussCDF(1, x) },
	}
}

func newRecipInvGauss() *Family {
	return &Family{
		name:    "recipinvgauss",
		shapes:  []string{"mu"},
		support: supportPos,
		logPDF: func(sh []float64, x float64) float64 {
			mu := sh[0]
			d := 1 - mu*x
			return -0.5*logTwoPi - 0.5*math.Log(x) - d*d/(2*x*mu*mu)
		},
		cdf: func(sh []float64, x float64) float64 {
			return 1 - invGaussCDF(sh[0], 1/x)
		},
	}
}

func newInvWeibull() *Family {
	return &Family{
		name:    "invweibull",
		shapes:  []string{"c"},
		support: supportPos,
		logPDF: func(sh []float64, x float64) float64 {
			c := sh[0]
			return math.Log(c) - (c+1)*math.Log(x) - math.Pow(x, -c)
		},
		cdf: func(sh []float64, x float64) float64 {
			return math.Exp(-math.Pow(x, -sh[0]))
		},
	}
}

func newJohnsonSB() *Family {
	return &Family{
		name:    "johnsonsb",
		shapes:  []string{"a", "b"},
		support: supportUnit,
		shapeOK: func(sh []float64) bool { return sh[1] > 0 },
		logPDF: func(sh []float64, x float64) float64 {
			a, b := sh[0], sh[1]
			z := a + b*math.Log(x/(1-x))
			return math.Log(b) - math.Log(x) - math.Log1p(-x) + stdNormLogPDF(z)
		},
		cdf: func(sh []float64, x float64) float64 {
			a, b := sh[0], sh[1]
			return stdNormCDF(a + b*math.Log(x/(1-x)))
		},
	}
}

func newJohnsonSU() *Family {
	return &Family{
		name:    "johnsonsu",
		shapes:  []string{"a", "b"},
		support: supportReal,
		shapeOK: func(sh []float64) bool { return sh[1] > 0 },
		logPDF: func(sh []float64, x float64) float64 {
			a, b := sh[0], sh[1]
			z := a + b*math.Asinh(x)
			return math.Log(b) - 0.5*math.Log(x*x+1) + stdNormLogPDF(z)
		},
		cdf: func(sh []float64, x float64) float64 {
			a, b := sh[0], sh[1]
			return stdNormCDF(a + b*math.Asinh(x))
		},
	}
}

// ksone's survival function follows Birnbaum-Tingey; the density is the
// numeric derivative of the CDF.
func ksoneSF(n float64, d float64) float64 {
	if d <= 0 {
		return 1
	}
	if d >= 1 {
		return 0
	}
	ni := int(math.Round(n))
	if ni < 1 {
		ni = 1
	}
	fn := float64(ni)
	sum := math.Exp(fn * math.Log1p(-d))
	jmax := int(fn * (1 - d))
	for j := 1; j <= jmax; j++ {
		fj := float64(j)
		logC := lgamma(fn+1) - lgamma(fj+1) - lgamma(fn-fj+1)
		t := logC + (fj-1)*math.Log(d+fj/fn) + (fn-fj)*math.Log(1-d-fj/fn)
		sum += d * math.Exp(t)
	}
	return math.Min(1, sum)
}

func newKSOne() *Family {
	cdf := func(sh []float64, x float64) float64 { return 1 - ksoneSF(sh[0], x) }
	return &Family{
		name:      "ksone",
		shapes:    []string{"n"},
		support:   supportUnit,
		shapeOK:   func(sh []float64) bool { return sh[0] >= 1 },
		shapeInit: func([]float64) []float64 { return []float64{100} },
		cdf:       cdf,
		logPDF: func(sh []float64, x float64) float64 {
			return numericLogPDF(func(t float64) float64 { return cdf(sh, t) }, x)
		},
	}
}

func newKSTwoBign() *Family {
	return &Family{
		name:    "kstwobign",
		support: supportPos,
		logPDF: func(_ []float64, x float64) float64 {
			var sum float64
			sgn := 1.0
			for k := 1; k <= 100; k++ {
				fk := float64(k)
				term := fk * fk * math.Exp(-2*fk*fk*x*x)
				sum += sgn * term
				if term < 1e-16 {
					break
				}
				sgn = -sgn
			}
			p := 8 * x * sum
			if p <= 0 {
				return math.Inf(-1)
			}
			return math.Log(p)
		},
		cdf: func(_ []float64, x float64) float64 {
			var sum float64
			sgn := 1.0
			for k := 1; k <= 100; k++ {
				fk := float64(k)
				term := math.Exp(-2 * fk * fk * x * x)
				sum += sgn * term
				if term < 1e-16 {
					break
				}
				sgn = -sgn
			}
			return 1 - 2*sum
		},
	}
}

func newLaplaceAsymmetric() *Family {
	return &Family{
		name:    "laplace_asymmetric",
		shapes:  []string{"kappa"},
		support: supportReal,
		logPDF: func(sh []float64, x float64) float64 {
			k := sh[0]
			lead := math.Log(k) - math.Log1p(k*k)
			if x >= 0 {
				return lead - x*k
			}
			return lead + x/k
		},
		cdf: func(sh []float64, x float64) float64 {
			k := sh[0]
			if x < 0 {
				return k * k / (1 + k*k) * math.Exp(x/k)
			}
			return 1 - math.Exp(-x*k)/(1+k*k)
		},
	}
}

func newLevy() *Family {
	return &Family{
		name:    "levy",
		support: supportPos,
		logPDF: func(_ []float64, x float64) float64 {
			return -0.5*logTwoPi - 1.5*math.Log(x) - 1/(2*x)
		},
		cdf: func(_ []float64, x float64) float64 {
			return math.Erfc(1 / math.Sqrt(2*x))
		},
	}
}

func newLevyLeft() *Family {
	return &Family{
		name:    "levy_l",
		support: func([]float64) (float64, float64) { return math.Inf(-1), 0 },
		logPDF: func(_ []float64, x float64) float64 {
			return -0.5*logTwoPi - 1.5*math.Log(-x) - 1/(-2*x)
		},
		cdf: func(_ []float64, x float64) float64 {
			return math.Erf(1 / math.Sqrt(-2*x))
		},
	}
}

func newLogGamma() *Family {
	return &Family{
		name:    "loggamma",
		shapes:  []string{"c"},
		support: supportReal,
		logPDF: func(sh []float64, x float64) float64 {
			c := sh[0]
			return c*x - math.Exp(x) - lgamma(c)
		},
		cdf: func(sh []float64, x float64) float64 {
			return mathext.GammaIncReg(sh[0], math.Exp(x))
		},
	}
}

func newLogLaplace() *Family {
	return &Family{
		name:    "loglaplace",
		shapes:  []string{"c"},
		support: supportPos,
		logPDF: func(sh []float64, x float64) float64 {
			c := sh[0]
			if x < 1 {
				return math.Log(c/2) + (c-1)*math.Log(x)
			}
			return math.Log(c/2) - (c+1)*math.Log(x)
		},
		cdf: func(sh []float64, x float64) float64 {
			c := sh[0]
			if x < 1 {
				return 0.5 * math.Pow(x, c)
			}
			return 1 - 0.5*math.Pow(x, -c)
		},
	}
}

func newLogUniform() *Family {
	return &Family{
		name:      "loguniform",
		shapes:    []string{"a", "b"},
		support:   func(sh []float64) (float64, float64) { return sh[0], sh[1] },
		shapeOK:   func(sh []float64) bool { return sh[0] > 0 && sh[1] > sh[0] },
		shapeInit: func([]float64) []float64 { return []float64{1, 10} },
		logPDF: func(sh []float64, x float64) float64 {
			return -math.Log(x) - math.Log(math.Log(sh[1]/sh[0]))
		},
		cdf: func(sh []float64, x float64) float64 {
			return math.Log(x/sh[0]) / math.Log(sh[1]/sh[0])
		},
	}
}

func newLomax() *Family {
	return &Family{
		name:    "lomax",
		shapes:  []string{"c"},
		support: supportPos,
		logPDF: func(sh []float64, x float64) float64 {
			c := sh[0]
			return math.Log(c) - (c+1)*math.Log1p(x)
		},
		cdf: func(sh []float64, x float64) float64 {
			return -math.Expm1(-sh[0] * math.Log1p(x))
		},
	}
}

func newMaxwell() *Family {
	return &Family{
		name:    "maxwell",
		support: supportPos,
		logPDF: func(_ []float64, x float64) float64 {
			return 0.5*math.Log(2/math.Pi) + 2*math.Log(x) - x*x/2
		},
		cdf: func(_ []float64, x float64) float64 {
			return mathext.GammaIncReg(1.5, x*x/2)
		},
	}
}

func newMielke() *Family {
	return &Family{
		name:    "mielke",
		shapes:  []string{"k", "s"},
		support: supportPos,
		logPDF: func(sh []float64, x float64) float64 {
			k, s := sh[0], sh[1]
			return math.Log(k) + (k-1)*math.Log(x) - (1+k/s)*math.Log1p(math.Pow(x, s))
		},
		cdf: func(sh []float64, x float64) float64 {
			k, s := sh[0], sh[1]
			return math.Exp(k*math.Log(x) - k/s*math.Log1p(math.Pow(x, s)))
		},
	}
}

func newPowerLogNorm() *Family {
	return &Family{
		name:    "powerlognorm",
		shapes:  []string{"c", "s"},
		support: supportPos,
		logPDF: func(sh []float64, x float64) float64 {
			c, s := sh[0], sh[1]
			z := math.Log(x) / s
			return math.Log(c) - math.Log(s) - math.Log(x) + stdNormLogPDF(z) +
				(c-1)*logStdNormCDF(-z)
		},
		cdf: func(sh []float64, x float64) float64 {
			c, s := sh[0], sh[1]
			return -math.Expm1(c * logStdNormCDF(-math.Log(x)/s))
		},
	}
}

func newPowerLaw() *Family {
	return &Family{
		name:    "powerlaw",
		shapes:  []string{"a"},
		support: supportUnit,
		logPDF: func(sh []float64, x float64) float64 {
			a := sh[0]
			return math.Log(a) + (a-1)*math.Log(x)
		},
		cdf: func(sh []float64, x float64) float64 {
			return math.Pow(x, sh[0])
		},
	}
}

func newRDist() *Family {
	return &Family{
		name:    "rdist",
		shapes:  []string{"c"},
		support: func([]float64) (float64, float64) { return -1, 1 },
		logPDF: func(sh []float64, x float64) float64 {
			c := sh[0]
			return (c/2-1)*math.Log1p(-x*x) - betaLn(0.5, c/2)
		},
		cdf: func(sh []float64, x float64) float64 {
			c := sh[0]
			return 0.5 + 0.5*sign(x)*mathext.RegIncBeta(0.5, c/2, x*x)
		},
	}
}

func newRayleigh() *Family {
	return &Family{
		name:    "rayleigh",
		support: supportPos,
		logPDF: func(_ []float64, x float64) float64 {
			return math.Log(x) - x*x/2
		},
		cdf: func(_ []float64, x float64) float64 {
			return -math.Expm1(-x * x / 2)
		},
	}
}

func newSemicircular() *Family {
	return &Family{
		name:    "semicircular",
		support: func([]float64) (float64, float64) { return -1, 1 },
		logPDF: func(_ []float64, x float64) float64 {
			return math.Log(2/math.Pi) + 0.5*math.Log1p(-x*x)
		},
		cdf: func(_ []float64, x float64) float64 {
			return 0.5 + (x*math.Sqrt(1-x*x)+math.Asin(x))/math.Pi
		},
	}
}

func newTrapezoid() *Family {
	return &Family{
		name:      "trapezoid",
		shapes:    []string{"c", "d"},
		support:   supportUnit,
		shapeOK:   func(sh []float64) bool { return sh[0] > 0 && sh[1] < 1 && sh[0] < sh[1] },
		shapeInit: func([]float64) []float64 { return []float64{0.25, 0.75} },
		logPDF: func(sh []float64, x float64) float64 {
			c, d := sh[0], sh[1]
			u := 2 / (1 + d - c)
			switch {
			case x < c:
				return math.Log(u * x / c)
			case x <= d:
				return math.Log(u)
			}
			return math.Log(u * (1 - x) / (1 - d))
		},
		cdf: func(sh []float64, x float64) float64 {
			c, d := sh[0], sh[1]
			u := 2 / (1 + d - c)
			switch {
			case x < c:
				return u * x * x / (2 * c)
			case x <= d:
				return u*c/2 + u*(x-c)
			}
			return 1 - u*(1-x)*(1-x)/(2*(1-d))
		},
	}
}

func newTruncExpon() *Family {
	return &Family{
		name:    "truncexpon",
		shapes:  []string{"b"},
		support: func(sh []float64) (float64, float64) { return 0, sh[0] },
		logPDF: func(sh []float64, x float64) float64 {
			return -x - math.Log(-math.Expm1(-sh[0]))
		},
		cdf: func(sh []float64, x float64) float64 {
			return math.Expm1(-x) / math.Expm1(-sh[0])
		},
	}
}

func newTruncNorm() *Family {
	return &Family{
		name:      "truncnorm",
		shapes:    []string{"a", "b"},
		support:   func(sh []float64) (float64, float64) { return sh[0], sh[1] },
		shapeOK:   func(sh []float64) bool { return sh[0] < sh[1] },
		shapeInit: func([]float64) []float64 { return []float64{-1, 1} },
		logPDF: func(sh []float64, x float64) float64 {
			z := stdNormCDF(sh[1]) - stdNormCDF(sh[0])
			return stdNormLogPDF(x) - math.Log(z)
		},
		cdf: func(sh []float64, x float64) float64 {
			lo := stdNormCDF(sh[0])
			return (stdNormCDF(x) - lo) / (stdNormCDF(sh[1]) - lo)
		},
	}
}

func newTruncPareto() *Family {
	return &Family{
		name:      "truncpareto",
		shapes:    []string{"b", "c"},
		support:   func(sh []float64) (float64, float64) { return 1, sh[1] },
		shapeOK:   func(sh []float64) bool { return sh[0] > 0 && sh[1] > 1 },
		shapeInit: func([]float64) []float64 { return []float64{2, 10} },
		logPDF: func(sh []float64, x float64) float64 {
			b, c := sh[0], sh[1]
			return math.Log(b) - (b+1)*math.Log(x) - math.Log(-math.Expm1(-b*math.Log(c)))
		},
		cdf: func(sh []float64, x float64) float64 {
			b, c := sh[0], sh[1]
			return math.Expm1(-b*math.Log(x)) / math.Expm1(-b*math.Log(c))
		},
	}
}

func newTruncWeibullMin() *Family {
	weibCDF := func(c, x float64) float64 { return -math.Expm1(-math.Pow(x, c)) }
	return &Family{
		name:      "truncweibull_min",
		shapes:    []string{"c", "a", "b"},
		support:   func(sh []float64) (float64, float64) { return sh[1], sh[2] },
		shapeOK:   func(sh []float64) bool { return sh[0] > 0 && sh[1] >= 0 && sh[2] > sh[1] },
		shapeInit: func([]float64) []float64 { return []float64{1, 0.1, 2} },
		logPDF: func(sh []float64, x float64) float64 {
			c, a, b := sh[0], sh[1], sh[2]
			z := weibCDF(c, b) - weibCDF(c, a)
			return math.Log(c) + (c-1)*math.Log(x) - math.Pow(x, c) - math.Log(z)
		},
		cdf: func(sh []float64, x float64) float64 {
			c, a, b := sh[0], sh[1], sh[2]
			lo := weibCDF(c, a)
			return (weibCDF(c, x) - lo) / (weibCDF(c, b) - lo)
		},
	}
}

// tukeylambda is quantile-defined; the CDF inverts the quantile function
// and the density is the reciprocal of its derivative.
func newTukeyLambda() *Family {
	quantile := func(lam, p float64) float64 {
		if math.Abs(lam) < 1e-9 {
			return math.Log(p / (1 - p))
		}
		return (math.Pow(p, lam) - math.Pow(1-p, lam)) / lam
	}
	cdf := func(sh []float64, x float64) float64 {
		lam := sh[0]
		lo, hi := 1e-15, 1-1e-15
		for i := 0; i < 100; i++ {
			mid := 0.5 * (lo + hi)
			if quantile(lam, mid) < x {
				lo = mid
			} else {
				hi = mid
			}
		}
		return 0.5 * (lo + hi)
	}
	return &Family{
		name:   "tukeylambda",
		shapes: []string{"lam"},
		support: func(sh []float64) (float64, float64) {
			if sh[0] > 0 {
				return -1 / sh[0], 1 / sh[0]
			}
			return math.Inf(-1), math.Inf(1)
		},
		shapeOK: func(sh []float64) bool { return true },
		cdf:     cdf,
		logPDF: func(sh []float64, x float64) float64 {
			lam := sh[0]
			p := cdf(sh, x)
			dq := math.Pow(p, lam-1) + math.Pow(1-p, lam-1)
			if !(dq > 0) {
				return math.Inf(-1)
			}
			return -math.Log(dq)
		},
	}
}

func newWrapCauchy() *Family {
	halfCDF := func(c, x float64) float64 {
		// Valid on [0, pi].
		if x >= math.Pi {
			return 0.5
		}
		return math.Atan((1+c)/(1-c)*math.Tan(x/2)) / math.Pi
	}
	return &Family{
		name:      "wrapcauchy",
		shapes:    []string{"c"},
		support:   func([]float64) (float64, float64) { return 0, 2 * math.Pi },
		shapeOK:   func(sh []float64) bool { return sh[0] > 0 && sh[0] < 1 },
		shapeInit: func([]float64) []float64 { return []float64{0.5} },
		logPDF: func(sh []float64, x float64) float64 {
			c := sh[0]
			return math.Log(1-c*c) - math.Log(2*math.Pi) - math.Log(1+c*c-2*c*math.Cos(x))
		},
		cdf: func(sh []float64, x float64) float64 {
			c := sh[0]
			if x <= math.Pi {
				return halfCDF(c, x)
			}
			return 1 - halfCDF(c, 2*math.Pi-x)
		},
	}
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}
