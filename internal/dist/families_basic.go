package dist

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Families with a gonum distuv implementation or a textbook closed form.

func supportReal([]float64) (float64, float64) { return math.Inf(-1), math.Inf(1) }
func supportPos([]float64) (float64, float64)  { return 0, math.Inf(1) }
func supportUnit([]float64) (float64, float64) { return 0, 1 }

func newUniform() *Family {
	f := &Family{
		name:    "uniform",
		support: supportUnit,
		logPDF:  func(_ []float64, _ float64) float64 { return 0 },
		cdf:     func(_ []float64, x float64) float64 { return x },
		randStd: func(_ []float64, src rand.Source) float64 {
			return distuv.Uniform{Min: 0, Max: 1, Src: src}.Rand()
		},
	}
	f.fitClosed = fitUniform(f)
	return f
}

func newNormal() *Family {
	f := &Family{
		name:    "norm",
		support: supportReal,
		logPDF:  func(_ []float64, x float64) float64 { return distuv.UnitNormal.LogProb(x) },
		cdf:     func(_ []float64, x float64) float64 { return distuv.UnitNormal.CDF(x) },
		randStd: func(_ []float64, src rand.Source) float64 {
			return distuv.Normal{Mu: 0, Sigma: 1, Src: src}.Rand()
		},
	}
	f.fitClosed = fitNormal(f)
	return f
}

func newExponential() *Family {
	f := &Family{
		name:    "expon",
		support: supportPos,
		logPDF:  func(_ []float64, x float64) float64 { return -x },
		cdf:     func(_ []float64, x float64) float64 { return -math.Expm1(-x) },
		randStd: func(_ []float64, src rand.Source) float64 {
			return distuv.Exponential{Rate: 1, Src: src}.Rand()
		},
	}
	f.fitClosed = fitExponential(f)
	return f
}

func newStudentsT() *Family {
	return &Family{
		name:    "t",
		shapes:  []string{"df"},
		support: supportReal,
		logPDF: func(sh []float64, x float64) float64 {
			return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: sh[0]}.LogProb(x)
		},
		cdf: func(sh []float64, x float64) float64 {
			return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: sh[0]}.CDF(x)
		},
		randStd: func(sh []float64, src rand.Source) float64 {
			return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: sh[0], Src: src}.Rand()
		},
	}
}

func newChiSquared() *Family {
	return &Family{
		name:    "chi2",
		shapes:  []string{"df"},
		support: supportPos,
		logPDF: func(sh []float64, x float64) float64 {
			return distuv.ChiSquared{K: sh[0]}.LogProb(x)
		},
		cdf: func(sh []float64, x float64) float64 {
			return distuv.ChiSquared{K: sh[0]}.CDF(x)
		},
		randStd: func(sh []float64, src rand.Source) float64 {
			return distuv.ChiSquared{K: sh[0], Src: src}.Rand()
		},
	}
}

func newGammaNamed(name string) *Family {
	return &Family{
		name:    name,
		shapes:  []string{"a"},
		support: supportPos,
		logPDF: func(sh []float64, x float64) float64 {
			return distuv.Gamma{Alpha: sh[0], Beta: 1}.LogProb(x)
		},
		cdf: func(sh []float64, x float64) float64 {
			return distuv.Gamma{Alpha: sh[0], Beta: 1}.CDF(x)
		},
		randStd: func(sh []float64, src rand.Source) float64 {
			return distuv.Gamma{Alpha: sh[0], Beta: 1, Src: src}.Rand()
		},
	}
}

func newBeta() *Family {
	return &Family{
		name:    "beta",
		shapes:  []string{"a", "b"},
		support: supportUnit,
		logPDF: func(sh []float64, x float64) float64 {
			return distuv.Beta{Alpha: sh[0], Beta: sh[1]}.LogProb(x)
		},
		cdf: func(sh []float64, x float64) float64 {
			return distuv.Beta{Alpha: sh[0], Beta: sh[1]}.CDF(x)
		},
		randStd: func(sh []float64, src rand.Source) float64 {
			return distuv.Beta{Alpha: sh[0], Beta: sh[1], Src: src}.Rand()
		},
	}
}

func newF() *Family {
	return &Family{
		name:    "f",
		shapes:  []string{"dfn", "dfd"},
		support: supportPos,
		logPDF: func(sh []float64, x float64) float64 {
			return distuv.F{D1: sh[0], D2: sh[1]}.LogProb(x)
		},
		cdf: func(sh []float64, x float64) float64 {
			return distuv.F{D1: sh[0], D2: sh[1]}.CDF(x)
		},
		randStd: func(sh []float64, src rand.Source) float64 {
			return distuv.F{D1: sh[0], D2: sh[1], Src: src}.Rand()
		},
	}
}

func newLogNormal() *Family {
	return &Family{
		name:    "lognorm",
		shapes:  []string{"s"},
		support: supportPos,
		logPDF: func(sh []float64, x float64) float64 {
			return distuv.LogNormal{Mu: 0, Sigma: sh[0]}.LogProb(x)
		},
		cdf: func(sh []float64, x float64) float64 {
			return distuv.LogNormal{Mu: 0, Sigma: sh[0]}.CDF(x)
		},
		randStd: func(sh []float64, src rand.Source) float64 {
			return distuv.LogNormal{Mu: 0, Sigma: sh[0], Src: src}.Rand()
		},
	}
}

func newGibrat() *Family {
	return &Family{
		name:    "gibrat",
		support: supportPos,
		logPDF: func(_ []float64, x float64) float64 {
			return distuv.LogNormal{Mu: 0, Sigma: 1}.LogProb(x)
		},
		cdf: func(_ []float64, x float64) float64 {
			return distuv.LogNormal{Mu: 0, Sigma: 1}.CDF(x)
		},
		randStd: func(_ []float64, src rand.Source) float64 {
			return distuv.LogNormal{Mu: 0, Sigma: 1, Src: src}.Rand()
		},
	}
}

func newLaplace() *Family {
	return &Family{
		name:    "laplace",
		support: supportReal,
		logPDF: func(_ []float64, x float64) float64 {
			return distuv.Laplace{Mu: 0, Scale: 1}.LogProb(x)
		},
		cdf: func(_ []float64, x float64) float64 {
			return distuv.Laplace{Mu: 0, Scale: 1}.CDF(x)
		},
		randStd: func(_ []float64, src rand.Source) float64 {
			return distuv.Laplace{Mu: 0, Scale: 1, Src: src}.Rand()
		},
	}
}

func newWeibullMin() *Family {
	return &Family{
		name:    "weibull_min",
		shapes:  []string{"c"},
		support: supportPos,
		logPDF: func(sh []float64, x float64) float64 {
			return distuv.Weibull{K: sh[0], Lambda: 1}.LogProb(x)
		},
		cdf: func(sh []float64, x float64) float64 {
			return distuv.Weibull{K: sh[0], Lambda: 1}.CDF(x)
		},
		randStd: func(sh []float64, src rand.Source) float64 {
			return distuv.Weibull{K: sh[0], Lambda: 1, Src: src}.Rand()
		},
	}
}

// weibull_max is the mirror image of weibull_min on (-inf, 0].
func newWeibullMax() *Family {
	return &Family{
		name:    "weibull_max",
		shapes:  []string{"c"},
		support: func([]float64) (float64, float64) { return math.Inf(-1), 0 },
		logPDF: func(sh []float64, x float64) float64 {
			return distuv.Weibull{K: sh[0], Lambda: 1}.LogProb(-x)
		},
		cdf: func(sh []float64, x float64) float64 {
			return math.Exp(-math.Pow(-x, sh[0]))
		},
		randStd: func(sh []float64, src rand.Source) float64 {
			return -distuv.Weibull{K: sh[0], Lambda: 1, Src: src}.Rand()
		},
	}
}

func newPareto() *Family {
	return &Family{
		name:    "pareto",
		shapes:  []string{"b"},
		support: func([]float64) (float64, float64) { return 1, math.Inf(1) },
		logPDF: func(sh []float64, x float64) float64 {
			return distuv.Pareto{Xm: 1, Alpha: sh[0]}.LogProb(x)
		},
		cdf: func(sh []float64, x float64) float64 {
			return distuv.Pareto{Xm: 1, Alpha: sh[0]}.CDF(x)
		},
		randStd: func(sh []float64, src rand.Source) float64 {
			return distuv.Pareto{Xm: 1, Alpha: sh[0], Src: src}.Rand()
		},
	}
}

func newInverseGamma() *Family {
	return &Family{
		name:    "invgamma",
		shapes:  []string{"a"},
		support: supportPos,
		logPDF: func(sh []float64, x float64) float64 {
			return distuv.InverseGamma{Alpha: sh[0], Beta: 1}.LogProb(x)
		},
		cdf: func(sh []float64, x float64) float64 {
			return distuv.InverseGamma{Alpha: sh[0], Beta: 1}.CDF(x)
		},
		randStd: func(sh []float64, src rand.Source) float64 {
			return distuv.InverseGamma{Alpha: sh[0], Beta: 1, Src: src}.Rand()
		},
	}
}

func newTriangular() *Family {
	return &Family{
		name:      "triang",
		shapes:    []string{"c"},
		support:   supportUnit,
		shapeOK:   func(sh []float64) bool { return sh[0] > 0 && sh[0] < 1 },
		shapeInit: func([]float64) []float64 { return []float64{0.5} },
		logPDF: func(sh []float64, x float64) float64 {
			return distuv.NewTriangle(0, 1, sh[0], nil).LogProb(x)
		},
		cdf: func(sh []float64, x float64) float64 {
			return distuv.NewTriangle(0, 1, sh[0], nil).CDF(x)
		},
		randStd: func(sh []float64, src rand.Source) float64 {
			return distuv.NewTriangle(0, 1, sh[0], src).Rand()
		},
	}
}

func newCauchy() *Family {
	return &Family{
		name:    "cauchy",
		support: supportReal,
		logPDF: func(_ []float64, x float64) float64 {
			return -math.Log(math.Pi * (1 + x*x))
		},
		cdf: func(_ []float64, x float64) float64 {
			return 0.5 + math.Atan(x)/math.Pi
		},
		randStd: func(_ []float64, src rand.Source) float64 {
			u := rand.New(src).Float64()
			return math.Tan(math.Pi * (u - 0.5))
		},
	}
}

func newLogistic() *Family {
	return &Family{
		name:    "logistic",
		support: supportReal,
		logPDF: func(_ []float64, x float64) float64 {
			ax := math.Abs(x)
			return -ax - 2*math.Log1p(math.Exp(-ax))
		},
		cdf: func(_ []float64, x float64) float64 {
			return 1 / (1 + math.Exp(-x))
		},
		randStd: func(_ []float64, src rand.Source) float64 {
			u := rand.New(src).Float64()
			return math.Log(u / (1 - u))
		},
	}
}
