// Package display provides human-readable names for machine codes.
//
// Rule: code is for machines, words are for humans.
// Use these functions in CLI output and summaries; keep raw family codes
// for CSV columns, map keys, and equality comparisons.
package display

// familyNames maps catalog family codes to human-readable names.
var familyNames = map[string]string{
	"uniform":            "Uniform",
	"norm":               "Normal",
	"loggamma":           "Log-Gamma",
	"gausshyper":         "Gauss Hypergeometric",
	"alpha":              "Alpha",
	"anglit":             "Anglit",
	"arcsine":            "Arcsine",
	"beta":               "Beta",
	"betaprime":          "Beta Prime",
	"bradford":           "Bradford",
	"burr":               "Burr III",
	"burr12":             "Burr XII",
	"cauchy":             "Cauchy",
	"skewcauchy":         "Skewed Cauchy",
	"chi":                "Chi",
	"chi2":               "Chi-Squared",
	"dgamma":             "Double Gamma",
	"dweibull":           "Double Weibull",
	"erlang":             "Erlang",
	"expon":              "Exponential",
	"exponweib":          "Exponentiated Weibull",
	"exponpow":           "Exponential Power",
	"fatiguelife":        "Fatigue-Life (Birnbaum-Saunders)",
	"fisk":               "Fisk (Log-Logistic)",
	"foldcauchy":         "Folded Cauchy",
	"foldnorm":           "Folded Normal",
	"f":                  "F (Fisher-Snedecor)",
	"gamma":              "Gamma",
	"genlogistic":        "Generalized Logistic",
	"genpareto":          "Generalized Pareto",
	"genextreme":         "Generalized Extreme Value",
	"gengamma":           "Generalized Gamma",
	"genhalflogistic":    "Generalized Half-Logistic",
	"geninvgauss":        "Generalized Inverse Gaussian",
	"gennorm":            "Generalized Normal",
	"gibrat":             "Gibrat",
	"gompertz":           "Gompertz",
	"halfcauchy":         "Half-Cauchy",
	"halfnorm":           "Half-Normal",
	"halflogistic":       "Half-Logistic",
	"invgamma":           "Inverse Gamma",
	"invgauss":           "Inverse Gaussian",
	"invweibull":         "Inverse Weibull (Frechet)",
	"johnsonsb":          "Johnson SB",
	"johnsonsu":          "Johnson SU",
	"ksone":              "Kolmogorov-Smirnov One-Sided",
	"kstwobign":          "Kolmogorov-Smirnov Limiting",
	"laplace":            "Laplace",
	"laplace_asymmetric": "Asymmetric Laplace",
	"levy_l":             "Left-Skewed Levy",
	"levy":               "Levy",
	"logistic":           "Logistic",
	"loglaplace":         "Log-Laplace",
	"lognorm":            "Log-Normal",
	"loguniform":         "Log-Uniform",
	"maxwell":            "Maxwell",
	"mielke":             "Mielke Beta-Kappa",
	"ncx2":               "Noncentral Chi-Squared",
	"ncf":                "Noncentral F",
	"nct":                "Noncentral t",
	"norminvgauss":       "Normal Inverse Gaussian",
	"pareto":             "Pareto",
	"lomax":              "Lomax (Pareto II)",
	"powerlognorm":       "Power Log-Normal",
	"powerlaw":           "Power Law",
	"rdist":              "R-Distribution",
	"rayleigh":           "Rayleigh",
	"rice":               "Rice",
	"recipinvgauss":      "Reciprocal Inverse Gaussian",
	"semicircular":       "Semicircular",
	"studentized_range":  "Studentized Range",
	"t":                  "Student's t",
	"trapezoid":          "Trapezoidal",
	"triang":             "Triangular",
	"truncexpon":         "Truncated Exponential",
	"truncnorm":          "Truncated Normal",
	"truncpareto":        "Truncated Pareto",
	"truncweibull_min":   "Truncated Weibull Minimum",
	"tukeylambda":        "Tukey Lambda",
	"vonmises":           "Von Mises",
	"wald":               "Wald",
	"weibull_max":        "Weibull Maximum",
	"weibull_min":        "Weibull Minimum",
	"wrapcauchy":         "Wrapped Cauchy",
}

// FamilyName returns the human-readable name for a family code.
// Unknown codes are returned as-is.
func FamilyName(code string) string {
	if name, ok := familyNames[code]; ok {
		return name
	}
	return code
}

// FamilyNameWithCode returns "Normal (norm)" format.
func FamilyNameWithCode(code string) string {
	if name, ok := familyNames[code]; ok {
		return name + " (" + code + ")"
	}
	return code
}
