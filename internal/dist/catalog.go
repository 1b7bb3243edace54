package dist

import (
	"fmt"
	"sync"
)

// catalogOnce builds the registry a single time; families are stateless and
// shared read-only across all workers.
var (
	catalogOnce sync.Once
	catalog     []*Family
	byName      map[string]*Family
)

func buildCatalog() {
	catalog = []*Family{
		newUniform(),
		newNormal(),
		newLogGamma(),
		newGaussHyper(),
		newAlpha(),
		newAnglit(),
		newArcsine(),
		newBeta(),
		newBetaPrime(),
		newBradford(),
		newBurrIII(),
		newBurrXII(),
		newCauchy(),
		newSkewCauchy(),
		newChi(),
		newChiSquared(),
		newDoubleGamma(),
		newDoubleWeibull(),
		newGammaNamed("erlang"),
		newExponential(),
		newExponWeib(),
		newExponPow(),
		newFatigueLife(),
		newFisk(),
		newFoldedCauchy(),
		newFoldedNormal(),
		newF(),
		newGammaNamed("gamma"),
		newGenLogistic(),
		newGenPareto(),
		newGenExtreme(),
		newGenGamma(),
		newGenHalfLogistic(),
		newGenInvGauss(),
		newGenNormal(),
		newGibrat(),
		newGompertz(),
		newHalfCauchy(),
		newHalfNormal(),
		newHalfLogistic(),
		newInverseGamma(),
		newInvGauss(),
		newInvWeibull(),
		newJohnsonSB(),
		newJohnsonSU(),
		newKSOne(),
		newKSTwoBign(),
		newLaplace(),
		newLaplaceAsymmetric(),
		newLevyLeft(),
		newLevy(),
		newLogistic(),
		newLogLaplace(),
		newLogNormal(),
		newLogUniform(),
		newMaxwell(),
		newMielke(),
		newNoncentralChi2(),
		newNoncentralF(),
		newNoncentralT(),
		newNormInvGauss(),
		newPareto(),
		newLomax(),
		newPowerLogNorm(),
		newPowerLaw(),
		newRDist(),
		newRayleigh(),
		newRice(),
		newRecipInvGauss(),
		newSemicircular(),
		newStudentizedRange(),
		newStudentsT(),
		newTrapezoid(),
		newTriangular(),
		newTruncExpon(),
		newTruncNorm(),
		newTruncPareto(),
		newTruncWeibullMin(),
		newTukeyLambda(),
		newVonMises(),
		newWald(),
		newWeibullMax(),
		newWeibullMin(),
		newWrapCauchy(),
	}
	byName = make(map[string]*Family, len(catalog))
	for _, f := range catalog {
		if _, dup := byName[f.name]; dup {
			panic("dist: duplicate family " + f.name)
		}
		byName[f.name] = f
	}
}

// Catalog returns the full ordered family registry.
func Catalog() []*Family {
	catalogOnce.Do(buildCatalog)
	return catalog
}

// Lookup resolves a family by its identifier.
func Lookup(name string) (*Family, error) {
	catalogOnce.Do(buildCatalog)
	f, ok := byName[name]
	if !ok {
		return nil, fmt.Errorf("dist: unknown family %q", name)
	}
	return f, nil
}

// Names returns the family identifiers in catalog order.
func Names() []string {
	fams := Catalog()
	names := make([]string, len(fams))
	for i, f := range fams {
		names[i] = f.name
	}
	return names
}
