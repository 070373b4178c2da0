package apoe

// Zygosity classifies a diploid genotype call at one site.
type Zygosity uint8

const (
	Unrecognized Zygosity = iota
	HomRef
	Het
	HomAlt
)

func (z Zygosity) String() string {
	switch z {
	case HomRef:
		return "HOM_REF"
	case Het:
		return "HET"
	case HomAlt:
		return "HOM_ALT"
	}

	return "UNRECOGNIZED"
}

// ClassifyCall maps an observed allele pair to its zygosity. The pair
// is unphased, so REF/ALT and ALT/REF are both heterozygous. Anything
// other than the four defined pairs (malformed or missing calls) is
// Unrecognized.
func ClassifyCall(c Call) Zygosity {
	switch c {
	case CallRefRef:
		return HomRef
	case CallAltAlt:
		return HomAlt
	case CallRefAlt, CallAltRef:
		return Het
	}

	return Unrecognized
}
