// Package apoe infers APOE genotypes from diploid genotype calls at the
// two GRCh38 sites that define the classical APOE alleles.
package apoe

// GenomicSite is one of the fixed biallelic positions used for APOE
// calling. Coordinates are GRCh38.
type GenomicSite struct {
	Chromosome string
	Position   uint64
	Ref        string
	Alt        string
}

var (
	// SiteRS7412 is chr19:44908822 C>T.
	SiteRS7412 = GenomicSite{Chromosome: "19", Position: 44908822, Ref: "C", Alt: "T"}

	// SiteRS429358 is chr19:44908684 T>C.
	SiteRS429358 = GenomicSite{Chromosome: "19", Position: 44908684, Ref: "T", Alt: "C"}
)
