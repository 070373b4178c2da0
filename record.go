package apoe

// Record is the minimal view of one normalized variant row for a single
// sample. Callers must restrict records to chromosome 19 and split
// multiallelic rows into single-ALT records before handing them to the
// extractor; the vcf package does both.
type Record struct {
	Position uint64
	Ref      string
	Alt      string

	// GT holds the sample's genotype as allele indices: 0 for the
	// reference allele, 1 for the (single) alternate allele, -1 for a
	// missing call.
	GT []int
}
