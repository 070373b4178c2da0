package apoe

import (
	"fmt"
	"strconv"
	"strings"
)

// Call is the observed pair of allele tags at a site, in the order the
// caller reported them, e.g. "REF/ALT".
type Call string

const (
	CallRefRef Call = "REF/REF"
	CallRefAlt Call = "REF/ALT"
	CallAltRef Call = "ALT/REF"
	CallAltAlt Call = "ALT/ALT"
)

// AmbiguousSiteError indicates that more than one record in a sample's
// record set matched a site's exact (position, ref, alt) coordinates,
// so no single genotype call can be chosen.
type AmbiguousSiteError struct {
	Site    GenomicSite
	Matches int
}

func (e AmbiguousSiteError) Error() string {
	return fmt.Sprintf("apoe: %d records match site %s:%d %s>%s; expected at most one",
		e.Matches, e.Site.Chromosome, e.Site.Position, e.Site.Ref, e.Site.Alt)
}

// CallAt finds the record in a sample's chromosome-19 record set whose
// position, ref, and alt exactly match the site, and translates its
// genotype indices into allele tags. A site with no matching record is
// reported as REF/REF: the variant caller omits sites where no
// alternate allele was observed, and since multiallelic rows have been
// split upstream, absence can only mean homozygous reference.
func CallAt(records []Record, site GenomicSite) (Call, error) {
	matched := -1
	matches := 0

	for i, r := range records {
		if r.Position == site.Position && r.Ref == site.Ref && r.Alt == site.Alt {
			matched = i
			matches++
		}
	}

	if matches > 1 {
		return "", AmbiguousSiteError{Site: site, Matches: matches}
	}
	if matches == 0 {
		return CallRefRef, nil
	}

	return callFromGT(records[matched].GT), nil
}

// callFromGT translates genotype allele indices into REF/ALT tags,
// preserving pair order. Missing (-1) and out-of-range indices produce
// tokens the zygosity classifier will not recognize.
func callFromGT(gt []int) Call {
	tags := make([]string, 0, len(gt))
	for _, allele := range gt {
		switch allele {
		case 0:
			tags = append(tags, "REF")
		case 1:
			tags = append(tags, "ALT")
		case -1:
			tags = append(tags, ".")
		default:
			tags = append(tags, strconv.Itoa(allele))
		}
	}

	return Call(strings.Join(tags, "/"))
}

// GenotypeRecords resolves a sample's APOE genotype from its
// chromosome-19 record set. An ambiguous site surfaces as an error so
// the caller can decide whether to abort or downgrade the sample.
func GenotypeRecords(records []Record) (Genotype, error) {
	call7412, err := CallAt(records, SiteRS7412)
	if err != nil {
		return GenotypeUnknown, err
	}

	call429358, err := CallAt(records, SiteRS429358)
	if err != nil {
		return GenotypeUnknown, err
	}

	return Resolve(ClassifyCall(call429358), ClassifyCall(call7412)), nil
}
