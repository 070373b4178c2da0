package vcf

import (
	"io"
	"log"
	"math"
	"os"

	"github.com/brentp/irelate/interfaces"
	"github.com/carbocation/apoe"
	"github.com/carbocation/bix"
	"github.com/carbocation/pfx"
	"github.com/carbocation/vcfgo"
)

// TabixLocus is a half-open genomic interval usable as a tabix query.
type TabixLocus struct {
	chrom string
	start int
	end   int
}

func (tl TabixLocus) Chrom() string {
	return tl.chrom
}

func (tl TabixLocus) Start() uint32 {
	return uint32(tl.start)
}

func (tl TabixLocus) End() uint32 {
	return uint32(tl.end)
}

// HasIndex reports whether a tabix index sits alongside path.
func HasIndex(path string) bool {
	_, err := os.Stat(path + ".tbi")
	return err == nil
}

// readSampleTabix uses the tabix index to fetch only the region that
// spans the requested sites instead of streaming the whole file. The
// query runs under both the bare and the chr-prefixed chromosome name,
// since the index stores whichever naming the VCF used.
func readSampleTabix(path, chromosome string, sites []apoe.GenomicSite) (string, []apoe.Record, error) {
	tbx, err := bix.New(path)
	if err != nil {
		return "", nil, pfx.Err(err)
	}
	defer tbx.Close()

	sampleID, err := singleSampleName(tbx.VReader.Header.SampleNames, path)
	if err != nil {
		return "", nil, err
	}

	loci := sitesLoci(chromosome, sites)

	var records []apoe.Record
	for _, locus := range loci {
		vals, err := tbx.Query(locus)
		if err != nil {
			// Usually the index has no bin for this chromosome naming
			// and the other spelling will hit, but log it so a genuine
			// index failure is visible.
			log.Printf("%s: query %s:%d-%d: %v\n", path, locus.Chrom(), locus.Start(), locus.End(), err)
			continue
		}

		for {
			v, err := vals.Next()
			if err == io.EOF {
				break
			} else if err != nil {
				return "", nil, pfx.Err(err)
			}

			v2, ok := v.(interfaces.VarWrap)
			if !ok {
				log.Printf("%s: %s:%d is not a VCF row; skipping\n", path, v.Chrom(), v.End())
				continue
			}

			snp, ok := v2.IVariant.(*vcfgo.Variant)
			if !ok {
				log.Printf("%s: %s:%d is not a VCF row; skipping\n", path, v.Chrom(), v.End())
				continue
			}

			if err := tbx.VReader.Header.ParseSamples(snp); err != nil {
				return "", nil, pfx.Err(err)
			}

			if trimChr(snp.Chrom()) != chromosome {
				continue
			}

			records = append(records, splitVariant(snp)...)
		}
	}

	return sampleID, records, nil
}

// sitesLoci builds the single interval covering every requested site,
// under both chromosome spellings.
func sitesLoci(chromosome string, sites []apoe.GenomicSite) []TabixLocus {
	start := math.MaxInt
	end := -1
	for _, site := range sites {
		if int(site.Position)-1 < start {
			start = int(site.Position) - 1
		}
		if int(site.Position) > end {
			end = int(site.Position)
		}
	}

	if end == -1 {
		return nil
	}

	return []TabixLocus{
		{chrom: chromosome, start: start, end: end},
		{chrom: "chr" + chromosome, start: start, end: end},
	}
}
