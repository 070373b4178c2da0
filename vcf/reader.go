// Package vcf reads single-sample variant-call files and hands the
// genotype extractor a normalized, chromosome-restricted record set:
// multiallelic rows are split into single-ALT records and genotype
// indices are remapped accordingly.
package vcf

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/carbocation/apoe"
	"github.com/carbocation/pfx"
	"github.com/carbocation/vcfgo"
)

var BufferSize = 4096 * 8

// ReadSampleSites yields the sample name and the chromosome-restricted
// record set of a single-sample VCF at path. When a tabix index exists
// alongside the file, only the region spanning the requested sites is
// read; otherwise the whole file is streamed.
func ReadSampleSites(path, chromosome string, sites []apoe.GenomicSite) (string, []apoe.Record, error) {
	if HasIndex(path) {
		return readSampleTabix(path, chromosome, sites)
	}

	return ReadSample(path, chromosome)
}

// ReadSample streams the whole VCF at path and returns every record on
// the requested chromosome.
func ReadSample(path, chromosome string) (string, []apoe.Record, error) {
	fraw, err := os.Open(path)
	if err != nil {
		return "", nil, pfx.Err(err)
	}
	defer fraw.Close()

	f, err := decompressingReader(fraw)
	if err != nil {
		return "", nil, pfx.Err(err)
	}
	defer f.Close()

	rdr, err := vcfgo.NewReader(bufio.NewReaderSize(f, BufferSize), false)
	if err != nil {
		if rdr == nil {
			return "", nil, pfx.Err(err)
		}
		// Header validation complaints that don't prevent reading
		log.Printf("%s: tolerating VCF header issues: %v\n", path, err)
		rdr.Clear()
	}

	sampleID, err := singleSampleName(rdr.Header.SampleNames, path)
	if err != nil {
		return "", nil, err
	}

	var records []apoe.Record
	for {
		variant := rdr.Read()
		if variant == nil {
			break
		}

		if trimChr(variant.Chrom()) != chromosome {
			continue
		}

		records = append(records, splitVariant(variant)...)
	}

	if err := rdr.Error(); err != nil {
		log.Printf("%s: tolerating VCF parsing issues: %v\n", path, err)
		rdr.Clear()
	}

	return sampleID, records, nil
}

// splitVariant decomposes one (possibly multiallelic) variant row into
// single-ALT records. For the Nth alternate allele, genotype index 1+N
// becomes 1 and any other alternate's index becomes 0, mirroring how an
// upstream normalizer would rewrite the row; missing calls stay -1.
func splitVariant(v *vcfgo.Variant) []apoe.Record {
	var gt []int
	if len(v.Samples) > 0 && v.Samples[0] != nil {
		gt = v.Samples[0].GT
	}

	records := make([]apoe.Record, 0, len(v.Alt()))
	for alleleID, alt := range v.Alt() {
		currentAltAlleleValue := 1 + alleleID

		splitGT := make([]int, len(gt))
		for i, allele := range gt {
			switch {
			case allele == -1:
				splitGT[i] = -1
			case allele == currentAltAlleleValue:
				splitGT[i] = 1
			default:
				splitGT[i] = 0
			}
		}

		records = append(records, apoe.Record{
			Position: v.Pos,
			Ref:      v.Ref(),
			Alt:      alt,
			GT:       splitGT,
		})
	}

	return records
}

func singleSampleName(names []string, path string) (string, error) {
	if len(names) == 0 {
		return "", fmt.Errorf("%s: VCF declares no sample columns", path)
	}
	if len(names) > 1 {
		return "", fmt.Errorf("%s: multi-sample VCFs are not supported (%d samples found)", path, len(names))
	}

	return names[0], nil
}

// trimChr normalizes chromosome naming between callers that emit "19"
// and those that emit "chr19".
func trimChr(chromosome string) string {
	return strings.TrimPrefix(chromosome, "chr")
}
