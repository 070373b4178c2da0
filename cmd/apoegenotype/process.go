package main

import (
	"log"

	"github.com/carbocation/apoe"
	"github.com/carbocation/apoe/report"
	"github.com/carbocation/apoe/vcf"
)

var targetSites = []apoe.GenomicSite{apoe.SiteRS7412, apoe.SiteRS429358}

type result struct {
	SampleID string
	Genotype apoe.Genotype
}

// processFile reads one single-sample VCF and resolves its APOE
// genotype. Extraction problems (duplicate site records, malformed
// calls) downgrade the sample to APOE_unknown rather than aborting the
// batch; an error is returned only when the file cannot be read at all.
func processFile(path string) (result, error) {
	sampleID, records, err := vcf.ReadSampleSites(path, apoe.SiteRS7412.Chromosome, targetSites)
	if err != nil {
		return result{}, err
	}

	// An empty record set is legal: both sites default to homozygous
	// reference. Logging the count makes a systematically empty scan
	// (wrong chromosome naming, wrong assembly) visible in the run log.
	log.Printf("%s: sample %s: %d candidate records\n", path, sampleID, len(records))

	genotype, err := apoe.GenotypeRecords(records)
	if err != nil {
		log.Printf("Warning: %s: %v; reporting sample %s as %s\n", path, err, sampleID, apoe.GenotypeUnknown.Label())
		genotype = apoe.GenotypeUnknown
	}

	return result{SampleID: sampleID, Genotype: genotype}, nil
}

// recordResult appends one resolved sample to the report and persists
// it. A sample that already has a row is left untouched and reported as
// not added. Callers running concurrently must hold the report's lock.
func recordResult(rep *report.Report, reportPath string, res result) (added bool, err error) {
	if rep.Contains(res.SampleID) {
		return false, nil
	}

	if err := rep.Append(res.SampleID, res.Genotype.Label()); err != nil {
		return false, err
	}

	if err := rep.Flush(reportPath); err != nil {
		return false, err
	}

	return true, nil
}
