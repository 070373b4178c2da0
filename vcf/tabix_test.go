package vcf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/carbocation/apoe"
)

func TestSitesLoci(t *testing.T) {
	loci := sitesLoci("19", []apoe.GenomicSite{apoe.SiteRS7412, apoe.SiteRS429358})
	if len(loci) != 2 {
		t.Fatalf("got %d loci, expected 2 chromosome spellings", len(loci))
	}

	if loci[0].Chrom() != "19" || loci[1].Chrom() != "chr19" {
		t.Errorf("got spellings %q and %q, expected \"19\" and \"chr19\"", loci[0].Chrom(), loci[1].Chrom())
	}

	// The half-open interval must cover both sites: rs429358 at
	// 44908684 and rs7412 at 44908822
	for _, locus := range loci {
		if locus.Start() != 44908683 {
			t.Errorf("%s: start %d, expected 44908683", locus.Chrom(), locus.Start())
		}
		if locus.End() != 44908822 {
			t.Errorf("%s: end %d, expected 44908822", locus.Chrom(), locus.End())
		}
	}
}

func TestSitesLociEmpty(t *testing.T) {
	if loci := sitesLoci("19", nil); loci != nil {
		t.Errorf("got %v for no sites, expected nil", loci)
	}
}

func TestHasIndex(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample1.vcf.gz")
	if err := os.WriteFile(path, []byte("placeholder"), 0o644); err != nil {
		t.Fatal(err)
	}

	if HasIndex(path) {
		t.Error("HasIndex reported an index that does not exist")
	}

	if err := os.WriteFile(path+".tbi", []byte("placeholder"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !HasIndex(path) {
		t.Error("HasIndex missed an existing index")
	}
}

// Without an index alongside the file, ReadSampleSites must fall back
// to streaming the whole file.
func TestReadSampleSitesWithoutIndex(t *testing.T) {
	path := writeTestVCF(t, "sample1.vcf", testVCF)

	sampleID, records, err := ReadSampleSites(path, "19", []apoe.GenomicSite{apoe.SiteRS7412, apoe.SiteRS429358})
	if err != nil {
		t.Fatal(err)
	}
	if sampleID != "SAMPLE1" || len(records) != 2 {
		t.Errorf("got sample %q with %d records, expected SAMPLE1 with 2", sampleID, len(records))
	}
}
