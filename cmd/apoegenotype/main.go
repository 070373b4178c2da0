// apoegenotype scans a directory of single-sample VCFs, calls each
// sample's APOE genotype from rs7412 and rs429358, and appends one row
// per sample to a resumable tab-separated report.
package main

import (
	"errors"
	"flag"
	"io/fs"
	"log"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/carbocation/apoe/report"
)

func main() {
	var (
		dir        string
		reportPath string
		suffix     string
		workers    int
	)
	flag.StringVar(&dir, "dir", "", "Directory containing single-sample VCF files")
	flag.StringVar(&reportPath, "report", "", "Path to the tab-separated genotype report. Created if absent; samples already present are skipped.")
	flag.StringVar(&suffix, "suffix", ".vcf.gz", "Only process files whose name ends with this suffix")
	flag.IntVar(&workers, "workers", runtime.NumCPU(), "Number of files to process concurrently")
	flag.Parse()

	if dir == "" {
		flag.PrintDefaults()
		log.Fatalln("Please provide --dir")
	}

	if reportPath == "" {
		flag.PrintDefaults()
		log.Fatalln("Please provide --report")
	}

	if workers < 1 {
		workers = 1
	}

	// A corrupt pre-existing report is fatal: resuming against it could
	// duplicate or drop samples.
	rep, err := report.Load(reportPath)
	if err != nil {
		log.Fatalln(err)
	}
	log.Println("Loaded", rep.Len(), "previously genotyped samples from", reportPath)

	files, err := discoverFiles(dir, suffix)
	if err != nil {
		log.Fatalln(err)
	}
	if len(files) == 0 {
		log.Fatalf("No files matching *%s found under %s\n", suffix, dir)
	}
	log.Println("Found", len(files), "variant files under", dir)

	log.Println("Limiting concurrent files to", workers)
	concurrencyLimit := make(chan struct{}, workers)

	// The report is a single shared writer; all membership checks and
	// appends happen under one mutex so a sample can never race its way
	// to two rows.
	var mu sync.Mutex
	var pool sync.WaitGroup

	for _, path := range files {
		concurrencyLimit <- struct{}{}
		pool.Add(1)

		go func(path string) {
			defer pool.Done()
			defer func() { <-concurrencyLimit }()

			res, err := processFile(path)
			if err != nil {
				// Without a sample ID there is no row to write
				log.Printf("Warning: skipping %s: %v\n", path, err)
				return
			}

			mu.Lock()
			defer mu.Unlock()

			// recordResult persists after every sample so an interrupted
			// run leaves a valid report containing exactly the completed
			// samples.
			added, err := recordResult(rep, reportPath, res)
			if err != nil {
				var dup report.DuplicateSampleError
				if errors.As(err, &dup) {
					log.Printf("Warning: %s: %v\n", path, err)
					return
				}
				log.Fatalln(err)
			}
			if !added {
				log.Printf("%s: sample %s is already in the report; skipping\n", path, res.SampleID)
				return
			}

			log.Printf("%s: %s => %s\n", path, res.SampleID, res.Genotype.Label())
		}(path)
	}

	pool.Wait()

	log.Println("Completed;", rep.Len(), "samples in", reportPath)
}

func discoverFiles(dir, suffix string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), suffix) {
			return nil
		}
		files = append(files, path)

		return nil
	})

	return files, err
}
