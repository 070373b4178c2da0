// Package report accumulates per-sample APOE genotype rows into a
// tab-separated report file that can be resumed across runs.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
)

// ColSampleID is the required name of the report's first column.
const ColSampleID = "SampleID"

// ColGenotype is the name of the genotype column.
const ColGenotype = "APOE_genotype"

// ParseError indicates that a pre-existing report file cannot be
// trusted: its header is missing or misnames the sample column. This is
// fatal to the run, since resuming against it could duplicate or drop
// samples.
type ParseError struct {
	Path   string
	Detail string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("report: %s: %s", e.Path, e.Detail)
}

// DuplicateSampleError indicates an Append for a sample that is already
// in the report. The pipeline checks membership before appending, so
// seeing this error means that check was skipped or raced.
type DuplicateSampleError struct {
	SampleID string
}

func (e DuplicateSampleError) Error() string {
	return fmt.Sprintf("report: sample %s is already present", e.SampleID)
}

type row struct {
	SampleID string `csv:"SampleID"`
	Genotype string `csv:"APOE_genotype"`
}

// Report maps sample IDs to genotype labels, preserving insertion order
// for stable output. It is not safe for concurrent use; callers that
// append from multiple goroutines must serialize access.
type Report struct {
	order     []string
	genotypes map[string]string
}

// Load reads an existing report at path. A missing or empty file yields
// an empty report; a present file with a malformed header yields a
// ParseError. Fields tolerate surrounding whitespace.
func Load(path string) (*Report, error) {
	r := &Report{genotypes: make(map[string]string)}

	fileBytes, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return r, nil
	} else if err != nil {
		return nil, pfx.Err(err)
	}

	if len(strings.TrimSpace(string(fileBytes))) == 0 {
		return r, nil
	}

	header, _, _ := strings.Cut(string(fileBytes), "\n")
	cols := strings.Split(header, "\t")
	if strings.TrimSpace(cols[0]) != ColSampleID {
		return nil, ParseError{Path: path, Detail: fmt.Sprintf("first header column is %q, expected %q", strings.TrimSpace(cols[0]), ColSampleID)}
	}

	// Tell gocsv to use tab as the delimiter
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		cr := csv.NewReader(in)
		cr.Comma = '\t'
		cr.LazyQuotes = true
		cr.FieldsPerRecord = -1
		cr.TrimLeadingSpace = true
		return cr
	})

	records := []*row{}
	if err := gocsv.UnmarshalBytes(fileBytes, &records); err != nil {
		return nil, pfx.Err(err)
	}

	for _, record := range records {
		id := strings.TrimSpace(record.SampleID)
		if id == "" {
			continue
		}
		if err := r.Append(id, strings.TrimSpace(record.Genotype)); err != nil {
			return nil, pfx.Err(err)
		}
	}

	return r, nil
}

// Contains reports whether a sample already has a row.
func (r *Report) Contains(sampleID string) bool {
	_, exists := r.genotypes[sampleID]
	return exists
}

// Len returns the number of rows.
func (r *Report) Len() int {
	return len(r.order)
}

// Genotype returns the stored genotype label for a sample, if present.
func (r *Report) Genotype(sampleID string) (string, bool) {
	g, exists := r.genotypes[sampleID]
	return g, exists
}

// Append adds one row. Appending a sample that is already present is a
// DuplicateSampleError, never an overwrite.
func (r *Report) Append(sampleID, genotype string) error {
	if r.Contains(sampleID) {
		return DuplicateSampleError{SampleID: sampleID}
	}

	r.order = append(r.order, sampleID)
	r.genotypes[sampleID] = genotype

	return nil
}

// Flush persists the full report to path: header plus one row per
// sample in insertion order. It writes to a temp file in the same
// directory and renames it into place, so an interrupt mid-run leaves
// the previous complete report rather than a torn one.
func (r *Report) Flush(path string) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, ".report-*")
	if err != nil {
		return pfx.Err(err)
	}
	defer os.Remove(tmp.Name())

	if err := r.write(tmp); err != nil {
		tmp.Close()
		return pfx.Err(err)
	}

	if err := tmp.Close(); err != nil {
		return pfx.Err(err)
	}

	return pfx.Err(os.Rename(tmp.Name(), path))
}

func (r *Report) write(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s\t%s\n", ColSampleID, ColGenotype); err != nil {
		return err
	}

	for _, id := range r.order {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", id, r.genotypes[id]); err != nil {
			return err
		}
	}

	return nil
}
