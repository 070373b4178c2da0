package report

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	r, err := Load(filepath.Join(t.TempDir(), "nonexistent.tsv"))
	if err != nil {
		t.Fatal(err)
	}
	if r.Len() != 0 {
		t.Errorf("expected an empty report, got %d rows", r.Len())
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.tsv")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if r.Len() != 0 {
		t.Errorf("expected an empty report, got %d rows", r.Len())
	}
}

func TestLoadMalformedHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.tsv")
	if err := os.WriteFile(path, []byte("sample\tAPOE_genotype\nS1\tAPOE-3/3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	var parseErr ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestLoadToleratesWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.tsv")
	if err := os.WriteFile(path, []byte("SampleID\tAPOE_genotype\n S1 \t APOE-3/4 \n"), 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if g, ok := r.Genotype("S1"); !ok || g != "APOE-3/4" {
		t.Errorf("got (%q, %v), expected (\"APOE-3/4\", true)", g, ok)
	}
}

func TestAppendDuplicate(t *testing.T) {
	r := &Report{genotypes: make(map[string]string)}
	if err := r.Append("S1", "APOE-3/3"); err != nil {
		t.Fatal(err)
	}

	err := r.Append("S1", "APOE-4/4")
	var dup DuplicateSampleError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateSampleError, got %v", err)
	}

	// The original row must be untouched
	if g, _ := r.Genotype("S1"); g != "APOE-3/3" {
		t.Errorf("duplicate append overwrote genotype: %q", g)
	}
}

func TestFlushLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.tsv")

	r := &Report{genotypes: make(map[string]string)}
	rows := []struct{ ID, Genotype string }{
		{"S1", "APOE-3/3"},
		{"S2", "APOE-3/4"},
		{"S3", "APOE_unknown"},
	}
	for _, v := range rows {
		if err := r.Append(v.ID, v.Genotype); err != nil {
			t.Fatal(err)
		}
	}

	if err := r.Flush(path); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if loaded.Len() != len(rows) {
		t.Fatalf("loaded %d rows, expected %d", loaded.Len(), len(rows))
	}
	for _, v := range rows {
		if g, ok := loaded.Genotype(v.ID); !ok || g != v.Genotype {
			t.Errorf("%s: got (%q, %v), expected (%q, true)", v.ID, g, ok, v.Genotype)
		}
	}

	// Insertion order must survive the round trip
	if err := loaded.Append("S4", "APOE-2/3"); err != nil {
		t.Fatal(err)
	}
	if err := loaded.Flush(path); err != nil {
		t.Fatal(err)
	}

	fileBytes, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	expected := "SampleID\tAPOE_genotype\nS1\tAPOE-3/3\nS2\tAPOE-3/4\nS3\tAPOE_unknown\nS4\tAPOE-2/3\n"
	if string(fileBytes) != expected {
		t.Errorf("got:\n%s\nexpected:\n%s", fileBytes, expected)
	}
}
