package main

import (
	"fmt"
	"os"

	"github.com/snpkzg/snpkzg/dna"
	"github.com/snpkzg/snpkzg/srs"
)

// loadSRS reads public parameters from path.
func loadSRS(path string) (*srs.SRS, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var s srs.SRS
	if _, err := s.ReadFrom(f); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return &s, nil
}

// loadFilter reads an rsID filter file from path.
func loadFilter(path string) (dna.Filter, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return dna.LoadFilter(f)
}
