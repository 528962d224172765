// Package dna is the external domain-mapping collaborator: it turns a VCF
// variant-call file and an rsID filter into the sparse polynomial that
// the cryptographic core commits to and opens proofs over. None of this
// package is part of the committed security argument; it exists so the
// CLI has a concrete, reproducible mapping to call into the core with.
package dna

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/snpkzg/snpkzg/curve"
	"github.com/snpkzg/snpkzg/log"
	"github.com/snpkzg/snpkzg/poly"
)

var logger = log.Default().Module("dna")

// ErrIo wraps failures reading VCF input.
var ErrIo = errors.New("dna: io error")

// Filter maps an rsID (the integer suffix of an "rsNNNN" identifier) to
// its slot index in the committed polynomial. It is loaded externally,
// line by line: the rsID on the N-th non-blank line of the filter file
// (counting from 0) maps to slot N.
type Filter map[uint64]uint64

// LoadFilter reads a filter file, one rsID per line, assigning slot
// indices by line number starting at 0. Blank lines are skipped without
// consuming a slot.
func LoadFilter(r io.Reader) (Filter, error) {
	f := make(Filter)
	scanner := bufio.NewScanner(r)
	slot := uint64(0)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		rsid, err := strconv.ParseUint(line, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: parsing filter line %q: %v", ErrIo, line, err)
		}
		f[rsid] = slot
		slot++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIo, err)
	}
	return f, nil
}

// baseToField is the external, deliberately lossy base-to-field-element
// table. It collapses complementary bases (A/T both map to 1, C/G both
// map to 2) by application-level design, not by accident; this is
// documented here and must not be "fixed" into a 1:1 mapping, since
// existing commitments and proofs are defined relative to this table.
func baseToField(base string) uint64 {
	switch base {
	case "A", "T":
		return 1
	case "C", "G":
		return 2
	default:
		return 0
	}
}

// openVCF opens path for reading, transparently gzip-decoding it if the
// path ends in ".gz".
func openVCF(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", ErrIo, path, err)
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}
	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: gzip header in %s: %v", ErrIo, path, err)
	}
	return &gzipFile{gz: gz, f: f}, nil
}

// gzipFile closes both the gzip reader and the underlying file.
type gzipFile struct {
	gz *gzip.Reader
	f  *os.File
}

func (g *gzipFile) Read(p []byte) (int, error) { return g.gz.Read(p) }
func (g *gzipFile) Close() error {
	err := g.gz.Close()
	if cerr := g.f.Close(); err == nil {
		err = cerr
	}
	return err
}

// ProfileFromVCFFile reads the VCF at path (transparently gzip-decoded if
// it ends in ".gz") and reduces it to a SparsePoly through filter, the
// canonical rsID-indexed domain mapping: lines starting with "##" are
// skipped, the remaining lines
// are split on whitespace, the third column must start with "rs" for the
// line to be considered, and the fifth column (alternative allele) maps
// through baseToField. rsIDs absent from filter are skipped. Duplicate
// rsIDs collapse by summing in the field, which poly.New performs.
func ProfileFromVCFFile(path string, filter Filter) (*poly.SparsePoly, error) {
	r, err := openVCF(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return ProfileFromVCF(r, filter)
}

// ProfileFromVCF is ProfileFromVCFFile without the file-opening step, for
// callers that already have a decoded stream (tests, or an already
// gzip-unwrapped reader).
func ProfileFromVCF(r io.Reader, filter Filter) (*poly.SparsePoly, error) {
	var idx []uint64
	var coef []curve.Scalar

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.HasPrefix(line, "##") {
			continue
		}
		cells := strings.Fields(line)
		if len(cells) < 5 {
			continue
		}
		if !strings.HasPrefix(cells[2], "rs") {
			continue
		}
		rsid, err := strconv.ParseUint(cells[2][2:], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: bad rsID %q: %v", ErrIo, lineNo, cells[2], err)
		}
		slot, ok := filter[rsid]
		if !ok {
			continue
		}

		var c curve.Scalar
		c.SetUint64(baseToField(cells[4]))

		idx = append(idx, slot)
		coef = append(coef, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIo, err)
	}

	p, err := poly.New(idx, coef)
	if err != nil {
		return nil, err
	}
	logger.Info("loaded vcf profile", "lines", lineNo, "terms", p.Len())
	return p, nil
}
