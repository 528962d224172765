package srs

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/snpkzg/snpkzg/curve"
)

// WriteTo serializes the SRS in canonical form: the G1 power count as an
// 8-byte little-endian unsigned integer, followed by each G1 power's
// compressed encoding, then the G2 power count and its compressed
// encodings the same way.
func (s *SRS) WriteTo(w io.Writer) (int64, error) {
	var total int64

	n, err := writeLen(w, uint64(len(s.G1Powers)))
	if err != nil {
		return total, err
	}
	total += n
	for _, p := range s.G1Powers {
		m, err := w.Write(curve.EncodeG1(p))
		total += int64(m)
		if err != nil {
			return total, err
		}
	}

	n, err = writeLen(w, uint64(len(s.G2Powers)))
	if err != nil {
		return total, err
	}
	total += n
	for _, p := range s.G2Powers {
		m, err := w.Write(curve.EncodeG2(p))
		total += int64(m)
		if err != nil {
			return total, err
		}
	}

	return total, nil
}

// ReadFrom deserializes an SRS in the format written by WriteTo. Every
// point is passed through curve.DecodeG1/DecodeG2, so non-canonical
// encodings, off-curve points, and points outside the prime-order
// subgroup are rejected with ErrDeserialize. The spec permits a faster
// "unchecked" load path specifically because internally-produced SRS
// files are trusted; this implementation always verifies, trading a
// constant amount of extra startup time for a single code path.
func (s *SRS) ReadFrom(r io.Reader) (int64, error) {
	var total int64

	n, g1Len, err := readLen(r)
	total += n
	if err != nil {
		return total, err
	}

	g1Powers := make([]curve.G1, g1Len)
	buf := make([]byte, curve.SizeG1Compressed)
	for i := range g1Powers {
		m, err := io.ReadFull(r, buf)
		total += int64(m)
		if err != nil {
			return total, fmt.Errorf("%w: reading g1 power %d: %v", ErrDeserialize, i, err)
		}
		p, err := curve.DecodeG1(buf)
		if err != nil {
			return total, fmt.Errorf("%w: g1 power %d: %v", ErrDeserialize, i, err)
		}
		g1Powers[i] = p
	}

	n, g2Len, err := readLen(r)
	total += n
	if err != nil {
		return total, err
	}

	g2Powers := make([]curve.G2, g2Len)
	buf2 := make([]byte, curve.SizeG2Compressed)
	for i := range g2Powers {
		m, err := io.ReadFull(r, buf2)
		total += int64(m)
		if err != nil {
			return total, fmt.Errorf("%w: reading g2 power %d: %v", ErrDeserialize, i, err)
		}
		p, err := curve.DecodeG2(buf2)
		if err != nil {
			return total, fmt.Errorf("%w: g2 power %d: %v", ErrDeserialize, i, err)
		}
		g2Powers[i] = p
	}

	s.G1Powers = g1Powers
	s.G2Powers = g2Powers
	return total, nil
}

func writeLen(w io.Writer, n uint64) (int64, error) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], n)
	m, err := w.Write(buf[:])
	return int64(m), err
}

func readLen(r io.Reader) (int64, uint64, error) {
	var buf [8]byte
	m, err := io.ReadFull(r, buf[:])
	if err != nil {
		return int64(m), 0, fmt.Errorf("%w: reading length prefix: %v", ErrDeserialize, err)
	}
	return int64(m), binary.LittleEndian.Uint64(buf[:]), nil
}
