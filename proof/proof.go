// Package proof implements the split-sum point-opening proof: evidence
// that a committed polynomial takes a specific value at a specific index,
// without polynomial division or interpolation.
//
// For a polynomial p(x) = Σ_k c_k·x^{idx_k} committed as C = p(τ)·G1,
// write p(τ) as the coefficient at the opened index i times τ^i, plus the
// sum of lower-index terms (p_L) plus the sum of higher-index terms
// (p_R). A proof is exactly (p_L(τ)·G1, p_R(τ)·G1); the verifier checks
// C == v·τ^i·G1 + L + R. This trades one extra G1 point (two instead of
// the usual one in quotient-polynomial KZG) for a prover that never
// divides or interpolates and a verifier that never pairs.
package proof

import (
	"errors"
	"fmt"
	"io"

	"github.com/snpkzg/snpkzg/commitment"
	"github.com/snpkzg/snpkzg/curve"
	"github.com/snpkzg/snpkzg/poly"
	"github.com/snpkzg/snpkzg/srs"
)

// Error kinds.
var (
	ErrIndexOutOfRange = errors.New("proof: index out of range")
	ErrMalformedPoly   = errors.New("proof: malformed polynomial")
	ErrVerifyReject    = errors.New("proof: verification rejected")
	ErrDeserialize     = errors.New("proof: malformed encoding")
)

// PointProof is the two-element witness (L, R) for an opening claim.
type PointProof struct {
	L curve.G1
	R curve.G1
}

// Prove computes the opening proof that p evaluates to the coefficient at
// index i (or 0, if i is absent from p). i must be within the SRS's
// range. The coefficient at idx == i, if any, is intentionally excluded
// from both L and R.
func Prove(s *srs.SRS, p *poly.SparsePoly, i uint64) (PointProof, error) {
	if !p.IsCanonical() {
		return PointProof{}, ErrMalformedPoly
	}
	n := uint64(len(s.G1Powers))
	if i >= n {
		return PointProof{}, fmt.Errorf("%w: index %d >= 2^%d", ErrIndexOutOfRange, i, s.Degree())
	}
	for _, idx := range p.Idx {
		if idx >= n {
			return PointProof{}, fmt.Errorf("%w: index %d >= 2^%d", ErrIndexOutOfRange, idx, s.Degree())
		}
	}

	var lBases, rBases []curve.G1
	var lCoef, rCoef []curve.Scalar
	for k, idx := range p.Idx {
		switch {
		case idx < i:
			lBases = append(lBases, s.G1Powers[idx])
			lCoef = append(lCoef, p.Coef[k])
		case idx > i:
			rBases = append(rBases, s.G1Powers[idx])
			rCoef = append(rCoef, p.Coef[k])
		}
	}

	l, err := curve.MSM(lBases, lCoef)
	if err != nil {
		return PointProof{}, err
	}
	r, err := curve.MSM(rBases, rCoef)
	if err != nil {
		return PointProof{}, err
	}
	return PointProof{L: l, R: r}, nil
}

// Verify checks that c is a commitment to a polynomial whose coefficient
// at index i is v, given the opening proof pf. It rejects if i is out of
// the SRS's range, and otherwise accepts iff the affine equality
// C == v·g1Powers[i] + L + R holds.
func Verify(s *srs.SRS, c commitment.Commitment, i uint64, v curve.Scalar, pf PointProof) error {
	n := uint64(len(s.G1Powers))
	if i >= n {
		return ErrVerifyReject
	}

	vTerm := curve.ScalarMulG1(s.G1Powers[i], v)
	expected := curve.AddG1(curve.AddG1(vTerm, pf.L), pf.R)

	if !curve.EqualG1(expected, c.Point) {
		return ErrVerifyReject
	}
	return nil
}

// WriteTo serializes the proof as two compressed G1 points, L then R.
func (pf PointProof) WriteTo(w io.Writer) (int64, error) {
	var total int64
	n, err := w.Write(curve.EncodeG1(pf.L))
	total += int64(n)
	if err != nil {
		return total, err
	}
	n, err = w.Write(curve.EncodeG1(pf.R))
	total += int64(n)
	return total, err
}

// Bytes returns the proof's canonical compressed encoding: L then R.
func (pf PointProof) Bytes() []byte {
	return append(curve.EncodeG1(pf.L), curve.EncodeG1(pf.R)...)
}

// FromBytes parses a proof from its canonical compressed encoding.
func FromBytes(data []byte) (PointProof, error) {
	if len(data) != 2*curve.SizeG1Compressed {
		return PointProof{}, fmt.Errorf("%w: expected %d bytes, got %d", ErrDeserialize, 2*curve.SizeG1Compressed, len(data))
	}
	l, err := curve.DecodeG1(data[:curve.SizeG1Compressed])
	if err != nil {
		return PointProof{}, fmt.Errorf("%w: L: %v", ErrDeserialize, err)
	}
	r, err := curve.DecodeG1(data[curve.SizeG1Compressed:])
	if err != nil {
		return PointProof{}, fmt.Errorf("%w: R: %v", ErrDeserialize, err)
	}
	return PointProof{L: l, R: r}, nil
}
