// Package commitment produces and serializes KZG commitments to sparse
// polynomials over a structured reference string.
package commitment

import (
	"errors"
	"fmt"
	"io"

	"github.com/snpkzg/snpkzg/curve"
	"github.com/snpkzg/snpkzg/poly"
	"github.com/snpkzg/snpkzg/srs"
)

// ErrIndexOutOfRange is returned when a polynomial references an index
// that the SRS has no power for.
var ErrIndexOutOfRange = errors.New("commitment: index out of range")

// ErrDeserialize is returned when a commitment's byte encoding is not a
// canonical compressed G1 point.
var ErrDeserialize = errors.New("commitment: malformed encoding")

// Commitment is a single G1 point binding the committer to a polynomial:
// C = Σ_k coef[k]·g1Powers[idx[k]].
type Commitment struct {
	Point curve.G1
}

// Identity returns the commitment to the empty polynomial.
func Identity() Commitment {
	return Commitment{Point: curve.IdentityG1()}
}

// Equal reports whether two commitments denote the same point.
func (c Commitment) Equal(other Commitment) bool {
	return curve.EqualG1(c.Point, other.Point)
}

// Commit computes the commitment to p under the given SRS. p need not be
// in canonical form, but every index it references must be within the
// SRS's range, i.e. less than 2^D.
func Commit(s *srs.SRS, p *poly.SparsePoly) (Commitment, error) {
	if err := checkRange(s, p); err != nil {
		return Commitment{}, err
	}

	bases := make([]curve.G1, len(p.Idx))
	for k, idx := range p.Idx {
		bases[k] = s.G1Powers[idx]
	}

	point, err := curve.MSM(bases, p.Coef)
	if err != nil {
		return Commitment{}, err
	}
	return Commitment{Point: point}, nil
}

// Add returns the commitment to the sum of the two committed polynomials,
// computed directly from the commitments: commit(p) + commit(q) ==
// commit(p ⊕ q).
func Add(a, b Commitment) Commitment {
	return Commitment{Point: curve.AddG1(a.Point, b.Point)}
}

func checkRange(s *srs.SRS, p *poly.SparsePoly) error {
	n := uint64(len(s.G1Powers))
	for _, idx := range p.Idx {
		if idx >= n {
			return fmt.Errorf("%w: index %d >= 2^%d", ErrIndexOutOfRange, idx, s.Degree())
		}
	}
	return nil
}

// WriteTo serializes the commitment as a single compressed G1 point.
func (c Commitment) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(curve.EncodeG1(c.Point))
	return int64(n), err
}

// Bytes returns the commitment's canonical compressed encoding.
func (c Commitment) Bytes() []byte {
	return curve.EncodeG1(c.Point)
}

// FromBytes parses a commitment from its canonical compressed encoding.
func FromBytes(data []byte) (Commitment, error) {
	p, err := curve.DecodeG1(data)
	if err != nil {
		return Commitment{}, fmt.Errorf("%w: %v", ErrDeserialize, err)
	}
	return Commitment{Point: p}, nil
}
