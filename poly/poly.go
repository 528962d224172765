// Package poly implements the sparse polynomial representation committed
// to by the rest of the module: a set of (index, coefficient) pairs
// denoting a polynomial whose only nonzero terms are coef·x^idx.
package poly

import (
	"errors"
	"sort"

	"github.com/snpkzg/snpkzg/curve"
)

// ErrMalformedPoly is returned when the idx and coef slices backing a
// SparsePoly do not have equal length.
var ErrMalformedPoly = errors.New("poly: idx and coef must have equal length")

// SparsePoly is a polynomial over the scalar field represented by its
// nonzero terms. In canonical form, Idx is strictly increasing, Coef has
// the same length as Idx, and no Coef entry is zero. Canonicalization is
// the constructor's job; once built, a SparsePoly is read-only.
type SparsePoly struct {
	Idx  []uint64
	Coef []curve.Scalar
}

// Empty returns the zero polynomial.
func Empty() *SparsePoly {
	return &SparsePoly{}
}

// New builds a canonical SparsePoly from raw (idx, coef) pairs. Duplicate
// indices are collapsed by summing their coefficients in the field, zero
// coefficients are dropped, and the result is sorted by index. The inputs
// need not already be sorted or deduplicated.
func New(idx []uint64, coef []curve.Scalar) (*SparsePoly, error) {
	if len(idx) != len(coef) {
		return nil, ErrMalformedPoly
	}

	byIdx := make(map[uint64]curve.Scalar, len(idx))
	order := make([]uint64, 0, len(idx))
	for k, i := range idx {
		if existing, ok := byIdx[i]; ok {
			existing.Add(&existing, &coef[k])
			byIdx[i] = existing
			continue
		}
		byIdx[i] = coef[k]
		order = append(order, i)
	}

	sort.Slice(order, func(a, b int) bool { return order[a] < order[b] })

	p := &SparsePoly{
		Idx:  make([]uint64, 0, len(order)),
		Coef: make([]curve.Scalar, 0, len(order)),
	}
	for _, i := range order {
		c := byIdx[i]
		if c.IsZero() {
			continue
		}
		p.Idx = append(p.Idx, i)
		p.Coef = append(p.Coef, c)
	}
	return p, nil
}

// IsCanonical reports whether Idx is strictly increasing and has the same
// length as Coef. Verification code relies only on this, not on the
// absence of zero coefficients: a SparsePoly built by something other than
// New may legally contain them.
func (p *SparsePoly) IsCanonical() bool {
	if len(p.Idx) != len(p.Coef) {
		return false
	}
	for k := 1; k < len(p.Idx); k++ {
		if p.Idx[k] <= p.Idx[k-1] {
			return false
		}
	}
	return true
}

// Len returns the number of nonzero terms.
func (p *SparsePoly) Len() int {
	return len(p.Idx)
}

// MaxIndex returns the largest index present, or 0 for the empty
// polynomial. Since Idx is sorted in canonical form, this is the last
// entry.
func (p *SparsePoly) MaxIndex() uint64 {
	if len(p.Idx) == 0 {
		return 0
	}
	return p.Idx[len(p.Idx)-1]
}

// At returns the coefficient at index i, and whether it is present.
func (p *SparsePoly) At(i uint64) (curve.Scalar, bool) {
	// Idx is sorted; a linear scan is fine at the sizes this module deals
	// with (profiles have at most a few million entries) and keeps the
	// type simple to build from external input.
	for k, idx := range p.Idx {
		if idx == i {
			return p.Coef[k], true
		}
		if idx > i {
			break
		}
	}
	return curve.Scalar{}, false
}

// Add returns a new SparsePoly whose coefficients are the field-wise sum
// of p and q's coefficients at matching indices. Both inputs must already
// be canonical.
func Add(p, q *SparsePoly) *SparsePoly {
	idx := make([]uint64, 0, len(p.Idx)+len(q.Idx))
	coef := make([]curve.Scalar, 0, len(p.Idx)+len(q.Idx))
	idx = append(idx, p.Idx...)
	coef = append(coef, p.Coef...)
	idx = append(idx, q.Idx...)
	coef = append(coef, q.Coef...)
	// New performs the sort, dedup-by-sum, and zero-drop this needs.
	sum, _ := New(idx, coef)
	return sum
}
