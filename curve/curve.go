// Package curve wraps the pairing-friendly curve arithmetic that the rest
// of the module builds on: the scalar field, the two source groups G1 and
// G2, the pairing map, canonical compressed encodings, and a parallel
// multi-scalar multiplication primitive. Every other package talks to the
// curve only through this package so the concrete curve choice stays in
// one place.
package curve

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Scalar is an element of the scalar field F_r of the curve.
type Scalar = fr.Element

// G1 is a point of the first source group, in affine form.
type G1 = bls12381.G1Affine

// G2 is a point of the second source group, in affine form.
type G2 = bls12381.G2Affine

// SizeG1Compressed and SizeG2Compressed are the wire sizes of a compressed
// point encoding for this curve.
const (
	SizeG1Compressed = bls12381.SizeOfG1AffineCompressed
	SizeG2Compressed = bls12381.SizeOfG2AffineCompressed
)

// ErrRngFailure is returned when the caller-supplied randomness source
// cannot produce the bytes needed to sample a scalar.
var ErrRngFailure = errors.New("curve: rng failure")

// ErrLengthMismatch is returned by MSM when the bases and scalars slices
// passed to it are not the same length.
var ErrLengthMismatch = errors.New("curve: bases/scalars length mismatch")

// Generators returns the standard generators of G1 and G2.
func Generators() (G1, G2) {
	_, _, g1, g2 := bls12381.Generators()
	return g1, g2
}

// SampleScalar draws a uniformly random nonzero element of F_r from rng
// using rejection sampling. fr.Element's own SetRandom always reads from
// crypto/rand, which makes it untestable against a fixed seed and unable
// to surface a caller's RNG failure, so this helper reads raw bytes from
// the supplied reader instead and rejects samples outside [1, r).
func SampleScalar(rng io.Reader) (Scalar, error) {
	modulus := fr.Modulus()
	buf := make([]byte, fr.Bytes)
	for {
		if _, err := io.ReadFull(rng, buf); err != nil {
			return Scalar{}, fmt.Errorf("%w: %v", ErrRngFailure, err)
		}
		v := new(big.Int).SetBytes(buf)
		if v.Sign() == 0 || v.Cmp(modulus) >= 0 {
			continue
		}
		var s Scalar
		s.SetBigInt(v)
		return s, nil
	}
}

// MSM computes the multi-scalar multiplication Σ scalars[k]·bases[k] in G1.
// It requires len(bases) == len(scalars) and returns ErrLengthMismatch
// otherwise. gnark-crypto's own MultiExp fans this out across goroutines
// internally, so this wrapper performs no further manual chunking.
func MSM(bases []G1, scalars []Scalar) (G1, error) {
	var res G1
	if len(bases) != len(scalars) {
		return G1{}, ErrLengthMismatch
	}
	if len(bases) == 0 {
		return res, nil
	}
	cfg := ecc.MultiExpConfig{}
	if _, err := res.MultiExp(bases, scalars, cfg); err != nil {
		return G1{}, err
	}
	return res, nil
}

// Pairing evaluates the product of pairings e(g1s[i], g2s[i]) and reports
// whether it equals the identity of GT. Both slices must have equal,
// nonzero length.
func Pairing(g1s []G1, g2s []G2) (bool, error) {
	return bls12381.PairingCheck(g1s, g2s)
}

// AddG1 returns a + b in G1.
func AddG1(a, b G1) G1 {
	var aJac, bJac, resJac bls12381.G1Jac
	aJac.FromAffine(&a)
	bJac.FromAffine(&b)
	resJac.Set(&aJac).AddAssign(&bJac)
	var res G1
	res.FromJacobian(&resJac)
	return res
}

// ScalarMulG1 returns s·p in G1.
func ScalarMulG1(p G1, s Scalar) G1 {
	var sBig big.Int
	s.BigInt(&sBig)
	var res G1
	res.ScalarMultiplication(&p, &sBig)
	return res
}

// IdentityG1 returns the identity element (point at infinity) of G1.
func IdentityG1() G1 {
	var p G1
	return p
}

// IsIdentityG1 reports whether p is the identity element of G1.
func IsIdentityG1(p G1) bool {
	return p.IsInfinity()
}

// EqualG1 reports whether a and b denote the same affine point.
func EqualG1(a, b G1) bool {
	return a.Equal(&b)
}

// EncodeG1 returns the canonical compressed encoding of p.
func EncodeG1(p G1) []byte {
	b := p.Bytes()
	return b[:]
}

// DecodeG1 parses a canonical compressed G1 encoding. It rejects
// non-canonical encodings, off-curve points, and points outside the
// prime-order subgroup.
func DecodeG1(data []byte) (G1, error) {
	var p G1
	if len(data) != SizeG1Compressed {
		return p, fmt.Errorf("curve: G1 encoding must be %d bytes, got %d", SizeG1Compressed, len(data))
	}
	if _, err := p.SetBytes(data); err != nil {
		return G1{}, err
	}
	return p, nil
}

// SizeScalar is the wire size of a scalar encoding.
const SizeScalar = fr.Bytes

// EncodeScalar returns the canonical big-endian encoding of s.
func EncodeScalar(s Scalar) []byte {
	b := s.Bytes()
	return b[:]
}

// DecodeScalar parses a canonical big-endian scalar encoding, rejecting
// values not fully reduced modulo r.
func DecodeScalar(data []byte) (Scalar, error) {
	var s Scalar
	if len(data) != SizeScalar {
		return s, fmt.Errorf("curve: scalar encoding must be %d bytes, got %d", SizeScalar, len(data))
	}
	v := new(big.Int).SetBytes(data)
	if v.Cmp(fr.Modulus()) >= 0 {
		return s, fmt.Errorf("curve: scalar encoding %x is not reduced modulo r", data)
	}
	s.SetBigInt(v)
	return s, nil
}

// EncodeG2 returns the canonical compressed encoding of p.
func EncodeG2(p G2) []byte {
	b := p.Bytes()
	return b[:]
}

// DecodeG2 parses a canonical compressed G2 encoding, with the same
// rejection rules as DecodeG1.
func DecodeG2(data []byte) (G2, error) {
	var p G2
	if len(data) != SizeG2Compressed {
		return p, fmt.Errorf("curve: G2 encoding must be %d bytes, got %d", SizeG2Compressed, len(data))
	}
	if _, err := p.SetBytes(data); err != nil {
		return G2{}, err
	}
	return p, nil
}
