// Package srs generates and serializes the structured reference string
// (the powers-of-tau public parameters) that commitment and proof
// operations are defined over.
package srs

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"runtime"
	"sync"

	"github.com/snpkzg/snpkzg/curve"
	"github.com/snpkzg/snpkzg/log"
)

var logger = log.Default().Module("srs")

// Parameter limits and structural constants fixed by the design: the SRS
// is generated in a sequential seed phase up to 2^seedLog powers, then a
// parallel shift phase for anything beyond that. The G2 side never grows
// past numG2Powers regardless of D, since it is used only by the offline
// pairing-consistency check.
const (
	seedLog      = 12
	seedSize     = 1 << seedLog
	numG2Powers  = 65
	maxDegreeCap = 40 // 2^40 G1 points would already exhaust any realistic machine; guards against degree overflow.
)

// Error kinds surfaced by Setup and deserialization.
var (
	ErrRngFailure     = errors.New("srs: rng failure")
	ErrDegreeTooLarge = errors.New("srs: degree exceeds configured maximum")
	ErrDeserialize    = errors.New("srs: malformed encoding")
)

// SRS is the structured reference string: g1Powers[i] = τ^i·G1 for
// i in [0, 2^D), and g2Powers[i] = τ^i·G2 for i in [0, 65). τ itself is
// never retained past Setup.
type SRS struct {
	G1Powers []curve.G1
	G2Powers []curve.G2
}

// Degree returns D such that len(G1Powers) == 2^D.
func (s *SRS) Degree() uint {
	d := uint(0)
	for n := uint64(len(s.G1Powers)); n > 1; n >>= 1 {
		d++
	}
	return d
}

// Setup draws τ uniformly from F using rng, then computes the powers of τ
// in G1 (up to 2^degree) and in G2 (up to 65). degree may not exceed the
// fixed cap maxDegreeCap (40); a larger degree returns ErrDegreeTooLarge.
//
// Generation happens in two phases. The seed phase computes the first
// min(2^degree, 2^12) G1 powers sequentially, each by one scalar
// multiplication of the previous power by τ. If degree exceeds 12, the
// shift phase computes the remaining powers in parallel: each chunk of
// 2^12 consecutive powers beyond the seed is obtained by scaling the seed
// chunk by a precomputed shift scalar τ^(j·2^12), so chunks never depend
// on one another. The G2 side is always computed sequentially since it
// never exceeds 65 points.
func Setup(rng io.Reader, degree uint) (*SRS, error) {
	if degree > maxDegreeCap {
		return nil, fmt.Errorf("%w: degree %d > %d", ErrDegreeTooLarge, degree, maxDegreeCap)
	}

	tau, err := curve.SampleScalar(rng)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRngFailure, err)
	}
	defer tau.SetZero()

	n := uint64(1) << degree
	g1Gen, g2Gen := curve.Generators()

	g1Powers := make([]curve.G1, n)
	seedLen := n
	if seedLen > seedSize {
		seedLen = seedSize
	}

	g1Powers[0] = g1Gen
	for i := uint64(1); i < seedLen; i++ {
		g1Powers[i] = curve.ScalarMulG1(g1Powers[i-1], tau)
	}

	if n > seedSize {
		if err := shiftPhase(g1Powers, tau); err != nil {
			return nil, err
		}
	}

	g2Powers := make([]curve.G2, numG2Powers)
	g2Powers[0] = g2Gen
	for i := 1; i < numG2Powers; i++ {
		var tBig big.Int
		tau.BigInt(&tBig)
		g2Powers[i] = g2Powers[i-1]
		g2Powers[i].ScalarMultiplication(&g2Powers[i-1], &tBig)
	}

	for i, p := range g1Powers {
		if curve.IsIdentityG1(p) {
			panic(fmt.Sprintf("srs: g1 power %d is the identity, this is an implementation bug", i))
		}
	}

	logger.Info("srs generated", "degree", degree, "g1_powers", len(g1Powers), "g2_powers", len(g2Powers))

	return &SRS{G1Powers: g1Powers, G2Powers: g2Powers}, nil
}

// shiftPhase fills g1Powers[seedSize:] given the already-computed seed
// chunk g1Powers[:seedSize]. Chunks are independent once the shift
// scalars are known, so they are handed to a bounded worker pool sized to
// the available CPUs.
func shiftPhase(g1Powers []curve.G1, tau curve.Scalar) error {
	n := uint64(len(g1Powers))
	numChunks := n/seedSize - 1
	if numChunks == 0 {
		return nil
	}

	shifts := make([]curve.Scalar, numChunks+1)
	for j := uint64(1); j <= numChunks; j++ {
		exp := new(big.Int).SetUint64(j * seedSize)
		shifts[j].Exp(tau, exp)
	}

	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}
	jobs := make(chan uint64, numChunks)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				shift := shifts[j]
				base := j * seedSize
				for k := uint64(0); k < seedSize; k++ {
					g1Powers[base+k] = curve.ScalarMulG1(g1Powers[k], shift)
				}
			}
		}()
	}
	for j := uint64(1); j <= numChunks; j++ {
		jobs <- j
	}
	close(jobs)
	wg.Wait()

	return nil
}
