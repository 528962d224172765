package srs

import (
	"errors"
	"fmt"

	"github.com/snpkzg/snpkzg/curve"
)

// ErrInconsistent is returned by CheckPairingLadder when an SRS fails the
// pairing-consistency relation.
var ErrInconsistent = errors.New("srs: pairing-consistency check failed")

// CheckPairingLadder verifies, for every i in [1, len(G1Powers)-1), that
// e(g1Powers[i], g2Powers[1]) == e(g1Powers[i+1], g2Powers[0]). This is
// the offline relation that attests the SRS was actually built from
// consecutive powers of a single τ; it is never evaluated by the online
// verifier, which performs no pairings at all.
func (s *SRS) CheckPairingLadder() error {
	if len(s.G2Powers) < 2 {
		return fmt.Errorf("%w: g2 side too small to check", ErrInconsistent)
	}
	for i := 1; i < len(s.G1Powers)-1; i++ {
		var negNext curve.G1
		negNext.Neg(&s.G1Powers[i+1])

		ok, err := curve.Pairing(
			[]curve.G1{s.G1Powers[i], negNext},
			[]curve.G2{s.G2Powers[1], s.G2Powers[0]},
		)
		if err != nil {
			return fmt.Errorf("%w: index %d: %v", ErrInconsistent, i, err)
		}
		if !ok {
			return fmt.Errorf("%w: index %d", ErrInconsistent, i)
		}
	}
	return nil
}
