package srs

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/snpkzg/snpkzg/curve"
)

// TestSetupSeedOnly exercises the seed-phase-only path (degree <= 12) and
// checks the basic shape of the result: 2^degree G1 powers, 65 G2 powers,
// and the prescribed generators as the zeroth powers.
func TestSetupSeedOnly(t *testing.T) {
	s, err := Setup(rand.Reader, 3)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if len(s.G1Powers) != 8 {
		t.Fatalf("len(G1Powers) = %d, want 8", len(s.G1Powers))
	}
	if len(s.G2Powers) != numG2Powers {
		t.Fatalf("len(G2Powers) = %d, want %d", len(s.G2Powers), numG2Powers)
	}
	g1Gen, g2Gen := curve.Generators()
	if !curve.EqualG1(s.G1Powers[0], g1Gen) {
		t.Fatal("G1Powers[0] should be the G1 generator")
	}
	if !s.G2Powers[0].Equal(&g2Gen) {
		t.Fatal("G2Powers[0] should be the G2 generator")
	}
}

// TestSetupPairingLadderSeedOnly checks the required pairing-consistency
// property over a small SRS that exercises only the seed phase.
func TestSetupPairingLadderSeedOnly(t *testing.T) {
	s, err := Setup(rand.Reader, 4)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if err := s.CheckPairingLadder(); err != nil {
		t.Fatalf("CheckPairingLadder: %v", err)
	}
}

// TestSetupPairingLadderShiftPhase checks the same property across a
// degree large enough to exercise the parallel shift phase (2^13 > 2^12).
func TestSetupPairingLadderShiftPhase(t *testing.T) {
	s, err := Setup(rand.Reader, 13)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if len(s.G1Powers) != 1<<13 {
		t.Fatalf("len(G1Powers) = %d, want %d", len(s.G1Powers), 1<<13)
	}
	if err := s.CheckPairingLadder(); err != nil {
		t.Fatalf("CheckPairingLadder: %v", err)
	}
}

// TestSetupDegreeTooLarge checks the DegreeTooLarge error kind.
func TestSetupDegreeTooLarge(t *testing.T) {
	_, err := Setup(rand.Reader, maxDegreeCap+1)
	if err == nil {
		t.Fatal("expected an error for an excessive degree")
	}
}

// TestSetupRngFailure checks that an exhausted RNG surfaces RngFailure
// rather than a panic.
func TestSetupRngFailure(t *testing.T) {
	_, err := Setup(bytes.NewReader(nil), 3)
	if err == nil {
		t.Fatal("expected an rng failure")
	}
}

// TestSerializationRoundTrip checks that WriteTo followed by ReadFrom
// reproduces an equal SRS, and that truncated input is rejected.
func TestSerializationRoundTrip(t *testing.T) {
	s, err := Setup(rand.Reader, 4)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}

	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	var got SRS
	if _, err := got.ReadFrom(&buf); err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}

	if len(got.G1Powers) != len(s.G1Powers) || len(got.G2Powers) != len(s.G2Powers) {
		t.Fatal("round-tripped SRS has the wrong shape")
	}
	for i := range s.G1Powers {
		if !curve.EqualG1(got.G1Powers[i], s.G1Powers[i]) {
			t.Fatalf("G1Powers[%d] mismatch after round trip", i)
		}
	}

	truncated := bytes.NewReader([]byte{1, 2, 3})
	var bad SRS
	if _, err := bad.ReadFrom(truncated); err == nil {
		t.Fatal("ReadFrom should reject truncated input")
	}
}
