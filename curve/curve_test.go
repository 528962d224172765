package curve

import (
	"bytes"
	"math/big"
	"testing"
)

// TestSampleScalarDeterministic checks that SampleScalar is a pure function
// of its input bytes: same reader contents, same scalar.
func TestSampleScalarDeterministic(t *testing.T) {
	seed := bytes.Repeat([]byte{0x11}, 64)
	a, err := SampleScalar(bytes.NewReader(seed))
	if err != nil {
		t.Fatalf("SampleScalar: %v", err)
	}
	b, err := SampleScalar(bytes.NewReader(seed))
	if err != nil {
		t.Fatalf("SampleScalar: %v", err)
	}
	if !a.Equal(&b) {
		t.Fatal("SampleScalar should be deterministic given identical input bytes")
	}
}

// TestSampleScalarRngFailure checks that a reader which never produces
// enough bytes surfaces ErrRngFailure rather than panicking or looping.
func TestSampleScalarRngFailure(t *testing.T) {
	_, err := SampleScalar(bytes.NewReader(nil))
	if err == nil {
		t.Fatal("expected an error from an exhausted reader")
	}
}

// TestMSMMatchesRepeatedScalarMul checks that MSM({3G1}, {2}) == 6G1,
// comparing the MSM result against a direct scalar multiplication of G1
// by 6.
func TestMSMMatchesRepeatedScalarMul(t *testing.T) {
	g1, _ := Generators()
	three := ScalarMulG1(g1, scalarFromInt(3))

	var two Scalar
	two.SetBigInt(big.NewInt(2))

	got, err := MSM([]G1{three}, []Scalar{two})
	if err != nil {
		t.Fatalf("MSM: %v", err)
	}

	want := ScalarMulG1(g1, scalarFromInt(6))
	if !EqualG1(got, want) {
		t.Fatal("MSM(3G, 2) should equal 6G")
	}
}

// TestMSMEmpty checks that MSM of zero terms is the identity, matching the
// empty-polynomial commitment law.
func TestMSMEmpty(t *testing.T) {
	got, err := MSM(nil, nil)
	if err != nil {
		t.Fatalf("MSM: %v", err)
	}
	if !IsIdentityG1(got) {
		t.Fatal("MSM of no terms should be the identity")
	}
}

// TestPairingLadder checks e(2G1, G2) == e(G1, 2G2), the basic bilinearity
// relation the SRS pairing-consistency test relies on.
func TestPairingLadder(t *testing.T) {
	g1, g2 := Generators()
	two := scalarFromInt(2)

	twoG1 := ScalarMulG1(g1, two)
	var twoBig big.Int
	two.BigInt(&twoBig)
	var twoG2 G2
	twoG2.ScalarMultiplication(&g2, &twoBig)

	var negG1 G1
	negG1.Neg(&g1)

	ok, err := Pairing([]G1{twoG1, negG1}, []G2{g2, twoG2})
	if err != nil {
		t.Fatalf("Pairing: %v", err)
	}
	if !ok {
		t.Fatal("e(2G1, G2) should equal e(G1, 2G2)")
	}
}

// TestEncodeDecodeG1RoundTrip checks that compressed encode/decode is the
// identity and that truncated input is rejected.
func TestEncodeDecodeG1RoundTrip(t *testing.T) {
	g1, _ := Generators()
	p := ScalarMulG1(g1, scalarFromInt(7))

	enc := EncodeG1(p)
	if len(enc) != SizeG1Compressed {
		t.Fatalf("encoded length = %d, want %d", len(enc), SizeG1Compressed)
	}

	dec, err := DecodeG1(enc)
	if err != nil {
		t.Fatalf("DecodeG1: %v", err)
	}
	if !EqualG1(dec, p) {
		t.Fatal("decode(encode(p)) should equal p")
	}

	if _, err := DecodeG1(enc[:len(enc)-1]); err == nil {
		t.Fatal("DecodeG1 should reject a truncated encoding")
	}
}

// TestEncodeDecodeG2RoundTrip mirrors TestEncodeDecodeG1RoundTrip for G2.
func TestEncodeDecodeG2RoundTrip(t *testing.T) {
	_, g2 := Generators()
	enc := EncodeG2(g2)
	if len(enc) != SizeG2Compressed {
		t.Fatalf("encoded length = %d, want %d", len(enc), SizeG2Compressed)
	}
	dec, err := DecodeG2(enc)
	if err != nil {
		t.Fatalf("DecodeG2: %v", err)
	}
	if !dec.Equal(&g2) {
		t.Fatal("decode(encode(g2)) should equal g2")
	}
}

func scalarFromInt(v int64) Scalar {
	var s Scalar
	s.SetBigInt(big.NewInt(v))
	return s
}
