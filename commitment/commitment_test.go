package commitment

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/snpkzg/snpkzg/curve"
	"github.com/snpkzg/snpkzg/poly"
	"github.com/snpkzg/snpkzg/srs"
)

func scalar(v int64) curve.Scalar {
	var s curve.Scalar
	s.SetBigInt(big.NewInt(v))
	return s
}

func mustSRS(t *testing.T, degree uint) *srs.SRS {
	t.Helper()
	s, err := srs.Setup(rand.Reader, degree)
	if err != nil {
		t.Fatalf("srs.Setup: %v", err)
	}
	return s
}

// TestCommitMatchesDirectSum checks commit({(0,1),(2,5)}) == g1Powers[0] +
// 5·g1Powers[2], the direct algebraic definition of a commitment.
func TestCommitMatchesDirectSum(t *testing.T) {
	s := mustSRS(t, 3)
	p, err := poly.New([]uint64{0, 2}, []curve.Scalar{scalar(1), scalar(5)})
	if err != nil {
		t.Fatalf("poly.New: %v", err)
	}

	got, err := Commit(s, p)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}

	want := curve.AddG1(s.G1Powers[0], curve.ScalarMulG1(s.G1Powers[2], scalar(5)))
	if !curve.EqualG1(got.Point, want) {
		t.Fatal("Commit should equal the direct MSM sum")
	}
}

// TestCommitEmpty checks the empty-poly law: commit(empty) == identity.
func TestCommitEmpty(t *testing.T) {
	s := mustSRS(t, 3)
	got, err := Commit(s, poly.Empty())
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if !got.Equal(Identity()) {
		t.Fatal("Commit(empty) should be the identity")
	}
}

// TestCommitIndexOutOfRange checks the IndexOutOfRange error kind.
func TestCommitIndexOutOfRange(t *testing.T) {
	s := mustSRS(t, 3) // 2^3 = 8 powers, valid indices 0..7
	p, _ := poly.New([]uint64{8}, []curve.Scalar{scalar(1)})
	if _, err := Commit(s, p); err == nil {
		t.Fatal("expected IndexOutOfRange for index 8 against a degree-3 SRS")
	}
}

// TestCommitAdditivity checks commit(p) + commit(q) == commit(p ⊕ q).
func TestCommitAdditivity(t *testing.T) {
	s := mustSRS(t, 4)
	p, _ := poly.New([]uint64{1, 3}, []curve.Scalar{scalar(2), scalar(7)})
	q, _ := poly.New([]uint64{3, 9}, []curve.Scalar{scalar(4), scalar(1)})

	cp, err := Commit(s, p)
	if err != nil {
		t.Fatalf("Commit(p): %v", err)
	}
	cq, err := Commit(s, q)
	if err != nil {
		t.Fatalf("Commit(q): %v", err)
	}
	sum := Add(cp, cq)

	merged := poly.Add(p, q)
	cMerged, err := Commit(s, merged)
	if err != nil {
		t.Fatalf("Commit(p ⊕ q): %v", err)
	}

	if !sum.Equal(cMerged) {
		t.Fatal("commit(p) + commit(q) should equal commit(p ⊕ q)")
	}
}

// TestCommitmentSerializationRoundTrip checks that Bytes/FromBytes is the
// identity and rejects truncated input.
func TestCommitmentSerializationRoundTrip(t *testing.T) {
	s := mustSRS(t, 3)
	p, _ := poly.New([]uint64{1}, []curve.Scalar{scalar(9)})
	c, err := Commit(s, p)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}

	enc := c.Bytes()
	got, err := FromBytes(enc)
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if !got.Equal(c) {
		t.Fatal("FromBytes(Bytes(c)) should equal c")
	}

	if _, err := FromBytes(enc[:len(enc)-1]); err == nil {
		t.Fatal("FromBytes should reject a truncated encoding")
	}
}
