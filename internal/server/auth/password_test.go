package auth

import "testing"

func TestBcryptHasher_HashProducesDistinctDigests(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher(4) // lowest cost, keeps the test fast

	d1, err := h.Hash("password123")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	d2, err := h.Hash("password123")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	if d1 == d2 {
		t.Fatalf("expected distinct digests, both were %q", d1)
	}
	if !h.Verify("password123", d1) {
		t.Fatalf("first digest did not verify")
	}
	if !h.Verify("password123", d2) {
		t.Fatalf("second digest did not verify")
	}
}

func TestBcryptHasher_VerifyMismatch(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher(4)

	d, err := h.Hash("correct horse")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if h.Verify("battery staple", d) {
		t.Fatalf("wrong password verified")
	}
}

func TestBcryptHasher_VerifyMalformedDigest(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher(4)

	if h.Verify("anything", "not-a-bcrypt-digest") {
		t.Fatalf("malformed digest verified")
	}
	if h.Verify("anything", "") {
		t.Fatalf("empty digest verified")
	}
}

func TestBcryptHasher_EmptyPlaintextAccepted(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher(4)

	d, err := h.Hash("")
	if err != nil {
		t.Fatalf("Hash error for empty plaintext: %v", err)
	}
	if !h.Verify("", d) {
		t.Fatalf("empty plaintext did not verify against its digest")
	}
}

func TestNewBcryptHasher_CostOutOfRangeFallsBack(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher(99)
	if _, err := h.Hash("x"); err != nil {
		t.Fatalf("Hash error with fallback cost: %v", err)
	}
}
