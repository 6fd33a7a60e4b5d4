package redis

import (
	"bytes"
	"testing"
)

func TestSealer_RoundTrip(t *testing.T) {
	s, err := NewSealer("correct horse battery staple")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	plain := []byte(`{"access_token":"abc"}`)
	sealed, err := s.Seal(plain)
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	if bytes.Contains(sealed, []byte("abc")) {
		t.Fatal("sealed value leaks the token")
	}

	got, err := s.Open(sealed)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if !bytes.Equal(got, plain) {
		t.Errorf("expected %q, got %q", plain, got)
	}
}

func TestSealer_FreshNonce(t *testing.T) {
	s, _ := NewSealer("k")
	a, _ := s.Seal([]byte("same"))
	b, _ := s.Seal([]byte("same"))
	if bytes.Equal(a, b) {
		t.Error("expected different ciphertexts for the same input")
	}
}

func TestSealer_WrongKey(t *testing.T) {
	a, _ := NewSealer("one")
	b, _ := NewSealer("two")

	sealed, _ := a.Seal([]byte("secret"))
	if _, err := b.Open(sealed); err == nil {
		t.Fatal("expected error opening with another key")
	}
}

func TestSealer_ShortInput(t *testing.T) {
	s, _ := NewSealer("k")
	if _, err := s.Open([]byte("short")); err != errSealedTooShort {
		t.Fatalf("expected errSealedTooShort, got %v", err)
	}
}

func TestNewSealer_EmptySecret(t *testing.T) {
	if _, err := NewSealer(""); err == nil {
		t.Fatal("expected error for empty secret")
	}
}
