package domain

import (
	"strings"
	"testing"
	"time"
)

func TestAuthSnapshot_RoundTrip(t *testing.T) {
	snap := NewAuthSnapshot(User{ID: "u1", Email: "worker@gmail.com", Role: RoleWorker})

	value, err := snap.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if strings.ContainsAny(value, "{}\" ") {
		t.Fatalf("cookie value not escaped: %s", value)
	}

	got, err := DecodeAuthSnapshot(value)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !got.State.IsAuthenticated || got.State.User == nil || got.State.User.Role != RoleWorker {
		t.Fatalf("unexpected snapshot: %+v", got)
	}
}

func TestDecodeAuthSnapshot_AcceptsRawJSON(t *testing.T) {
	got, err := DecodeAuthSnapshot(`{"state":{"user":{"id":"1","role":"admin"},"isAuthenticated":true}}`)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.State.User.Role != RoleAdmin {
		t.Fatalf("expected admin, got %s", got.State.User.Role)
	}
}

func TestDecodeAuthSnapshot_Garbage(t *testing.T) {
	if _, err := DecodeAuthSnapshot("not-json"); err == nil {
		t.Fatalf("expected error for garbage cookie")
	}
}

func TestSession_Expired(t *testing.T) {
	now := time.Now()
	s := &Session{ExpiresAt: now.Add(time.Minute)}
	if s.Expired(now) {
		t.Fatalf("session should be live")
	}
	if !s.Expired(now.Add(2 * time.Minute)) {
		t.Fatalf("session should be expired")
	}
	if (&Session{}).Expired(now) {
		t.Fatalf("zero expiry means no expiry")
	}
}
