package jwt

import (
	"errors"
	"testing"
	"time"
)

func TestGenerateAndValidate(t *testing.T) {
	m := NewManager("secret")

	token, err := m.GenerateToken("65f1c0ffee", PurposeAccess)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	id, err := m.ValidateToken(token, PurposeAccess)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if id != "65f1c0ffee" {
		t.Fatalf("expected id 65f1c0ffee, got %s", id)
	}
}

func TestValidateRejectsOtherPurpose(t *testing.T) {
	m := NewManager("secret")

	cases := []struct {
		issued, used Purpose
	}{
		{PurposeAccess, PurposeReset},
		{PurposeAccess, PurposeActivation},
		{PurposeActivation, PurposeAccess},
		{PurposeReset, PurposeAccess},
		{PurposeActivation, PurposeReset},
	}
	for _, tc := range cases {
		token, err := m.GenerateToken("abc", tc.issued)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if _, err := m.ValidateToken(token, tc.used); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("%s token accepted as %s: %v", tc.issued, tc.used, err)
		}
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, _ := NewManager("one").GenerateToken("abc", PurposeAccess)
	if _, err := NewManager("two").ValidateToken(token, PurposeAccess); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestValidateRejectsExpired(t *testing.T) {
	m := NewManager("secret")
	issued := time.Now().Add(-2 * time.Hour)
	m.now = func() time.Time { return issued }
	token, _ := m.GenerateToken("abc", PurposeReset)

	m.now = time.Now
	if _, err := m.ValidateToken(token, PurposeReset); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected expired token to be rejected, got %v", err)
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	if _, err := NewManager("secret").ValidateToken("not.a.token", PurposeAccess); err == nil {
		t.Fatalf("expected error")
	}
}
