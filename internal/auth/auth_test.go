package auth

import (
	"errors"
	"testing"
	"time"
)

func TestValidatePIN(t *testing.T) {
	tests := []struct {
		pin     string
		wantErr bool
	}{
		{"1234", false},
		{"12345678", false},
		{"123", true},
		{"12a4", true},
		{"", true},
	}
	for _, tt := range tests {
		t.Run(tt.pin, func(t *testing.T) {
			if err := ValidatePIN(tt.pin); (err != nil) != tt.wantErr {
				t.Errorf("ValidatePIN(%q) error = %v, wantErr %v", tt.pin, err, tt.wantErr)
			}
		})
	}
}

func TestHashAndVerifyPIN(t *testing.T) {
	hash, err := HashPIN("2468")
	if err != nil {
		t.Fatalf("HashPIN() error = %v", err)
	}
	if hash == "2468" {
		t.Fatal("HashPIN() returned the PIN itself")
	}
	if err := VerifyPIN(hash, "2468"); err != nil {
		t.Errorf("VerifyPIN() correct PIN error = %v", err)
	}
	if err := VerifyPIN(hash, "1357"); !errors.Is(err, ErrInvalidPIN) {
		t.Errorf("VerifyPIN() wrong PIN error = %v, want ErrInvalidPIN", err)
	}
	if err := VerifyPIN("", "2468"); !errors.Is(err, ErrNoPIN) {
		t.Errorf("VerifyPIN() empty hash error = %v, want ErrNoPIN", err)
	}
	if _, err := HashPIN("12"); err == nil {
		t.Error("HashPIN() should reject a short PIN")
	}
}

func TestIssuer(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	if _, err := NewIssuer(nil, clock); err == nil {
		t.Fatal("NewIssuer() should reject an empty secret")
	}
	issuer, err := NewIssuer([]byte("secret"), clock)
	if err != nil {
		t.Fatal(err)
	}

	tok, err := issuer.Issue()
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	exp, err := issuer.Verify(tok)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if !exp.Equal(now.Add(TokenTTL)) {
		t.Errorf("expiry = %v, want %v", exp, now.Add(TokenTTL))
	}
	if issuer.NeedsRefresh(exp) {
		t.Error("fresh token should not need refresh")
	}

	now = now.Add(TokenTTL - time.Hour)
	if !issuer.NeedsRefresh(exp) {
		t.Error("token one hour from expiry should need refresh")
	}

	now = now.Add(2 * time.Hour)
	if _, err := issuer.Verify(tok); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify() expired error = %v, want ErrInvalidToken", err)
	}

	other, _ := NewIssuer([]byte("other"), clock)
	if _, err := other.Verify(tok); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify() wrong secret error = %v", err)
	}
	if _, err := issuer.Verify("garbage"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify() garbage error = %v", err)
	}
}
