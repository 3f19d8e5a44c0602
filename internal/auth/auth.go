// Package auth implements the single-user PIN gate and the API tokens issued
// after a successful login.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	TokenTTL       = 7 * 24 * time.Hour
	RefreshWindow  = 24 * time.Hour
	MinPINLength   = 4
	MaxPINLength   = 32
	tokenSubject   = "daylog"
	tokenIssuer    = "daylog"
	bcryptHashCost = bcrypt.DefaultCost
)

var (
	ErrInvalidPIN   = errors.New("invalid PIN")
	ErrNoPIN        = errors.New("no PIN configured")
	ErrInvalidToken = errors.New("invalid token")
)

// ValidatePIN checks the shape of a new PIN: digits only, 4 to 32 long.
func ValidatePIN(pin string) error {
	if len(pin) < MinPINLength || len(pin) > MaxPINLength {
		return fmt.Errorf("PIN must be %d-%d digits", MinPINLength, MaxPINLength)
	}
	for _, r := range pin {
		if !unicode.IsDigit(r) {
			return fmt.Errorf("PIN must contain digits only")
		}
	}
	return nil
}

// HashPIN returns the bcrypt hash stored in settings.
func HashPIN(pin string) (string, error) {
	pin = strings.TrimSpace(pin)
	if err := ValidatePIN(pin); err != nil {
		return "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcryptHashCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash PIN: %w", err)
	}
	return string(hash), nil
}

// VerifyPIN compares pin against hash. An empty hash yields ErrNoPIN.
func VerifyPIN(hash, pin string) error {
	if hash == "" {
		return ErrNoPIN
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(strings.TrimSpace(pin))); err != nil {
		return ErrInvalidPIN
	}
	return nil
}

// Issuer signs and verifies HS256 tokens.
type Issuer struct {
	secret []byte
	now    func() time.Time
}

// NewIssuer creates an Issuer. A nil clock uses time.Now.
func NewIssuer(secret []byte, now func() time.Time) (*Issuer, error) {
	if len(secret) == 0 {
		return nil, errors.New("token secret must not be empty")
	}
	if now == nil {
		now = time.Now
	}
	return &Issuer{secret: secret, now: now}, nil
}

// Issue returns a token valid for TokenTTL.
func (i *Issuer) Issue() (string, error) {
	now := i.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   tokenSubject,
		Issuer:    tokenIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
	})
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses tok and returns its expiry.
func (i *Issuer) Verify(tok string) (time.Time, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil || !parsed.Valid || claims.ExpiresAt == nil {
		return time.Time{}, ErrInvalidToken
	}
	return claims.ExpiresAt.Time, nil
}

// NeedsRefresh reports whether a token expiring at exp is inside the refresh window.
func (i *Issuer) NeedsRefresh(exp time.Time) bool {
	return exp.Sub(i.now()) < RefreshWindow
}
