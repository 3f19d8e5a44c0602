package keyring

import (
	"errors"
	"testing"

	"github.com/zalando/go-keyring"
)

func TestConnectionStringLifecycle(t *testing.T) {
	keyring.MockInit()

	if _, err := GetConnectionString(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetConnectionString() on empty keyring = %v, want ErrNotFound", err)
	}

	connStr := "postgres://journal@localhost:5432/daylog?sslmode=disable"
	if err := SetConnectionString(connStr); err != nil {
		t.Fatalf("SetConnectionString() error = %v", err)
	}

	got, err := GetConnectionString()
	if err != nil {
		t.Fatalf("GetConnectionString() error = %v", err)
	}
	if got != connStr {
		t.Errorf("GetConnectionString() = %q, want %q", got, connStr)
	}

	if err := DeleteConnectionString(); err != nil {
		t.Fatalf("DeleteConnectionString() error = %v", err)
	}
	if err := DeleteConnectionString(); !errors.Is(err, ErrNotFound) {
		t.Errorf("second DeleteConnectionString() = %v, want ErrNotFound", err)
	}
}

func TestSetRejectsEmpty(t *testing.T) {
	keyring.MockInit()

	if err := SetConnectionString(""); err == nil {
		t.Error("SetConnectionString(\"\") should fail")
	}
	if err := SetJWTSecret(""); err == nil {
		t.Error("SetJWTSecret(\"\") should fail")
	}
}

func TestJWTSecretIsSeparateFromConnection(t *testing.T) {
	keyring.MockInit()

	if err := SetJWTSecret("s3cret"); err != nil {
		t.Fatalf("SetJWTSecret() error = %v", err)
	}
	if _, err := GetConnectionString(); !errors.Is(err, ErrNotFound) {
		t.Errorf("connection string should be unset, got %v", err)
	}
	if got, _ := GetJWTSecret(); got != "s3cret" {
		t.Errorf("GetJWTSecret() = %q", got)
	}
}

func TestUnavailableKeyring(t *testing.T) {
	keyring.MockInitWithError(errors.New("no dbus"))
	t.Cleanup(keyring.MockInit)

	if IsAvailable() {
		t.Error("IsAvailable() = true with failing keyring")
	}
	if _, err := GetConnectionString(); !errors.Is(err, ErrKeyringUnavailable) {
		t.Errorf("GetConnectionString() = %v, want ErrKeyringUnavailable", err)
	}
}
