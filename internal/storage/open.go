package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/daylog/internal/keyring"
	"github.com/julianstephens/daylog/internal/storage/postgres"
	"github.com/julianstephens/daylog/internal/storage/sqlite"
)

// KeyringLocation selects the PostgreSQL connection string stored in the OS keyring.
const KeyringLocation = "keyring"

var (
	_ Provider        = (*sqlite.Store)(nil)
	_ Provider        = (*postgres.Store)(nil)
	_ Provider        = (*JSONStore)(nil)
	_ SchemaVersioner = (*sqlite.Store)(nil)
	_ SchemaVersioner = (*postgres.Store)(nil)
)

// Backend names reported by Kind.
const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendJSON     = "json"
)

// Kind reports which backend a location selects without opening it.
func Kind(location string) string {
	switch {
	case location == KeyringLocation || postgres.IsConnString(location):
		return BackendPostgres
	case strings.EqualFold(filepath.Ext(location), ".json"):
		return BackendJSON
	default:
		return BackendSQLite
	}
}

// Open returns the Provider for location without initializing or loading it.
// PostgreSQL URLs select the postgres backend, a .json path the JSON file
// backend and anything else a SQLite file.
func Open(location string) (Provider, error) {
	if location == KeyringLocation {
		connStr, err := keyring.GetConnectionString()
		if err != nil {
			if errors.Is(err, keyring.ErrNotFound) {
				return nil, fmt.Errorf("no connection string in keyring, run 'daylog keyring set' first: %w", err)
			}
			return nil, err
		}
		location = connStr
	}

	switch Kind(location) {
	case BackendPostgres:
		if valid, err := postgres.ValidateConnString(location); !valid {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return nil, fmt.Errorf("%w: use the OS keyring, DAYLOG_DB_CONNECTION or a .pgpass file instead", err)
			}
			return nil, err
		}
		return postgres.New(location), nil
	case BackendJSON:
		path, err := ExpandPath(location)
		if err != nil {
			return nil, err
		}
		return NewJSONStore(path), nil
	default:
		path, err := ExpandPath(location)
		if err != nil {
			return nil, err
		}
		return sqlite.NewStore(path), nil
	}
}

// ExpandPath resolves a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
