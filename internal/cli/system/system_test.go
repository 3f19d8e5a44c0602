package system

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/julianstephens/daylog/internal/cli"
	"github.com/julianstephens/daylog/internal/storage/sqlite"
)

func setupTestDB(t *testing.T) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	var out bytes.Buffer
	ctx := cli.NewContext(store)
	ctx.Stdout = &out
	return ctx, &out
}
