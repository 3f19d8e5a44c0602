package decisions

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/daylog/internal/cli"
	"github.com/julianstephens/daylog/internal/storage/sqlite"
)

func setupTestDB(t *testing.T) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	var out bytes.Buffer
	ctx := cli.NewContext(store)
	ctx.Stdout = &out
	return ctx, &out
}

func TestDecisionLifecycle(t *testing.T) {
	ctx, out := setupTestDB(t)

	add := &DecisionAddCmd{Title: "Adopt a dog", Date: "2026-03-10", Choice: "yes", Reasoning: "company", Tags: "home, pets"}
	if err := add.Run(ctx); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	list, err := ctx.Journal.Decisions(0, false)
	if err != nil || len(list) != 1 {
		t.Fatalf("Decisions() = %v, %v", list, err)
	}
	id := list[0].ID

	out.Reset()
	if err := (&DecisionShowCmd{ID: id}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"2026-03-10 | Adopt a dog", "Choice\n  yes", "Tags: home, pets"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("show missing %q in %q", want, out.String())
		}
	}
	if strings.Contains(out.String(), "Outcome") {
		t.Error("empty outcome should be hidden")
	}

	if err := (&DecisionDeleteCmd{ID: id}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if err := (&DecisionDeleteCmd{ID: id}).Run(ctx); err == nil {
		t.Error("second delete should fail")
	}

	out.Reset()
	if err := (&DecisionListCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "No decisions") {
		t.Errorf("list after delete = %q", out.String())
	}

	out.Reset()
	if err := (&DecisionListCmd{Deleted: true}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "(deleted)") {
		t.Errorf("list --deleted = %q", out.String())
	}

	if err := (&DecisionRestoreCmd{ID: id}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if err := (&DecisionRestoreCmd{ID: id}).Run(ctx); err == nil {
		t.Error("restoring a live decision should fail")
	}
}

func TestDecisionAddRequiresTitle(t *testing.T) {
	ctx, _ := setupTestDB(t)
	if err := (&DecisionAddCmd{}).Run(ctx); err == nil {
		t.Error("add without title should fail")
	}
}

func TestDecisionShowNotFound(t *testing.T) {
	ctx, _ := setupTestDB(t)
	err := (&DecisionShowCmd{ID: "missing"}).Run(ctx)
	if err == nil || !strings.Contains(err.Error(), "decision not found") {
		t.Errorf("error = %v", err)
	}
}
