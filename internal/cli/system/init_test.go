package system

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/daylog/internal/cli"
	"github.com/julianstephens/daylog/internal/models"
	"github.com/julianstephens/daylog/internal/storage"
	"github.com/julianstephens/daylog/internal/storage/sqlite"
)

func TestInitCmd_CopiesFromSource(t *testing.T) {
	dir := t.TempDir()

	src := storage.NewJSONStore(filepath.Join(dir, "old.json"))
	if err := src.Init(); err != nil {
		t.Fatal(err)
	}
	rec := models.NewDailyRecord("2026-03-09")
	now := time.Date(2026, 3, 9, 20, 0, 0, 0, time.UTC)
	rec.ApplyMorning([]string{"ship"}, models.MoodLow, now)
	rec.ApplyEvening("done", "shipped", models.MoodGood, now)
	if err := src.UpsertRecord(rec); err != nil {
		t.Fatal(err)
	}
	if err := src.AddDecision(models.Decision{ID: "d-1", Date: "2026-03-09", Title: "move"}); err != nil {
		t.Fatal(err)
	}
	src.Close()

	dst := sqlite.NewStore(filepath.Join(dir, "new.db"))
	defer dst.Close()
	var out bytes.Buffer
	ctx := cli.NewContext(dst)
	ctx.Stdout = &out

	cmd := &InitCmd{Source: filepath.Join(dir, "old.json")}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if !strings.Contains(out.String(), "Copied 1 records, 1 decisions, 0 entries") {
		t.Errorf("output = %q", out.String())
	}

	got, err := dst.GetRecord("2026-03-09")
	if err != nil {
		t.Fatalf("GetRecord() error = %v", err)
	}
	if got.EveningMood == nil || *got.EveningMood != models.MoodGood || got.TopWin != "shipped" {
		t.Errorf("copied record = %+v", got)
	}
}

func TestInitCmd_Force(t *testing.T) {
	ctx, out := setupTestDB(t)
	if err := ctx.Store.UpsertRecord(models.NewDailyRecord("2026-03-09")); err != nil {
		t.Fatal(err)
	}

	if err := (&InitCmd{Force: true}).Run(ctx); err != nil {
		t.Fatalf("init --force failed: %v", err)
	}
	if !strings.Contains(out.String(), "Deleted existing database") {
		t.Errorf("output = %q", out.String())
	}
	if _, err := os.Stat(ctx.Store.GetConfigPath()); err != nil {
		t.Errorf("database not recreated: %v", err)
	}
	records, err := ctx.Store.GetAllRecords()
	if err != nil || len(records) != 0 {
		t.Errorf("records after reset = %v, %v", records, err)
	}
}

func TestInitCmd_ForceRefusesSameSource(t *testing.T) {
	ctx, _ := setupTestDB(t)
	err := (&InitCmd{Force: true, Source: ctx.Store.GetConfigPath()}).Run(ctx)
	if err == nil || !strings.Contains(err.Error(), "same") {
		t.Errorf("error = %v", err)
	}
}
