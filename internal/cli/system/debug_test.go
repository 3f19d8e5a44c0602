package system

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/daylog/internal/models"
)

func TestDebugDBPath(t *testing.T) {
	ctx, out := setupTestDB(t)
	if err := (&DebugDBPathCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	var got map[string]string
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if got["backend"] != "sqlite" || !strings.HasSuffix(got["path"], "test.db") {
		t.Errorf("output = %v", got)
	}
}

func TestDebugDumpRecord(t *testing.T) {
	ctx, out := setupTestDB(t)
	if err := (&DebugDumpRecordCmd{Date: "2026-03-09"}).Run(ctx); err == nil {
		t.Error("missing record should fail")
	}

	rec := models.NewDailyRecord("2026-03-09")
	rec.ApplyMorning([]string{"walk"}, models.MoodGood, time.Now())
	if err := ctx.Store.UpsertRecord(rec); err != nil {
		t.Fatal(err)
	}
	if err := (&DebugDumpRecordCmd{Date: "2026-03-09"}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), `"walk"`) {
		t.Errorf("output = %s", out.String())
	}
	if err := (&DebugDumpRecordCmd{Date: "03/09/2026"}).Run(ctx); err == nil {
		t.Error("bad date should fail")
	}
}

func TestDebugDumpSettingsRedactsPin(t *testing.T) {
	ctx, out := setupTestDB(t)
	settings := models.DefaultSettings()
	settings.PinHash = "$2a$10$secret"
	if err := ctx.Store.SaveSettings(settings); err != nil {
		t.Fatal(err)
	}
	if err := (&DebugDumpSettingsCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out.String(), "secret") || !strings.Contains(out.String(), "<redacted>") {
		t.Errorf("output = %s", out.String())
	}
}

func TestDebugDumpDecisionNotFound(t *testing.T) {
	ctx, _ := setupTestDB(t)
	if err := (&DebugDumpDecisionCmd{ID: "nope"}).Run(ctx); err == nil {
		t.Error("expected error")
	}
}
