package system

import (
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/daylog/internal/backup"
	"github.com/julianstephens/daylog/internal/models"
)

func TestDoctorCmd_HealthyDB(t *testing.T) {
	ctx, out := setupTestDB(t)

	if err := (&DoctorCmd{}).Run(ctx); err != nil {
		t.Fatalf("doctor failed on healthy database: %v\n%s", err, out.String())
	}
	// Missing backups is a warning, not a failure
	for _, want := range []string{"✓ Database reachable: OK", "✓ Schema version: OK", "⚠ Backups present: WARNING", "All diagnostics passed!"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestDoctorCmd_WithBackup(t *testing.T) {
	ctx, out := setupTestDB(t)
	if _, err := backup.NewManager(ctx.Store.GetConfigPath()).CreateBackup(); err != nil {
		t.Fatalf("CreateBackup() error = %v", err)
	}
	if err := (&DoctorCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "✓ Backups present: OK") {
		t.Errorf("output = %s", out.String())
	}
}

func TestDoctorCmd_BadTimezone(t *testing.T) {
	ctx, out := setupTestDB(t)
	settings := models.DefaultSettings()
	settings.Timezone = "Mars/Olympus"
	if err := ctx.Store.SaveSettings(settings); err != nil {
		t.Fatal(err)
	}

	if err := (&DoctorCmd{}).Run(ctx); err == nil {
		t.Fatal("doctor should fail on an unknown timezone")
	}
	if !strings.Contains(out.String(), "❌ Timezone setting: FAIL") {
		t.Errorf("output = %s", out.String())
	}
}

func TestCheckClock(t *testing.T) {
	if err := checkClock(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Errorf("checkClock(2026) = %v", err)
	}
	if err := checkClock(time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)); err == nil {
		t.Error("checkClock(1999) should fail")
	}
}
