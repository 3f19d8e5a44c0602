package settings

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
		t.Fatalf("failed to initialize store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	var out bytes.Buffer
	ctx := cli.NewContext(store)
	ctx.Stdout = &out
	return ctx, &out
}

func ptr[T any](v T) *T { return &v }

func TestSettingsCmd(t *testing.T) {
	tests := []struct {
		name    string
		cmd     SettingsCmd
		wantErr bool
		check   func(t *testing.T, ctx *cli.Context)
	}{
		{
			name: "update timezone",
			cmd:  SettingsCmd{Timezone: ptr("Asia/Tokyo")},
			check: func(t *testing.T, ctx *cli.Context) {
				s, _ := ctx.Store.GetSettings()
				if s.Timezone != "Asia/Tokyo" {
					t.Errorf("Timezone = %q", s.Timezone)
				}
			},
		},
		{name: "invalid timezone", cmd: SettingsCmd{Timezone: ptr("Nowhere/City")}, wantErr: true},
		{
			name: "update windows",
			cmd:  SettingsCmd{TrendWindow: ptr(14), CompletionWindow: ptr(30)},
			check: func(t *testing.T, ctx *cli.Context) {
				s, _ := ctx.Store.GetSettings()
				if s.TrendWindow != 14 || s.CompletionWindow != 30 {
					t.Errorf("settings = %+v", s)
				}
			},
		},
		{name: "zero trend window", cmd: SettingsCmd{TrendWindow: ptr(0)}, wantErr: true},
		{name: "negative completion window", cmd: SettingsCmd{CompletionWindow: ptr(-1)}, wantErr: true},
		{
			name: "list limit is clamped",
			cmd:  SettingsCmd{ListLimit: ptr(500)},
			check: func(t *testing.T, ctx *cli.Context) {
				s, _ := ctx.Store.GetSettings()
				if s.ListLimit != 100 {
					t.Errorf("ListLimit = %d, want 100", s.ListLimit)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _ := setupTestDB(t)
			err := tt.cmd.Run(ctx)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Run() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil {
				tt.check(t, ctx)
			}
		})
	}
}

func TestSettingsList(t *testing.T) {
	ctx, out := setupTestDB(t)
	if err := (&SettingsCmd{List: true}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Timezone:          Local", "Trend Window:      7 days", "List Limit:        20", "API PIN:           not set"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestSettingsNoChanges(t *testing.T) {
	ctx, out := setupTestDB(t)
	if err := (&SettingsCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "No changes specified") {
		t.Errorf("output = %q", out.String())
	}
}
