package config

// Notes:
// - Load: tests parsing, defaults, strict unknown-key rejection
// - Validate: tests required template and output fields

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeConfig is a test helper writing a temporary sheet.yaml.
func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sheet.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const validConfig = `
template:
  html: sheet/template.html
  css: sheet/template.css
output:
  dir: build
`

// ---------------------------------------------------------------------------
// TestLoad
// ---------------------------------------------------------------------------

func TestLoad_Valid(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeConfig(t, validConfig))
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.Template.HTML != "sheet/template.html" {
		t.Errorf("Template.HTML = %q", cfg.Template.HTML)
	}
	if cfg.Output.HTML != DefaultHTMLName {
		t.Errorf("Output.HTML = %q, want default %q", cfg.Output.HTML, DefaultHTMLName)
	}
	if cfg.Output.CSS != DefaultCSSName {
		t.Errorf("Output.CSS = %q, want default %q", cfg.Output.CSS, DefaultCSSName)
	}
}

func TestLoad_Alerts(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeConfig(t, validConfig+`
alerts:
  marker: old_alerts_disabled
  banners:
    - title: New fatigue table
      text: Check your totals.
      level: warning
    - title: Spell notes
      text: Now two fields.
      level: info
      id: spell-notes
`))
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if len(cfg.Alerts.Banners) != 2 {
		t.Fatalf("got %d banners, want 2", len(cfg.Alerts.Banners))
	}
	if cfg.Alerts.Banners[1].ID != "spell-notes" {
		t.Errorf("banner ID = %q, want %q", cfg.Alerts.Banners[1].ID, "spell-notes")
	}
}

func TestLoad_Missing(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("Load() error = %v, want %v", err, ErrConfigNotFound)
	}
}

func TestLoad_UnknownKeyRejected(t *testing.T) {
	t.Parallel()

	_, err := Load(writeConfig(t, validConfig+"\ncolour_table: oops\n"))
	if !errors.Is(err, ErrConfigParse) {
		t.Errorf("Load() error = %v, want %v", err, ErrConfigParse)
	}
}

// ---------------------------------------------------------------------------
// TestValidate
// ---------------------------------------------------------------------------

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name: "missing css template",
			content: `
template:
  html: sheet/template.html
output:
  dir: build
`,
			wantErr: ErrMissingTemplate,
		},
		{
			name: "missing output dir",
			content: `
template:
  html: sheet/template.html
  css: sheet/template.css
`,
			wantErr: ErrMissingOutputDir,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(writeConfig(t, tt.content))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Load() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
