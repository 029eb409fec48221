package arm5sheet

// Notes:
// - Alert: tests level validation, numeric ID assignment, explicit IDs
// - DisableOldAlerts: tests that every issued ID is closed

import (
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestAlerts_Alert - Banner Generation
// ---------------------------------------------------------------------------

func TestAlerts_Alert_LevelValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		level   AlertLevel
		wantErr error
	}{
		{name: "info accepted", level: AlertInfo},
		{name: "warning accepted", level: AlertWarning},
		{name: "error rejected", level: AlertLevel("error"), wantErr: ErrInvalidAlertLevel},
		{name: "empty rejected", level: AlertLevel(""), wantErr: ErrInvalidAlertLevel},
		{name: "case sensitive", level: AlertLevel("Warning"), wantErr: ErrInvalidAlertLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewAlerts().Alert("Title", "text", tt.level, "")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Alert() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAlerts_Alert_SequentialIDs(t *testing.T) {
	t.Parallel()

	alerts := NewAlerts()

	first, err := alerts.Alert("One", "text", AlertWarning, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := alerts.Alert("Two", "text", AlertInfo, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(first, `name="attr_alert-0"`) {
		t.Errorf("first banner should use ID 0:\n%s", first)
	}
	if !strings.Contains(second, `name="attr_alert-1"`) {
		t.Errorf("second banner should use ID 1:\n%s", second)
	}
}

func TestAlerts_Alert_ExplicitID(t *testing.T) {
	t.Parallel()

	alerts := NewAlerts()

	banner, err := alerts.Alert("Update", "text", AlertInfo, "fatigue-rework")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(banner, `name="attr_alert-fatigue-rework"`) {
		t.Errorf("banner should use the explicit ID:\n%s", banner)
	}

	// Numeric explicit IDs would collide with assigned ones.
	if _, err := alerts.Alert("Bad", "text", AlertInfo, "17"); !errors.Is(err, ErrNumericAlertID) {
		t.Errorf("Alert() error = %v, want %v", err, ErrNumericAlertID)
	}
}

func TestAlerts_Alert_Content(t *testing.T) {
	t.Parallel()

	banner, err := NewAlerts().Alert("New fatigue table", "Check your totals.", AlertWarning, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(banner, `class="alert alert-warning"`) {
		t.Errorf("banner missing level class:\n%s", banner)
	}
	if !strings.Contains(banner, "<h3> Warning - New fatigue table</h3>") {
		t.Errorf("banner missing capitalized level heading:\n%s", banner)
	}
	if !strings.Contains(banner, "Check your totals.") {
		t.Errorf("banner missing body text:\n%s", banner)
	}
	if !strings.Contains(banner, `class="alert-hidder"`) {
		t.Errorf("banner missing the hidden dismiss state input:\n%s", banner)
	}
}

// ---------------------------------------------------------------------------
// TestAlerts_DisableOldAlerts - Dismissal Snippet
// ---------------------------------------------------------------------------

func TestAlerts_DisableOldAlerts(t *testing.T) {
	t.Parallel()

	alerts := NewAlerts()
	if _, err := alerts.Alert("One", "t", AlertInfo, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := alerts.Alert("Two", "t", AlertInfo, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := alerts.Alert("Named", "t", AlertInfo, "spell-notes"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := alerts.DisableOldAlerts("old_alerts_disabled")

	for _, want := range []string{
		`"old_alerts_disabled": 1`,
		`"alert-0": 1`,
		`"alert-1": 1`,
		`"alert-spell-notes": 1`,
		"setAttrs({",
		"});",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("DisableOldAlerts() missing %q:\n%s", want, got)
		}
	}
}

func TestAlerts_DisableOldAlerts_EmptyLedger(t *testing.T) {
	t.Parallel()

	got := NewAlerts().DisableOldAlerts("marker")
	want := "setAttrs({\n    \"marker\": 1\n});"
	if got != want {
		t.Errorf("DisableOldAlerts() = %q, want %q", got, want)
	}
}
