package arm5sheet

import "fmt"

// Generated-file banners prepended to the rendered template outputs.
const (
	HTMLHeader = "<!-- DO NOT MODIFY !\nThis file is automatically generated from a template. Any change will be overwritten\n-->"
	CSSHeader  = "/* DO NOT MODIFY !\nThis file is automatically generated from a template. Any change will be overwritten\n*/"
)

// DefaultDisableMarker is the attribute set alongside dismissing old alerts.
const DefaultDisableMarker = "old_alerts_disabled"

// AlertSpec declares one update banner to generate.
type AlertSpec struct {
	Title string
	Text  string
	Level AlertLevel
	ID    string // optional; empty assigns the next numeric ID
}

// Input carries everything the generator reads: all of it is consumed once,
// up front, and nothing flows back.
type Input struct {
	Documentation string      // markdown; empty skips the documentation part
	Colors        []Color     // roll template color table
	Alerts        []AlertSpec // update banners, in display order
	DisableMarker string      // attribute name for DisableOldAlerts (default DefaultDisableMarker)
}

// Validate rejects inputs that would fail mid-generation, so no partial
// part map is ever produced.
func (in *Input) Validate() error {
	for i, a := range in.Alerts {
		if !a.Level.valid() {
			return fmt.Errorf("alert %d (%q): %w: got %q", i, a.Title, ErrInvalidAlertLevel, a.Level)
		}
	}
	for _, c := range in.Colors {
		if _, err := Luma(c.Hex); err != nil {
			return fmt.Errorf("color %q: %w", c.Name, err)
		}
	}
	return nil
}
