package arm5sheet

import (
	"fmt"
	"strconv"
	"strings"
)

// AlertLevel selects the visual style of an update banner.
type AlertLevel string

// Permitted alert levels.
const (
	AlertInfo    AlertLevel = "info"
	AlertWarning AlertLevel = "warning"
)

// valid reports whether the level is in the permitted set.
func (l AlertLevel) valid() bool {
	return l == AlertInfo || l == AlertWarning
}

// Alerts generates dismissable update banners and keeps the ledger of issued
// banner IDs so DisableOldAlerts can close them all at once. Banners without
// an explicit ID get sequential numeric IDs.
type Alerts struct {
	nextID    int
	stringIDs []string
}

// NewAlerts creates an empty alert ledger.
func NewAlerts() *Alerts {
	return &Alerts{}
}

// Alert renders a banner that players can permanently hide, used to announce
// important sheet changes. An empty id assigns the next numeric ID; explicit
// IDs are for banners whose open/closed state is checked elsewhere and must
// not be purely numeric, or they would collide with the assigned ones.
//
// The level is validated before any output is produced.
func (a *Alerts) Alert(title, text string, level AlertLevel, id string) (string, error) {
	if !level.valid() {
		return "", fmt.Errorf("%w: got %q", ErrInvalidAlertLevel, level)
	}

	if id == "" {
		id = strconv.Itoa(a.nextID)
		a.nextID++
	} else {
		if _, err := strconv.Atoi(id); err == nil {
			return "", fmt.Errorf("%w: got %q", ErrNumericAlertID, id)
		}
		a.stringIDs = append(a.stringIDs, id)
	}

	// Body lines align with the surrounding div indentation.
	indented := strings.ReplaceAll(text, "\n", "\n"+strings.Repeat(" ", 16))

	return fmt.Sprintf(`<input type="hidden" class="alert-hidder" name="attr_alert-%[1]s" value="0"/>
<div class="alert alert-%[2]s">
    <div>
        <h3> %[3]s - %[4]s</h3>
        %[5]s
    </div>
    <label class="fakebutton">
        <input type="checkbox" name="attr_alert-%[1]s" value="1" /> ×
    </label>
</div>`, id, level, capitalize(string(level)), title, indented), nil
}

// DisableOldAlerts renders the sheetworker setAttrs call that marks every
// issued banner as dismissed, plus the given marker attribute. Run when a
// returning player's sheet should not replay old announcements.
func (a *Alerts) DisableOldAlerts(marker string) string {
	ids := make([]string, 0, a.nextID+len(a.stringIDs))
	for i := 0; i < a.nextID; i++ {
		ids = append(ids, strconv.Itoa(i))
	}
	ids = append(ids, a.stringIDs...)

	if len(ids) == 0 {
		return fmt.Sprintf("setAttrs({\n    %q: 1\n});", marker)
	}

	lines := make([]string, 0, len(ids))
	for _, id := range ids {
		lines = append(lines, fmt.Sprintf("%q: 1", "alert-"+id))
	}

	indent := strings.Repeat(" ", 12)
	return fmt.Sprintf("setAttrs({\n    %q: 1,\n%s%s\n});",
		marker, indent, strings.Join(lines, ",\n"+indent))
}
