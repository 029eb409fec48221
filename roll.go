package arm5sheet

import (
	"fmt"
	"strings"
)

// Die expression literals understood by the tabletop platform's roll engine.
// The stress die explodes on its highest face; botch checking is handled by
// the botch query, not the die itself.
const (
	SimpleDie = "1d10"
	StressDie = "1d10!"
)

// DieToken marks where a roll template's die expression goes. Simple and
// Stress substitute it, so a finished macro never contains the token.
const DieToken = "<%die%>"

// botchDie counts zeroes as botches and never as successes.
const botchDie = "[[1d10cf10cs0]]"

// Roll joins macro sub-expressions into a single additive roll expression.
// The parts are opaque platform syntax; no evaluation happens here.
func Roll(parts ...string) string {
	return strings.Join(parts, " + ")
}

// RollField is one labeled value of a roll template.
type RollField struct {
	Key   string
	Value string
}

// RollTemplate composes a platform roll template macro: a named wrapper
// around an ordered list of labeled values. Field order is preserved in the
// rendered macro.
type RollTemplate struct {
	name   string
	fields []RollField
}

// NewRollTemplate creates a RollTemplate.
// Panics on an empty name (programmer error; template names are literals).
func NewRollTemplate(name string, fields ...RollField) RollTemplate {
	if name == "" {
		panic("arm5sheet: roll template name cannot be empty")
	}
	return RollTemplate{name: name, fields: fields}
}

// String renders the macro with the die token left in place.
func (t RollTemplate) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "&{template:%s}", t.name)
	for _, f := range t.fields {
		fmt.Fprintf(&b, " {{%s=%s}}", f.Key, f.Value)
	}
	return b.String()
}

// Simple renders the macro with the simple (non-exploding) die.
func (t RollTemplate) Simple() string {
	return strings.ReplaceAll(t.String(), DieToken, SimpleDie)
}

// Stress renders the macro with the stress (exploding) die.
func (t RollTemplate) Stress() string {
	return strings.ReplaceAll(t.String(), DieToken, StressDie)
}

// BotchQuery builds the grouped botch-check macro: a player query choosing
// how many botch dice to roll, from 1 to maxDice.
// Panics if maxDice < 1 (programmer error; the count is a literal).
func BotchQuery(maxDice int) string {
	if maxDice < 1 {
		panic("arm5sheet: botch dice count must be at least 1")
	}

	choices := make([]string, 0, maxDice)
	for n := 1; n <= maxDice; n++ {
		label := "Dice"
		if n == 1 {
			label = "Die"
		}
		dice := strings.Repeat(botchDie+" ", n-1) + botchDie
		choices = append(choices, fmt.Sprintf("%d %s,%s", n, label, dice))
	}

	query := "?{@{botch_num_i18n} | " + strings.Join(choices, "|") + "}"
	return "&{template:botch} {{roll= " + query + " }} {{type=Grouped}}"
}
