package main

// Notes:
// - renderSlots: tests HTML and CSS marker replacement, unknown slots,
//   whitespace tolerance, and markers surviving Roll20 macro soup

import (
	"errors"
	"strings"
	"testing"
)

func TestRenderSlots_HTML(t *testing.T) {
	t.Parallel()

	parts := map[string]string{
		"characteristic_rows": "<tr><td>rows</td></tr>",
		"documentation":       "<h1>docs</h1>",
	}

	tmpl := `<table>
<!--{ characteristic_rows }-->
</table>
<div><!--{documentation}--></div>`

	got, err := renderSlots(tmpl, htmlSlot, parts)
	if err != nil {
		t.Fatalf("renderSlots() unexpected error: %v", err)
	}

	if strings.Contains(got, "<!--{") {
		t.Errorf("marker left behind:\n%s", got)
	}
	if !strings.Contains(got, "<tr><td>rows</td></tr>") {
		t.Errorf("part not spliced:\n%s", got)
	}
	if !strings.Contains(got, "<div><h1>docs</h1></div>") {
		t.Errorf("tight marker not spliced:\n%s", got)
	}
}

func TestRenderSlots_CSS(t *testing.T) {
	t.Parallel()

	parts := map[string]string{"custom_rt_color_css": ".x { color: red; }"}

	got, err := renderSlots("/* colors */\n/*{ custom_rt_color_css }*/\n", cssSlot, parts)
	if err != nil {
		t.Fatalf("renderSlots() unexpected error: %v", err)
	}

	if !strings.Contains(got, ".x { color: red; }") {
		t.Errorf("part not spliced:\n%s", got)
	}
	// Ordinary comments are not markers.
	if !strings.Contains(got, "/* colors */") {
		t.Errorf("plain comment disturbed:\n%s", got)
	}
}

func TestRenderSlots_UnknownSlot(t *testing.T) {
	t.Parallel()

	_, err := renderSlots("<!--{ no_such_part }-->", htmlSlot, map[string]string{})
	if !errors.Is(err, ErrUnknownSlot) {
		t.Errorf("renderSlots() error = %v, want %v", err, ErrUnknownSlot)
	}
}

func TestRenderSlots_MacroSyntaxUntouched(t *testing.T) {
	t.Parallel()

	tmpl := `<button value="&{template:ability} {{label0=^{score}}} [[ 1d10! + @{aura} ]]"></button>`

	got, err := renderSlots(tmpl, htmlSlot, map[string]string{})
	if err != nil {
		t.Fatalf("renderSlots() unexpected error: %v", err)
	}
	if got != tmpl {
		t.Errorf("macro syntax was mangled:\n%s", got)
	}
}
