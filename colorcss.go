package arm5sheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"gopkg.in/go-playground/colors.v1"
)

// Luma threshold above which a background is light enough for black text.
const lumaThreshold = 0.5

// Color is one named background color for the "custom" roll template.
type Color struct {
	Name string // CSS class suffix, e.g. "crimson"
	Hex  string // "#rrggbb"
}

// ReadColorTable parses a CSV color table with header columns "color" and
// "hex". Any malformed header or row fails immediately; no partial table is
// returned.
func ReadColorTable(r io.Reader) ([]Color, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrColorTableHeader, err)
	}

	nameCol, hexCol := -1, -1
	for i, col := range header {
		switch strings.TrimSpace(strings.ToLower(col)) {
		case "color":
			nameCol = i
		case "hex":
			hexCol = i
		}
	}
	if nameCol < 0 || hexCol < 0 {
		return nil, fmt.Errorf("%w: got %v", ErrColorTableHeader, header)
	}

	var table []Color
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrColorTableRow, line, err)
		}
		c := Color{
			Name: strings.TrimSpace(record[nameCol]),
			Hex:  strings.TrimSpace(record[hexCol]),
		}
		if c.Name == "" || c.Hex == "" {
			return nil, fmt.Errorf("%w: line %d: empty color or hex", ErrColorTableRow, line)
		}
		table = append(table, c)
	}
	return table, nil
}

// Luma computes perceptual brightness of a hex color from weighted sRGB
// channels, in 0..1.
func Luma(hex string) (float64, error) {
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	parsed, err := colors.ParseHEX(hex)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidHexColor, hex, err)
	}
	rgb := parsed.ToRGB()
	r := float64(rgb.R) / 255
	g := float64(rgb.G) / 255
	b := float64(rgb.B) / 255
	return 0.2126*r + 0.7152*g + 0.0722*b, nil
}

// RollTemplateColorCSS emits the CSS rules backing the "custom" roll
// template's color classes: per color, one rule each for the header
// background, the inline roll background and the button background, carrying
// the color as a custom property. Text color flips to keep contrast: light
// backgrounds get black header/button text, dark backgrounds get white roll
// text. A background of exactly threshold luma keeps the template defaults.
//
// An empty table yields an empty string. Same input, same output.
func RollTemplateColorCSS(table []Color) (string, error) {
	var rules []string
	for _, c := range table {
		luma, err := Luma(c.Hex)
		if err != nil {
			return "", fmt.Errorf("color %q: %w", c.Name, err)
		}

		header := []string{
			fmt.Sprintf(".sheet-rolltemplate-custom .sheet-crt-container.sheet-crt-color-%s {", c.Name),
			fmt.Sprintf("    --header-bg-color: %s;", c.Hex),
		}
		rolls := []string{
			fmt.Sprintf(".sheet-rolltemplate-custom .sheet-crt-container.sheet-crt-rlcolor-%s .inlinerollresult {", c.Name),
			fmt.Sprintf("    --roll-bg-color: %s;", c.Hex),
		}
		buttons := []string{
			fmt.Sprintf(".sheet-rolltemplate-custom .sheet-crt-container.sheet-crt-btcolor-%s a {", c.Name),
			fmt.Sprintf("    --button-bg-color: %s;", c.Hex),
		}

		if luma > lumaThreshold {
			header = append(header, "    --header-text-color: #000;")
			buttons = append(buttons, "    --button-text-color: #000;")
		}
		if luma < lumaThreshold {
			rolls = append(rolls, "    --roll-text-color: #FFF;")
		}

		for _, lines := range [][]string{header, rolls, buttons} {
			rules = append(rules, strings.Join(append(lines, "}"), "\n"))
		}
	}
	return strings.Join(rules, "\n"), nil
}
