package arm5sheet

import (
	"fmt"
	"strconv"
	"strings"
)

// AddFatigueLevels is how many extra "Winded" fatigue levels a character can
// gain beyond the standard track.
const AddFatigueLevels = 10

// fatigueLevelsOptions renders the selector for how many additional fatigue
// levels are in play, 0 through AddFatigueLevels.
func fatigueLevelsOptions() string {
	return RepeatRange(`<option value="$$">$$</option>`, DefaultToken, 0, AddFatigueLevels)
}

// additionalFatigueRows renders one table row per optional fatigue level.
// The radio values are n/1000 so added levels sort between the standard
// track's values without colliding with them.
func additionalFatigueRows() (string, error) {
	rows := make([]Row, 0, AddFatigueLevels)
	for i := 1; i <= AddFatigueLevels; i++ {
		rows = append(rows, Row{
			"num":   strconv.Itoa(i),
			"value": strconv.FormatFloat(float64(i)/1000, 'g', -1, 64),
		})
	}
	return RepeatRows(`<tr class="addfatigue-<%num%>">
    <td><input type="radio" class="radio_1" name="attr_Fatigue" value="<%value%>"><span></span></td>
    <td style="text-align:center;">0</td>
    <td>2 min.</td>
    <td data-i18n="winded" >Winded</td>
</tr>`, rows)
}

// fatigueLevelCSS hides each optional fatigue row unless the level selector
// sits on a value that includes it. The selector chain matches the proxy
// input not being on any value that would show the row.
func fatigueLevelCSS() string {
	rules := make([]string, 0, AddFatigueLevels)
	for lvl := 1; lvl <= AddFatigueLevels; lvl++ {
		var b strings.Builder
		for val := lvl; val <= AddFatigueLevels; val++ {
			fmt.Fprintf(&b, `:not(.sheet-fatigue-proxy[value="%d"])`, val)
		}
		fmt.Fprintf(&b, " + table tr.sheet-addfatigue-%d {\n    display: none;\n}", lvl)
		rules = append(rules, b.String())
	}
	return strings.Join(rules, "\n")
}
