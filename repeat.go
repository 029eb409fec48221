package arm5sheet

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DefaultToken is the placeholder replaced by Repeat and RepeatRange.
// Chosen because it never occurs in Roll20 macro syntax.
const DefaultToken = "$$"

// fieldToken matches named placeholders of the form <%field%>.
// Field names follow attribute naming: letters, digits, underscore, dash.
var fieldToken = regexp.MustCompile(`<%\s*([A-Za-z][A-Za-z0-9_-]*)\s*%>`)

// Repeat concatenates tmpl once per value, with every occurrence of token
// replaced by the value for that iteration. Repetitions are joined with a
// newline. An empty value list yields an empty string.
//
// Values must not themselves contain the token; no escaping is defined.
func Repeat(tmpl, token string, values ...string) string {
	if len(values) == 0 {
		return ""
	}
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, strings.ReplaceAll(tmpl, token, v))
	}
	return strings.Join(parts, "\n")
}

// RepeatRange repeats tmpl over the decimal values first..last inclusive.
func RepeatRange(tmpl, token string, first, last int) string {
	if last < first {
		return ""
	}
	values := make([]string, 0, last-first+1)
	for i := first; i <= last; i++ {
		values = append(values, strconv.Itoa(i))
	}
	return Repeat(tmpl, token, values...)
}

// Row holds the named fields substituted into one repetition of a template.
type Row map[string]string

// NameRow builds a Row exposing a name under its key in two spellings:
// <%key%> yields the name as-is and <%Key%> yields it capitalized, matching
// the sheet's convention of lowercase i18n keys and capitalized attribute
// names (e.g. "creo" / "Creo").
func NameRow(key, name string) Row {
	return Row{
		key:             name,
		capitalize(key): capitalize(name),
	}
}

// EnumerateRows builds one Row per name, each carrying the two NameRow
// spellings plus a 1-based (or start-based) decimal "index" field.
func EnumerateRows(key string, names []string, start int) []Row {
	rows := make([]Row, 0, len(names))
	for i, name := range names {
		row := NameRow(key, name)
		row["index"] = strconv.Itoa(start + i)
		rows = append(rows, row)
	}
	return rows
}

// RepeatRows concatenates tmpl once per row, replacing every <%field%>
// placeholder with the row's value for that field. A placeholder naming a
// field absent from a row fails immediately with ErrMissingField so a typo
// surfaces at build time instead of producing malformed sheet fragments.
func RepeatRows(tmpl string, rows []Row) (string, error) {
	return RepeatRowsSep(tmpl, rows, "\n")
}

// RepeatRowsSep is RepeatRows with an explicit separator, for inline
// repetitions such as attribute-query choice lists.
func RepeatRowsSep(tmpl string, rows []Row, sep string) (string, error) {
	if len(rows) == 0 {
		return "", nil
	}

	parts := make([]string, 0, len(rows))
	for i, row := range rows {
		var missing string
		expanded := fieldToken.ReplaceAllStringFunc(tmpl, func(tok string) string {
			name := fieldToken.FindStringSubmatch(tok)[1]
			value, ok := row[name]
			if !ok {
				if missing == "" {
					missing = name
				}
				return tok
			}
			return value
		})
		if missing != "" {
			return "", fmt.Errorf("%w: %q (row %d)", ErrMissingField, missing, i)
		}
		parts = append(parts, expanded)
	}
	return strings.Join(parts, sep), nil
}

// NameRows builds the NameRow for each name in order.
func NameRows(key string, names []string) []Row {
	rows := make([]Row, 0, len(names))
	for _, name := range names {
		rows = append(rows, NameRow(key, name))
	}
	return rows
}

// capitalize upper-cases the first ASCII letter, leaving the rest untouched.
// Enumeration names are plain lowercase ASCII.
func capitalize(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
