package arm5sheet

// Notes:
// - Repeat: tests token replacement, joining, and the empty-sequence case
// - RepeatRange: tests inclusive decimal ranges
// - RepeatRows: tests named-field substitution and missing-field failures
// - NameRow/EnumerateRows: tests the lowercase/capitalized field pairs

import (
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRepeat - Plain Token Repetition
// ---------------------------------------------------------------------------

func TestRepeat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		tmpl     string
		token    string
		values   []string
		expected string
	}{
		{
			name:     "empty sequence yields empty string",
			tmpl:     "<tr>$$</tr>",
			token:    "$$",
			values:   nil,
			expected: "",
		},
		{
			name:     "single value",
			tmpl:     "<td>$$</td>",
			token:    "$$",
			values:   []string{"creo"},
			expected: "<td>creo</td>",
		},
		{
			name:     "multiple occurrences all replaced",
			tmpl:     `<input name="attr_X$$" id="$$"/>`,
			token:    "$$",
			values:   []string{"1", "2"},
			expected: "<input name=\"attr_X1\" id=\"1\"/>\n<input name=\"attr_X2\" id=\"2\"/>",
		},
		{
			name:     "template without token repeats verbatim",
			tmpl:     "<hr/>",
			token:    "$$",
			values:   []string{"a", "b", "c"},
			expected: "<hr/>\n<hr/>\n<hr/>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Repeat(tt.tmpl, tt.token, tt.values...)
			if got != tt.expected {
				t.Errorf("Repeat() = %q, want %q", got, tt.expected)
			}
		})
	}
}

// Static text of a single-placeholder template occurs once per value.
func TestRepeat_StaticTextCount(t *testing.T) {
	t.Parallel()

	values := []string{"a", "b", "c", "d", "e", "f"}
	got := Repeat("<tr>$$</tr>", DefaultToken, values...)

	if count := strings.Count(got, "<tr>"); count != len(values) {
		t.Errorf("static text occurs %d times, want %d", count, len(values))
	}
}

// ---------------------------------------------------------------------------
// TestRepeatRange - Decimal Ranges
// ---------------------------------------------------------------------------

func TestRepeatRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		first, last int
		expected    string
	}{
		{
			name:     "one through three",
			first:    1,
			last:     3,
			expected: "[1]\n[2]\n[3]",
		},
		{
			name:     "zero based",
			first:    0,
			last:     1,
			expected: "[0]\n[1]",
		},
		{
			name:     "single element range",
			first:    5,
			last:     5,
			expected: "[5]",
		},
		{
			name:     "inverted range yields empty string",
			first:    3,
			last:     1,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := RepeatRange("[$$]", DefaultToken, tt.first, tt.last)
			if got != tt.expected {
				t.Errorf("RepeatRange() = %q, want %q", got, tt.expected)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRepeatRows - Named Field Substitution
// ---------------------------------------------------------------------------

func TestRepeatRows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		tmpl     string
		rows     []Row
		expected string
		wantErr  error
	}{
		{
			name:     "empty row list yields empty string",
			tmpl:     "<%x%>",
			rows:     nil,
			expected: "",
		},
		{
			name:     "both spellings substituted",
			tmpl:     `<td data-i18n="<%tech%>" ><%Tech%></td>`,
			rows:     NameRows("tech", []string{"creo", "rego"}),
			expected: "<td data-i18n=\"creo\" >Creo</td>\n<td data-i18n=\"rego\" >Rego</td>",
		},
		{
			name:     "whitespace inside placeholder tolerated",
			tmpl:     "<% tech %>",
			rows:     []Row{{"tech": "muto"}},
			expected: "muto",
		},
		{
			name:    "missing field fails the build",
			tmpl:    "<%tech%> <%typo%>",
			rows:    []Row{{"tech": "perdo"}},
			wantErr: ErrMissingField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := RepeatRows(tt.tmpl, tt.rows)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("RepeatRows() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("RepeatRows() unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("RepeatRows() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestRepeatRowsSep(t *testing.T) {
	t.Parallel()

	got, err := RepeatRowsSep("@{<%char%>_i18n}", NameRows("char", []string{"stamina", "presence"}), "| ")
	if err != nil {
		t.Fatalf("RepeatRowsSep() unexpected error: %v", err)
	}
	want := "@{stamina_i18n}| @{presence_i18n}"
	if got != want {
		t.Errorf("RepeatRowsSep() = %q, want %q", got, want)
	}
}

// ---------------------------------------------------------------------------
// TestEnumerateRows - Indexed Rows
// ---------------------------------------------------------------------------

func TestEnumerateRows(t *testing.T) {
	t.Parallel()

	rows := EnumerateRows("form", []string{"animal", "aquam"}, 1)

	if len(rows) != 2 {
		t.Fatalf("EnumerateRows() returned %d rows, want 2", len(rows))
	}
	if rows[0]["index"] != "1" || rows[1]["index"] != "2" {
		t.Errorf("indices = %q, %q, want 1, 2", rows[0]["index"], rows[1]["index"])
	}
	if rows[0]["form"] != "animal" || rows[0]["Form"] != "Animal" {
		t.Errorf("name fields = %q, %q, want animal, Animal", rows[0]["form"], rows[0]["Form"])
	}
}
