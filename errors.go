package arm5sheet

import "errors"

// Sentinel errors for library operations.
var (
	// Template repetition errors.
	ErrMissingField = errors.New("template references a field not present in the row")

	// Color table errors.
	ErrColorTableHeader = errors.New("color table header must contain 'color' and 'hex' columns")
	ErrColorTableRow    = errors.New("malformed color table row")
	ErrInvalidHexColor  = errors.New("invalid hex color value")

	// Alert banner errors.
	ErrInvalidAlertLevel = errors.New("alert level must be one of 'info', 'warning'")
	ErrNumericAlertID    = errors.New("explicit alert IDs must not be purely numeric")

	// Documentation conversion errors.
	ErrEmptyMarkdown  = errors.New("documentation markdown cannot be empty")
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrHTMLAnnotation = errors.New("HTML heading annotation failed")
)
