package iso20022

import "strings"

// Format selects the wire format.
type Format int

const (
	FormatAuto Format = iota // Sniff from the first non-space byte.
	FormatXML
	FormatJSON
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatXML:
		return "xml"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "auto"
	}
}

// ParseFormat maps "xml", "json", "yaml"/"yml" and "auto" (any case) to a
// Format.
func ParseFormat(s string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "xml":
		return FormatXML, true
	case "json":
		return FormatJSON, true
	case "yaml", "yml":
		return FormatYAML, true
	case "", "auto":
		return FormatAuto, true
	}
	return FormatAuto, false
}

// Strictness configures enforcement for duplicate keys.
type Strictness struct {
	OnDuplicateKey Severity // Warn or Error (duplicate JSON keys).
}

// Severity expresses the severity level for issues.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// ParseOpt bundles decoding options.
type ParseOpt struct {
	Format Format
	// MessageType resolves documents without a namespace whose root element
	// is shared by several registered versions.
	MessageType string
	Strictness  Strictness
	MaxBytes    int64
	// Rules runs the message type's business rules after validation.
	Rules bool
	// FailFast stops business rules at the first issue.
	FailFast bool
	// OnWarning receives issues with Warn severity (e.g. duplicate keys).
	OnWarning func(Issue)
}
