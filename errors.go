package iso20022

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeTooShort      = "too_short"
	CodeTooLong       = "too_long"
	CodeTooSmall      = "too_small"
	CodeTooBig        = "too_big"
	CodePattern       = "pattern"
	CodeInvalidEnum   = "invalid_enum"
	CodeTooFew        = "too_few"
	CodeTooMany       = "too_many"
	CodeInvalidChoice = "invalid_choice"
	CodeDigits        = "digits"
	CodeInvalidFormat = "invalid_format"
	// Business passes (cross-field semantics, run after structural validation)
	CodeBusinessRule       = "business_rule"
	CodeAggregateViolation = "aggregate_violation"
	CodeUniqueness         = "uniqueness"
	// Wire decoding
	CodeParseError   = "parse_error"
	CodeDuplicateKey = "duplicate_key"
	CodeTruncated    = "truncated"
	CodeInvalidType  = "invalid_type"
	// Document union
	CodeUnknownDocument = "unknown_document"
)

// numbers maps codes onto the numeric error codes used by downstream
// consumers that predate the string codes.
var numbers = map[string]int{
	CodeTooShort:           1001,
	CodeTooLong:            1002,
	CodeTooSmall:           1003,
	CodeTooBig:             1004,
	CodePattern:            1005,
	CodeInvalidEnum:        1006,
	CodeTooFew:             1007,
	CodeTooMany:            1008,
	CodeInvalidChoice:      1009,
	CodeDigits:             1010,
	CodeInvalidFormat:      1011,
	CodeBusinessRule:       2001,
	CodeAggregateViolation: 2002,
	CodeUniqueness:         2003,
	CodeParseError:         3001,
	CodeDuplicateKey:       3002,
	CodeTruncated:          3003,
	CodeInvalidType:        3004,
	CodeUnknownDocument:    9999,
}

// Issue represents a single violation.
type Issue struct {
	Path    string // JSON Pointer over XML element names (for example: /GrpHdr/MsgId).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints, format names, etc.
	Cause   error  // Optional: underlying error.
	// Params carries the violated bound (e.g., {"min":1}, {"pattern":"[A-Z]{3,3}"})
	// for i18n and observability.
	Params map[string]any
	// Rule records the simple type or business rule that produced this issue.
	Rule string
}

// Number returns the numeric code for the issue, or 0 for unknown codes.
func (i Issue) Number() int { return numbers[i.Code] }

func (i Issue) String() string {
	if i.Message == "" {
		return fmt.Sprintf("%s at %s", i.Code, i.Path)
	}
	return fmt.Sprintf("%s at %s: %s", i.Code, i.Path, i.Message)
}

// Issues is a collection of violations that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. too_long at /GrpHdr/MsgId
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// First returns the first issue. Validation stops at the first violation, so
// for Validate errors this is the only one.
func (iss Issues) First() (Issue, bool) {
	if len(iss) == 0 {
		return Issue{}, false
	}
	return iss[0], true
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// ToIssues converts any error into Issues, wrapping foreign errors as
// parse errors at the root. A nil error gives nil.
func ToIssues(err error) Issues {
	if err == nil {
		return nil
	}
	if ii, ok := AsIssues(err); ok {
		return ii
	}
	return AppendIssues(nil, Issue{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err})
}

func singleIssue(code, msg string) Issues {
	return AppendIssues(nil, Issue{Path: "/", Code: code, Message: msg})
}
