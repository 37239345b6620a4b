package iso20022

import (
	"unicode/utf8"

	js "github.com/reoring/iso20022/jsonschema"
)

// SimpleType describes a named restriction of a primitive (Max35Text,
// ActiveCurrencyCode, DecimalNumber, ...).
type SimpleType interface {
	Name() string
	Describe() *js.Schema
}

// Simple is implemented by named Go types backed by a SimpleType. Schema
// export uses it to attach facets to fields.
type Simple interface {
	SimpleType() SimpleType
}

// TextType is a string simple type. Facets run in the order min length, max
// length, pattern, enumeration, format.
type TextType struct {
	name string
	f    *facets
}

// NewTextType builds a string simple type. Decimal facets panic.
func NewTextType(name string, opts ...Facet) *TextType {
	f := newFacets(opts)
	f.mustOnly("text", name, f.decimalOnly)
	return &TextType{name: name, f: f}
}

func (t *TextType) Name() string { return t.name }

// Codes returns the enumeration, or nil when the type is not a code list.
func (t *TextType) Codes() []string { return append([]string(nil), t.f.enum...) }

// Check validates s and returns the first violated facet as Issues.
func (t *TextType) Check(p PathRef, s string) error {
	f := t.f
	if f.minLen >= 0 || f.maxLen >= 0 {
		n := utf8.RuneCountInString(s)
		if f.minLen >= 0 && n < f.minLen {
			return Violation(p, CodeTooShort, t.name, map[string]any{"min": f.minLen, "got": n})
		}
		if f.maxLen >= 0 && n > f.maxLen {
			return Violation(p, CodeTooLong, t.name, map[string]any{"max": f.maxLen, "got": n})
		}
	}
	if f.pattern != nil && !f.pattern.MatchString(s) {
		return Violation(p, CodePattern, t.name, map[string]any{"pattern": f.patternSrc})
	}
	if f.enumSet != nil {
		if _, ok := f.enumSet[s]; !ok {
			return Violation(p, CodeInvalidEnum, t.name, map[string]any{"got": s})
		}
	}
	if f.format != nil {
		if err := f.format(s); err != nil {
			iss := ViolationIssue(p, CodeInvalidFormat, t.name, map[string]any{"format": f.formatName})
			iss.Cause = err
			return Issues{iss}
		}
	}
	return nil
}

func (t *TextType) Describe() *js.Schema {
	f := t.f
	s := &js.Schema{Type: "string", Title: t.name, Pattern: f.patternSrc, Enum: f.enum, Format: f.formatName}
	if f.minLen >= 0 {
		s.MinLength = js.Int(f.minLen)
	}
	if f.maxLen >= 0 {
		s.MaxLength = js.Int(f.maxLen)
	}
	return s
}

// DecimalType is a decimal simple type. Facets run in the order fraction
// digits, total digits, min inclusive, min exclusive, max inclusive, max
// exclusive.
type DecimalType struct {
	name string
	f    *facets
}

// NewDecimalType builds a decimal simple type. Text facets panic.
func NewDecimalType(name string, opts ...Facet) *DecimalType {
	f := newFacets(opts)
	f.mustOnly("decimal", name, f.textOnly)
	return &DecimalType{name: name, f: f}
}

func (t *DecimalType) Name() string { return t.name }

// Check validates d and returns the first violated facet as Issues.
func (t *DecimalType) Check(p PathRef, d Decimal) error {
	f := t.f
	if f.fractionDigits >= 0 {
		if n := d.FractionDigits(); n > f.fractionDigits {
			return Violation(p, CodeDigits, t.name, map[string]any{"fractionDigits": f.fractionDigits, "got": n})
		}
	}
	if f.totalDigits >= 0 {
		if n := d.TotalDigits(); n > f.totalDigits {
			return Violation(p, CodeDigits, t.name, map[string]any{"totalDigits": f.totalDigits, "got": n})
		}
	}
	if f.minIncl != nil && d.Cmp(*f.minIncl) < 0 {
		return Violation(p, CodeTooSmall, t.name, map[string]any{"min": f.minIncl.String(), "got": d.String()})
	}
	if f.minExcl != nil && d.Cmp(*f.minExcl) <= 0 {
		return Violation(p, CodeTooSmall, t.name, map[string]any{"min": f.minExcl.String(), "exclusive": true, "got": d.String()})
	}
	if f.maxIncl != nil && d.Cmp(*f.maxIncl) > 0 {
		return Violation(p, CodeTooBig, t.name, map[string]any{"max": f.maxIncl.String(), "got": d.String()})
	}
	if f.maxExcl != nil && d.Cmp(*f.maxExcl) >= 0 {
		return Violation(p, CodeTooBig, t.name, map[string]any{"max": f.maxExcl.String(), "exclusive": true, "got": d.String()})
	}
	return nil
}

func (t *DecimalType) Describe() *js.Schema {
	f := t.f
	s := &js.Schema{Type: "number", Title: t.name}
	if f.minIncl != nil {
		s.Minimum = js.Num(f.minIncl.String())
	}
	if f.maxIncl != nil {
		s.Maximum = js.Num(f.maxIncl.String())
	}
	if f.minExcl != nil {
		s.ExclusiveMinimum = js.Num(f.minExcl.String())
	}
	if f.maxExcl != nil {
		s.ExclusiveMaximum = js.Num(f.maxExcl.String())
	}
	if f.fractionDigits >= 0 {
		s.MultipleOf = js.Num(NewDecimal(1, int32(-f.fractionDigits)).String())
	}
	return s
}

// AlwaysValid is the no-op simple type for identifiers without a declared
// constraint.
var AlwaysValid SimpleType = NewTextType("string")
