package iso20022

import (
	"fmt"
	"regexp"
	"strings"
)

// Facet is a single constraint on a simple type. The set is closed: facets are
// built with the constructors below and applied by NewTextType or
// NewDecimalType.
type Facet interface {
	apply(f *facets)
}

type facetFunc func(f *facets)

func (fn facetFunc) apply(f *facets) { fn(f) }

// facets accumulates the constraints of one simple type.
type facets struct {
	minLen, maxLen int // -1 when unset

	patternSrc string
	pattern    *regexp.Regexp

	enum    []string
	enumSet map[string]struct{}

	formatName string
	format     func(string) error

	minIncl, maxIncl *Decimal
	minExcl, maxExcl *Decimal
	fractionDigits   int // -1 when unset
	totalDigits      int // -1 when unset

	textOnly, decimalOnly []string
}

func newFacets(opts []Facet) *facets {
	f := &facets{minLen: -1, maxLen: -1, fractionDigits: -1, totalDigits: -1}
	for _, o := range opts {
		o.apply(f)
	}
	return f
}

// Length sets both length bounds, counted in characters.
func Length(min, max int) Facet {
	return facetFunc(func(f *facets) {
		f.minLen, f.maxLen = min, max
		f.textOnly = append(f.textOnly, "Length")
	})
}

// MinLength sets the lower length bound, counted in characters.
func MinLength(n int) Facet {
	return facetFunc(func(f *facets) {
		f.minLen = n
		f.textOnly = append(f.textOnly, "MinLength")
	})
}

// MaxLength sets the upper length bound, counted in characters.
func MaxLength(n int) Facet {
	return facetFunc(func(f *facets) {
		f.maxLen = n
		f.textOnly = append(f.textOnly, "MaxLength")
	})
}

// Pattern constrains the value to match expr in full. The expression is
// compiled once; an invalid expression panics at construction.
func Pattern(expr string) Facet {
	re := regexp.MustCompile(`^(?:` + expr + `)$`)
	return facetFunc(func(f *facets) {
		f.patternSrc, f.pattern = expr, re
		f.textOnly = append(f.textOnly, "Pattern")
	})
}

// Enum restricts the value to a closed code list.
func Enum(codes ...string) Facet {
	return facetFunc(func(f *facets) {
		f.enum = append([]string(nil), codes...)
		f.enumSet = make(map[string]struct{}, len(codes))
		for _, c := range codes {
			f.enumSet[c] = struct{}{}
		}
		f.textOnly = append(f.textOnly, "Enum")
	})
}

// Lexical runs a lexical check (dates, registries) after the other text
// facets. name appears in messages and as the exported schema format.
func Lexical(name string, check func(string) error) Facet {
	return facetFunc(func(f *facets) {
		f.formatName, f.format = name, check
		f.textOnly = append(f.textOnly, "Lexical")
	})
}

// MinInclusive sets value >= bound.
func MinInclusive(bound string) Facet {
	d := MustDecimal(bound)
	return facetFunc(func(f *facets) {
		f.minIncl = &d
		f.decimalOnly = append(f.decimalOnly, "MinInclusive")
	})
}

// MaxInclusive sets value <= bound.
func MaxInclusive(bound string) Facet {
	d := MustDecimal(bound)
	return facetFunc(func(f *facets) {
		f.maxIncl = &d
		f.decimalOnly = append(f.decimalOnly, "MaxInclusive")
	})
}

// MinExclusive sets value > bound.
func MinExclusive(bound string) Facet {
	d := MustDecimal(bound)
	return facetFunc(func(f *facets) {
		f.minExcl = &d
		f.decimalOnly = append(f.decimalOnly, "MinExclusive")
	})
}

// MaxExclusive sets value < bound.
func MaxExclusive(bound string) Facet {
	d := MustDecimal(bound)
	return facetFunc(func(f *facets) {
		f.maxExcl = &d
		f.decimalOnly = append(f.decimalOnly, "MaxExclusive")
	})
}

// FractionDigits caps the number of significant digits after the point.
func FractionDigits(n int) Facet {
	return facetFunc(func(f *facets) {
		f.fractionDigits = n
		f.decimalOnly = append(f.decimalOnly, "FractionDigits")
	})
}

// TotalDigits caps the number of significant digits.
func TotalDigits(n int) Facet {
	return facetFunc(func(f *facets) {
		f.totalDigits = n
		f.decimalOnly = append(f.decimalOnly, "TotalDigits")
	})
}

func (f *facets) mustOnly(kind, name string, foreign []string) {
	if len(foreign) > 0 {
		panic(fmt.Sprintf("iso20022: %s type %s does not accept facets %s", kind, name, strings.Join(foreign, ", ")))
	}
}
