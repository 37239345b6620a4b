package iso20022

import (
	"bytes"
	"fmt"

	"github.com/cockroachdb/apd/v3"
	"gopkg.in/yaml.v3"
)

// Decimal is an arbitrary-precision decimal used for amounts, rates and
// quantities. Values are immutable once decoded.
type Decimal struct {
	d apd.Decimal
}

// decimalContext is wide enough for every ISO 20022 amount (18 total digits)
// plus headroom for sums across large batches.
var decimalContext = apd.BaseContext.WithPrecision(64)

// ParseDecimal parses the lexical form of an xs:decimal. NaN and infinities
// are rejected.
func ParseDecimal(s string) (Decimal, error) {
	var out Decimal
	if err := out.UnmarshalText([]byte(s)); err != nil {
		return Decimal{}, err
	}
	return out, nil
}

// MustDecimal is like ParseDecimal but panics on error. It is meant for
// constants and tests.
func MustDecimal(s string) Decimal {
	d, err := ParseDecimal(s)
	if err != nil {
		panic(err)
	}
	return d
}

// NewDecimal returns coeff × 10^exp.
func NewDecimal(coeff int64, exp int32) Decimal {
	var out Decimal
	out.d.SetFinite(coeff, exp)
	return out
}

// Apd returns a copy of the underlying apd value.
func (x Decimal) Apd() *apd.Decimal {
	var c apd.Decimal
	c.Set(&x.d)
	return &c
}

// String renders the value without an exponent.
func (x Decimal) String() string { return x.d.Text('f') }

// Cmp compares x and y numerically (-1, 0, +1).
func (x Decimal) Cmp(y Decimal) int { return x.d.Cmp(&y.d) }

// IsZero reports whether the value equals zero.
func (x Decimal) IsZero() bool { return x.d.IsZero() }

// Sign returns -1, 0 or +1.
func (x Decimal) Sign() int { return x.d.Sign() }

// Add returns x + y.
func (x Decimal) Add(y Decimal) (Decimal, error) {
	var out Decimal
	if _, err := decimalContext.Add(&out.d, &x.d, &y.d); err != nil {
		return Decimal{}, err
	}
	return out, nil
}

// FractionDigits returns the number of significant digits after the decimal
// point ("1.50" has one).
func (x Decimal) FractionDigits() int {
	var r apd.Decimal
	r.Reduce(&x.d)
	if r.Exponent >= 0 {
		return 0
	}
	return int(-r.Exponent)
}

// TotalDigits returns the number of significant digits, ignoring leading and
// trailing zeros in the fraction ("0.0120" has two).
func (x Decimal) TotalDigits() int {
	var r apd.Decimal
	r.Reduce(&x.d)
	if r.IsZero() {
		return 1
	}
	n := int(r.NumDigits())
	if r.Exponent > 0 {
		n += int(r.Exponent)
	}
	return n
}

func (x Decimal) MarshalText() ([]byte, error) { return []byte(x.String()), nil }

func (x *Decimal) UnmarshalText(b []byte) error {
	s := string(bytes.TrimSpace(b))
	if _, _, err := x.d.SetString(s); err != nil {
		return fmt.Errorf("invalid decimal %q: %w", s, err)
	}
	if x.d.Form != apd.Finite {
		return fmt.Errorf("invalid decimal %q: not a finite number", s)
	}
	return nil
}

// MarshalJSON writes the value as a bare JSON number.
func (x Decimal) MarshalJSON() ([]byte, error) { return []byte(x.String()), nil }

// UnmarshalJSON accepts a JSON number or a quoted decimal string.
func (x *Decimal) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) >= 2 && b[0] == '"' && b[len(b)-1] == '"' {
		b = b[1 : len(b)-1]
	}
	return x.UnmarshalText(b)
}

// MarshalYAML writes the value as a plain scalar so it round-trips as a number.
func (x Decimal) MarshalYAML() (any, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: x.String()}, nil
}

func (x *Decimal) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("invalid decimal: expected scalar, got yaml kind %d", n.Kind)
	}
	return x.UnmarshalText([]byte(n.Value))
}
