package iso20022

import "context"

// Validator is implemented by every message type, component and simple type.
// Validate checks the value located at p and returns the first violation in
// field declaration order, or nil.
type Validator interface {
	Validate(p PathRef) error
}

// Validate checks v from the root path.
func Validate(v Validator) error {
	if v == nil {
		return nil
	}
	return v.Validate(Root())
}

// Optional validates v when it is present.
func Optional[T any, PT interface {
	*T
	Validator
}](p PathRef, v PT) error {
	if v == nil {
		return nil
	}
	return v.Validate(p)
}

// Each validates every element of items at p/0, p/1, ... and stops at the
// first failure.
func Each[T any, PT interface {
	*T
	Validator
}](p PathRef, items []T) error {
	for i := range items {
		if err := PT(&items[i]).Validate(p.Index(i)); err != nil {
			return err
		}
	}
	return nil
}

// Occurs checks that a repeated element appears between min and max times.
// A negative max means unbounded.
func Occurs(p PathRef, n, min, max int) error {
	if n < min {
		return Violation(p, CodeTooFew, "", map[string]any{"min": min, "got": n})
	}
	if max >= 0 && n > max {
		return Violation(p, CodeTooMany, "", map[string]any{"max": max, "got": n})
	}
	return nil
}

// Choice checks that exactly one branch of a choice component is present.
func Choice(p PathRef, present ...bool) error {
	n := 0
	for _, ok := range present {
		if ok {
			n++
		}
	}
	if n != 1 {
		return Violation(p, CodeInvalidChoice, "", map[string]any{"got": n})
	}
	return nil
}

// All runs checks in order and returns the first failure. Message types use
// it to keep declaration order visible in one expression.
func All(checks ...func() error) error {
	for _, c := range checks {
		if err := c(); err != nil {
			return err
		}
	}
	return nil
}

// ---- context options (exported for subpackages) ----

type contextKey int

const (
	_ctxKeyFailFast contextKey = iota
)

// WithFailFast returns a child context that asks rule runners to stop at the
// first issue. Structural validation always stops at the first violation.
func WithFailFast(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, _ctxKeyFailFast, enabled)
}

// IsFailFast reports whether rule evaluation should stop on the first issue.
func IsFailFast(ctx context.Context) bool {
	v := ctx.Value(_ctxKeyFailFast)
	b, _ := v.(bool)
	return b
}
