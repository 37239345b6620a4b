package iso20022

import "context"

type referenceKey[T any] struct{}

// WithReferenceData attaches reference data of type T, such as a participant
// directory, for business rules that look it up with ReferenceData.
func WithReferenceData[T any](ctx context.Context, data T) context.Context {
	return context.WithValue(ctx, referenceKey[T]{}, data)
}

// ReferenceData returns the value of type T attached by WithReferenceData.
func ReferenceData[T any](ctx context.Context) (T, bool) {
	v, ok := ctx.Value(referenceKey[T]{}).(T)
	return v, ok
}
