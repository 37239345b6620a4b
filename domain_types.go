package iso20022

import "context"

// DomainCtx is handed to business rules. Ref is the path of the message
// element; rules build issue paths from it.
type DomainCtx[T any] struct {
	Ctx context.Context
	Ref PathRef
}
