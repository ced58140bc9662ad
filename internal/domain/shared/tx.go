package shared

import "context"

// Transactor runs fn in a single store transaction. Repository calls made
// with the context handed to fn take part in it.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
