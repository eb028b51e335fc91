package kvstore

import "context"

// Tx is the view of the store available inside Update.
type Tx interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key string, value string) error
	Remove(ctx context.Context, key string) error
}

// Store is a durable key-value store.
type Store interface {
	Tx

	// Update runs fn as one unit of work. If fn returns an error none of its
	// writes are applied.
	Update(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}
