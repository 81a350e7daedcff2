// Package localstorage is a small synchronous key/value store persisted in
// the local database. It plays the role browser local storage plays for a
// web client: the active session is mirrored into it.
package localstorage

import (
	"context"
)

type Repository interface {
	// Get returns (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
