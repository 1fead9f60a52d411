// Package localstore is the client's durable local storage: a small key/value
// table in SQLite standing in for the browser's localStorage. The session
// token lives here under a single fixed key so it survives restarts.
package localstore

import (
	"context"
)

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
