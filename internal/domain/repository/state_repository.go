package repository

import "context"

// StateRepository is the persistence gateway contract: the whole application
// state is stored as one opaque blob under a versioned key. Implementations
// must treat an absent key as (nil, nil), not an error.
type StateRepository interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}
