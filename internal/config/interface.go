package config

import "context"

// Loader reads a toolchain file and returns the model with the file's values
// laid over Default().
//
// A path that does not exist yields an error wrapping fs.ErrNotExist, so
// callers can decide whether an absent file matters.
type Loader interface {
	Load(ctx context.Context, path string) (*Model, error)
}
