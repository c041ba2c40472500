package executor

import "context"

// Executor runs external programs and returns their standard output.
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
	ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (string, error)
	// Available reports whether name resolves to an executable on PATH.
	Available(name string) bool
}
