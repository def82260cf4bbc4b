package domain

import (
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
)

// ExecutableTarget identifies the game binary to provision. It is validated
// once at construction and never mutated afterwards; classification always
// operates on a target that is known to exist and to carry the executable bit.
type ExecutableTarget struct {
	path string
}

// NewExecutableTarget validates path and returns an immutable target.
// It returns ErrInvalidTarget if the path does not exist, is a directory,
// or is not marked executable.
func NewExecutableTarget(path string) (ExecutableTarget, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return ExecutableTarget{}, zerr.Wrap(err, "failed to resolve target path")
	}

	info, err := os.Stat(abs)
	if err != nil {
		return ExecutableTarget{}, zerr.With(ErrInvalidTarget, "path", abs)
	}
	if info.IsDir() || info.Mode()&0o111 == 0 {
		return ExecutableTarget{}, zerr.With(ErrInvalidTarget, "path", abs)
	}

	return ExecutableTarget{path: abs}, nil
}

// Path returns the absolute path of the binary.
func (t ExecutableTarget) Path() string {
	return t.path
}

// Name returns the bare file name of the binary.
func (t ExecutableTarget) Name() string {
	return filepath.Base(t.path)
}
