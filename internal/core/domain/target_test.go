package domain_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.trai.ch/cloister/internal/core/domain"
)

func TestNewExecutableTarget_Valid(t *testing.T) {
	dir := t.TempDir()
	bin := filepath.Join(dir, "game")
	if err := os.WriteFile(bin, []byte("\x7fELF"), 0o755); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	target, err := domain.NewExecutableTarget(bin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if target.Path() != bin {
		t.Errorf("expected path %s, got %s", bin, target.Path())
	}
	if target.Name() != "game" {
		t.Errorf("expected name game, got %s", target.Name())
	}
}

func TestNewExecutableTarget_Missing(t *testing.T) {
	_, err := domain.NewExecutableTarget(filepath.Join(t.TempDir(), "absent"))
	if !errors.Is(err, domain.ErrInvalidTarget) {
		t.Fatalf("expected ErrInvalidTarget, got %v", err)
	}
}

func TestNewExecutableTarget_NotExecutable(t *testing.T) {
	dir := t.TempDir()
	bin := filepath.Join(dir, "game")
	if err := os.WriteFile(bin, []byte("\x7fELF"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	_, err := domain.NewExecutableTarget(bin)
	if !errors.Is(err, domain.ErrInvalidTarget) {
		t.Fatalf("expected ErrInvalidTarget, got %v", err)
	}
}

func TestNewExecutableTarget_Directory(t *testing.T) {
	_, err := domain.NewExecutableTarget(t.TempDir())
	if !errors.Is(err, domain.ErrInvalidTarget) {
		t.Fatalf("expected ErrInvalidTarget, got %v", err)
	}
}
