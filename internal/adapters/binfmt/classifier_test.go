package binfmt_test

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cloister/internal/adapters/binfmt"
	"go.trai.ch/cloister/internal/core/domain"
)

// peFixture builds a minimal DOS header whose e_lfanew points at a PE
// signature, which is all the classifier inspects.
func peFixture() []byte {
	buf := make([]byte, 68)
	buf[0] = 'M'
	buf[1] = 'Z'
	binary.LittleEndian.PutUint32(buf[0x3c:], 64)
	copy(buf[64:], []byte{'P', 'E', 0, 0})
	return buf
}

func elfFixture() []byte {
	return append([]byte{0x7f, 'E', 'L', 'F', 2, 1, 1}, make([]byte, 16)...)
}

func writeTarget(t *testing.T, name string, content []byte) domain.ExecutableTarget {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o755))
	target, err := domain.NewExecutableTarget(path)
	require.NoError(t, err)
	return target
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		want    domain.PlatformVerdict
		wantErr error
	}{
		{
			name:    "ELF is native",
			content: elfFixture(),
			want:    domain.PlatformNative,
		},
		{
			name:    "PE is foreign",
			content: peFixture(),
			want:    domain.PlatformForeign,
		},
		{
			name:    "shell script is unsupported",
			content: []byte("#!/bin/sh\nexec game\n"),
			want:    domain.PlatformUnsupported,
			wantErr: domain.ErrUnsupportedPlatform,
		},
		{
			name:    "truncated file is unsupported",
			content: []byte{0x7f},
			want:    domain.PlatformUnsupported,
			wantErr: domain.ErrUnsupportedPlatform,
		},
		{
			name:    "bare DOS executable is unsupported",
			content: append([]byte{'M', 'Z'}, make([]byte, 30)...),
			want:    domain.PlatformUnsupported,
			wantErr: domain.ErrUnsupportedPlatform,
		},
	}

	c := binfmt.NewClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := writeTarget(t, "game", tt.content)

			verdict, err := c.Classify(target)
			assert.Equal(t, tt.want, verdict)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestClassify_Idempotent(t *testing.T) {
	c := binfmt.NewClassifier()
	target := writeTarget(t, "game.exe", peFixture())

	for range 3 {
		verdict, err := c.Classify(target)
		require.NoError(t, err)
		assert.Equal(t, domain.PlatformForeign, verdict)
	}
}
