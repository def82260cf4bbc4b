// Package binfmt classifies executables by their binary signature, the same
// magic-byte inspection the kernel's binfmt handlers use. File extensions
// are never consulted.
package binfmt

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"

	"go.trai.ch/cloister/internal/core/domain"
	"go.trai.ch/zerr"
)

var (
	elfMagic = []byte{0x7f, 'E', 'L', 'F'}
	mzMagic  = []byte{'M', 'Z'}
	peMagic  = []byte{'P', 'E', 0, 0}
)

// peHeaderOffsetField is where the DOS header stores the offset of the PE
// signature (e_lfanew).
const peHeaderOffsetField = 0x3c

// Classifier implements ports.Classifier by reading executable headers.
type Classifier struct{}

// NewClassifier creates a new Classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify maps the target's binary signature to a platform verdict:
// ELF is native, a well-formed PE image is foreign, anything else is
// unsupported and returned as a hard error.
func (c *Classifier) Classify(target domain.ExecutableTarget) (domain.PlatformVerdict, error) {
	f, err := os.Open(target.Path())
	if err != nil {
		return domain.PlatformUnsupported, zerr.Wrap(err, "failed to open target binary")
	}
	defer f.Close()

	head := make([]byte, 4)
	if _, err := io.ReadFull(f, head); err != nil {
		// Too short to carry any executable header.
		return domain.PlatformUnsupported, zerr.With(domain.ErrUnsupportedPlatform, "path", target.Path())
	}

	if bytes.Equal(head, elfMagic) {
		return domain.PlatformNative, nil
	}

	if bytes.Equal(head[:2], mzMagic) && isPE(f) {
		return domain.PlatformForeign, nil
	}

	return domain.PlatformUnsupported, zerr.With(domain.ErrUnsupportedPlatform, "path", target.Path())
}

// isPE verifies that an MZ image carries the PE signature at the offset the
// DOS header points to. A bare DOS executable does not count as foreign:
// wine would not run it either.
func isPE(f *os.File) bool {
	var offset uint32
	if _, err := f.Seek(peHeaderOffsetField, io.SeekStart); err != nil {
		return false
	}
	if err := binary.Read(f, binary.LittleEndian, &offset); err != nil {
		return false
	}

	sig := make([]byte, 4)
	if _, err := f.ReadAt(sig, int64(offset)); err != nil {
		return false
	}
	return bytes.Equal(sig, peMagic)
}
