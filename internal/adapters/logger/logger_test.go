package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/cloister/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New()
	log.SetOutput(&buf)

	log.Info("provisioning started")
	log.Warn("offline mode requested")
	log.Error(zerr.New("wineboot failed"))

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "provisioning started")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "offline mode requested")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "wineboot failed")
}
