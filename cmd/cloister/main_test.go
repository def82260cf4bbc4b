package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_Version(t *testing.T) {
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()

	os.Args = []string{"cloister", "version"}

	exitCode := run()
	assert.Equal(t, 0, exitCode)
}

func TestRun_MissingBinary(t *testing.T) {
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()

	os.Args = []string{"cloister", "/nonexistent/game"}

	exitCode := run()
	assert.Equal(t, 1, exitCode)
}
