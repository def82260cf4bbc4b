package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cloister/internal/adapters/telemetry"
	"go.trai.ch/cloister/internal/core/domain"
)

func TestNoOp(t *testing.T) {
	tel := telemetry.NewNoOp()

	ctx := context.Background()
	got, vertex := tel.Record(ctx, "anything")
	assert.Equal(t, ctx, got)

	n, err := vertex.Stdout().Write([]byte("discarded"))
	require.NoError(t, err)
	assert.Equal(t, 9, n)

	vertex.Log(domain.LogLevelWarn, "still nothing")
	vertex.Complete(nil)

	require.NoError(t, tel.Close())
}
