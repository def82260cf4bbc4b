package progrock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/cloister/internal/adapters/telemetry/progrock"
	"go.trai.ch/cloister/internal/core/domain"
)

func TestRecorder_RecordsAStep(t *testing.T) {
	recorder := progrock.New()

	_, vertex := recorder.Record(context.Background(), "classify binary")

	_, err := vertex.Stdout().Write([]byte("PE32 executable\n"))
	require.NoError(t, err)

	vertex.Log(domain.LogLevelInfo, "verdict: foreign")
	vertex.Complete(nil)

	require.NoError(t, recorder.Close())
}
