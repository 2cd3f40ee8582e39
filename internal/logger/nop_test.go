package logger

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mrterry/lunchr/types"
)

func TestNopLogger(t *testing.T) {
	var logger types.Logger = NewNop()

	require.NotPanics(t, func() {
		logger.Debug("move committed", "person", 1, "table", 0)
		logger.Info("settled", "rounds", 2)
		logger.Warn("capacity is large")
		logger.Error("invariant", "err", nil)
		logger.Fatal("does not exit")
	})
}
