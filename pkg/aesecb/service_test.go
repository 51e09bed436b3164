//go:build unit
// +build unit

package aesecb

import (
	"sync"
	"testing"

	domain "github.com/MGTheTrain/aes-ecb/internal/domain/aesecb"
	"github.com/MGTheTrain/aes-ecb/internal/pkg/config"
	"github.com/MGTheTrain/aes-ecb/internal/pkg/logger"
	"github.com/MGTheTrain/aes-ecb/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetDefaultService(t *testing.T) {
	t.Helper()

	restore := dispatchSettings
	reset := func() {
		dispatchSettings = restore
		defaultService = nil
		defaultErr = nil
		defaultOnce = sync.Once{}
	}
	reset()
	t.Cleanup(reset)
}

func TestDefaultLoggerUsesProcessLogger(t *testing.T) {
	resetDefaultService(t)
	log := testutil.SetupTestLogger(t)

	assert.Same(t, log, defaultLogger())

	want, err := logger.GetLogger()
	require.NoError(t, err)
	assert.Same(t, want, defaultLogger())
	assert.NotEmpty(t, Backend())
}

func TestDefaultServiceBuildFailureRepeats(t *testing.T) {
	resetDefaultService(t)
	dispatchSettings = func() *config.DispatchSettings {
		return &config.DispatchSettings{Backend: domain.BackendSoftware, Strategy: domain.StrategyChunked}
	}

	for i := 0; i < 2; i++ {
		func() {
			defer func() {
				r := recover()
				require.NotNil(t, r, "call %d did not panic", i)
				err, ok := r.(error)
				require.True(t, ok, "panic value %T is not an error", r)
				assert.Contains(t, err.Error(), "aesecb: build default service")
				assert.Contains(t, err.Error(), "invalid dispatch settings")
			}()
			Backend()
		}()
	}
	assert.Nil(t, defaultService)
}
