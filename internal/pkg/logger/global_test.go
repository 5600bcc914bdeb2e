package logger

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetGlobalLogger_ConcurrentCallersShareOneInstance(t *testing.T) {
	loggers := make([]*ZapLogger, 32)

	var wg sync.WaitGroup
	for i := range loggers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			loggers[i] = GetGlobalLogger()
		}(i)
	}
	wg.Wait()

	for _, l := range loggers {
		require.NotNil(t, l)
		assert.Same(t, loggers[0], l)
	}
}

func TestSetGlobalLogger_Overrides(t *testing.T) {
	custom, err := NewZapLogger(ZapConfig{Level: "error"})
	require.NoError(t, err)

	SetGlobalLogger(custom)

	assert.Same(t, custom, GetGlobalLogger())
}
