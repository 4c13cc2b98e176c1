package logger

import (
	"bytes"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// resetLogger restores the package globals so each test can call Init again.
func resetLogger() {
	logger = zap.NewNop().Sugar()
	initOnce = sync.Once{}
}

func TestInit(t *testing.T) {
	t.Run("defaults to info level", func(t *testing.T) {
		resetLogger()
		t.Cleanup(resetLogger)

		var buf bytes.Buffer
		require.NoError(t, Init(WithOutput(&buf)))

		Debug(t.Context(), "hidden")
		Info(t.Context(), "visible", "chain.id", 11155111)
		require.NoError(t, Sync())

		lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
		require.Len(t, lines, 1, "debug entries must be filtered at info level")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(lines[0], &entry))
		assert.Equal(t, "visible", entry["msg"])
		assert.Equal(t, "info", entry["level"])
		assert.EqualValues(t, 11155111, entry["chain.id"])
	})

	t.Run("honors custom level", func(t *testing.T) {
		resetLogger()
		t.Cleanup(resetLogger)

		var buf bytes.Buffer
		require.NoError(t, Init(WithLevel("error"), WithOutput(&buf)))

		Warn(t.Context(), "dropped")
		Error(t.Context(), "kept")
		require.NoError(t, Sync())

		assert.NotContains(t, buf.String(), "dropped")
		assert.Contains(t, buf.String(), "kept")
	})

	t.Run("rejects invalid level", func(t *testing.T) {
		resetLogger()
		t.Cleanup(resetLogger)

		err := Init(WithLevel("loud"))
		assert.Error(t, err)
	})

	t.Run("second call is ignored", func(t *testing.T) {
		resetLogger()
		t.Cleanup(resetLogger)

		var first, second bytes.Buffer
		require.NoError(t, Init(WithOutput(&first)))
		require.NoError(t, Init(WithOutput(&second)))

		Info(t.Context(), "once")
		require.NoError(t, Sync())

		assert.Contains(t, first.String(), "once")
		assert.Empty(t, second.String())
	})
}

func TestHelpersBeforeInit(t *testing.T) {
	t.Run("logging before Init does not panic", func(t *testing.T) {
		resetLogger()

		assert.NotPanics(t, func() {
			Debug(t.Context(), "debug")
			Info(t.Context(), "info")
			Warn(t.Context(), "warn")
			Error(t.Context(), "error")
		})
	})
}
