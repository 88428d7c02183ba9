package logger

import (
	"bytes"
	"io"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// captureVerbose routes logs into a buffer for the duration of a test.
func captureVerbose(t *testing.T, v bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(v)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	return &buf
}

func TestSetVerbose(t *testing.T) {
	captureVerbose(t, false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestDebug_WhenVerbose(t *testing.T) {
	buf := captureVerbose(t, true)

	Debug("POST %s", "http://localhost:5000/classify")

	assert.Equal(t, "[DEBUG] POST http://localhost:5000/classify\n", buf.String())
}

func TestDebug_WhenNotVerbose(t *testing.T) {
	buf := captureVerbose(t, false)

	Debug("test message")

	assert.Zero(t, buf.Len())
}

func TestLevels(t *testing.T) {
	buf := captureVerbose(t, true)

	Info("info message %d", 42)
	Warn("warning message")

	assert.Equal(t, "[INFO] info message 42\n[WARN] warning message\n", buf.String())
}

func TestSection(t *testing.T) {
	buf := captureVerbose(t, true)

	Section("Classify")

	assert.Equal(t, "\n=== Classify ===\n", buf.String())
}

func TestConcurrentAccess(t *testing.T) {
	SetOutput(io.Discard)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			SetVerbose(true)
			Debug("concurrent %d", i)
			IsVerbose()
			SetVerbose(false)
		}()
	}
	wg.Wait()
}
