package logging

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/fsnav/pkg/fsnav"
)

var (
	_ fsnav.Logger = (*ConsoleLogger)(nil)
	_ fsnav.Logger = (*NullLogger)(nil)
)

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestConsoleLogger_Verbose_WhenEnabled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(&buf, true)

	logger.Verbose("test message: %s", "value")

	assert.Contains(t, buf.String(), "DBG")
	assert.Contains(t, buf.String(), "test message: value")
	assert.True(t, logger.IsVerbose())
}

func TestConsoleLogger_Verbose_WhenDisabled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(&buf, false)

	logger.Verbose("should not appear")

	assert.Empty(t, buf.String())
	assert.False(t, logger.IsVerbose())
}

func TestConsoleLogger_Levels(t *testing.T) {
	tests := []struct {
		name  string
		log   func(l *ConsoleLogger)
		level string
		text  string
	}{
		{"info", func(l *ConsoleLogger) { l.Info("loaded %d paths", 3) }, "INF", "loaded 3 paths"},
		{"warn", func(l *ConsoleLogger) { l.Warn("slow directory %s", "/tmp") }, "WRN", "slow directory /tmp"},
		{"error", func(l *ConsoleLogger) { l.Error("failed: %v", "boom") }, "ERR", "failed: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(NewConsoleLoggerTo(&buf, false))

			assert.Contains(t, buf.String(), tt.level)
			assert.Contains(t, buf.String(), tt.text)
		})
	}
}

func TestConsoleLogger_NoArgsKeepsPercentLiteral(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(&buf, false)

	logger.Info("/data/100%done")

	assert.Contains(t, buf.String(), "/data/100%done")
	assert.NotContains(t, buf.String(), "%!")
}

func TestConsoleLogger_With(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(&buf, true).With("session", "abc123")

	logger.Verbose("changed directory")

	assert.Contains(t, buf.String(), "session=abc123")
	assert.Contains(t, buf.String(), "changed directory")
	assert.True(t, logger.IsVerbose())
}

func TestConsoleLogger_ConcurrentSafety(t *testing.T) {
	buf := &lockedBuffer{}
	logger := NewConsoleLoggerTo(buf, true)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			logger.Verbose("verbose %d", n)
			logger.Info("info %d", n)
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 40)
}

func TestNullLogger_DiscardsAllMessages(t *testing.T) {
	logger := NewNullLogger()

	assert.NotPanics(t, func() {
		logger.Verbose("verbose %s", "x")
		logger.Info("info")
		logger.Warn("warn")
		logger.Error("error %d", 1)
	})
}
