package logger

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

// TestNew_LevelAndOutput checks the default level filters debug lines.
func TestNew_LevelAndOutput(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)

	l.Debug("hidden")
	assert.Empty(t, buf.String())

	l.WithField("size", 10).Warn("visible")
	assert.Contains(t, buf.String(), "visible")
	assert.Contains(t, buf.String(), "size")
}

// TestSetVerbose toggles the shared logger level.
func TestSetVerbose(t *testing.T) {
	t.Cleanup(func() { SetVerbose(false) })

	SetVerbose(true)
	assert.Equal(t, logrus.DebugLevel, L.GetLevel())
	SetVerbose(false)
	assert.Equal(t, logrus.WarnLevel, L.GetLevel())
}
