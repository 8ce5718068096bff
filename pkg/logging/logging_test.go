package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "warn")
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, l.GetLevel())

	l.Info("hidden")
	l.WithField("source", "ua").Warn("visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
	assert.Contains(t, out, "source=ua")
}

func TestNew_DefaultsToInfo(t *testing.T) {
	l, err := New(&bytes.Buffer{}, "")
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, l.GetLevel())
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "loud")
	require.Error(t, err)
}

func TestConsole_FallsBack(t *testing.T) {
	assert.Equal(t, logrus.InfoLevel, Console("loud").GetLevel())
	assert.Equal(t, logrus.DebugLevel, Console("debug").GetLevel())
}

func TestNop(t *testing.T) {
	entry := Nop()
	assert.False(t, entry.Logger.IsLevelEnabled(logrus.ErrorLevel))
}
