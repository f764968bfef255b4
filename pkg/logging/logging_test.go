package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_RejectsBadConfig(t *testing.T) {
	_, err := New(&Config{Level: "loud", Format: "console"})
	assert.Error(t, err)

	_, err = New(&Config{Level: "info", Format: "xml"})
	assert.Error(t, err)
}

func TestNew_AcceptsKnownFormats(t *testing.T) {
	for _, format := range []string{"", "console", "json"} {
		l, err := New(&Config{Level: "debug", Format: format})
		require.NoError(t, err, format)
		assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
	}
}

func TestSetLogger_RoutesPackageHelpers(t *testing.T) {
	prev := Logger()
	defer SetLogger(prev)

	core, logs := observer.New(zapcore.InfoLevel)
	SetLogger(zap.New(core))

	Debug("hidden")
	Info("visible", zap.String("name", "Ann"))
	Warn("careful")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "visible", entries[0].Message)
	assert.Equal(t, "Ann", entries[0].ContextMap()["name"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
}
