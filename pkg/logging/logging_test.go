package logging

import (
	"bytes"
	"testing"

	"cloud.google.com/go/logging"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestLevelToSeverity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level    zerolog.Level
		severity logging.Severity
	}{
		{zerolog.DebugLevel, logging.Debug},
		{zerolog.InfoLevel, logging.Info},
		{zerolog.WarnLevel, logging.Warning},
		{zerolog.ErrorLevel, logging.Error},
		{zerolog.FatalLevel, logging.Alert},
		{zerolog.PanicLevel, logging.Emergency},
		{zerolog.TraceLevel, logging.Info},
	}
	for _, tc := range tests {
		require.Equal(t, tc.severity, levelToSeverity(tc.level), tc.level.String())
	}
}

func TestSeverityHook(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := zerolog.New(&buf).Hook(googleSeverityHook{})
	l.Warn().Msg("pool is full")
	require.Contains(t, buf.String(), `"severity":"Warning"`)
}
