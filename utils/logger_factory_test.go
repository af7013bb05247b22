package utils_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brickster241/repoversion/utils"
)

func TestLoggerFactoryCreateLogger(t *testing.T) {
	testCases := []struct {
		name        string
		level       utils.LogLevel
		format      utils.LogFormat
		expectError bool
	}{
		{"debug_structured", utils.LogLevelDebug, utils.LogFormatStructured, false},
		{"info_console", utils.LogLevelInfo, utils.LogFormatConsole, false},
		{"warn_structured", utils.LogLevelWarn, utils.LogFormatStructured, false},
		{"error_console", utils.LogLevelError, utils.LogFormatConsole, false},
		{"unsupported_level", utils.LogLevel("verbose"), utils.LogFormatConsole, true},
		{"unsupported_format", utils.LogLevelInfo, utils.LogFormat("xml"), true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			logger, err := utils.NewLoggerFactory().CreateLogger(tc.level, tc.format)
			if tc.expectError {
				require.Error(t, err)
				require.Nil(t, logger)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, logger)
			require.Equal(t, string(tc.level), logger.Level().String())
		})
	}
}
