package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		input    string
		expected slog.Level
		wantErr  bool
	}{
		{name: "empty", input: "", expected: slog.LevelInfo},
		{name: "debug", input: "debug", expected: slog.LevelDebug},
		{name: "upper", input: "WARN", expected: slog.LevelWarn},
		{name: "offset", input: "error+1", expected: slog.LevelError + 1},
		{name: "unknown", input: "loud", wantErr: true},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			level, err := ParseLevel(testCase.input)
			if testCase.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, testCase.expected, level)
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()
	var text bytes.Buffer
	logger, err := New(&text, "info", FormatText)
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Info("parse finish", "uri", "/a.ts")
	require.NotContains(t, text.String(), "hidden")
	require.Contains(t, text.String(), "uri=/a.ts")

	var js bytes.Buffer
	logger, err = New(&js, "debug", FormatJSON)
	require.NoError(t, err)
	logger.Debug("parse start", "rollbacks", 2)
	var record map[string]any
	require.NoError(t, json.Unmarshal(js.Bytes(), &record))
	require.Equal(t, "parse start", record["msg"])
	require.Equal(t, 2.0, record["rollbacks"])

	_, err = New(&js, "info", "xml")
	require.Error(t, err)
}
