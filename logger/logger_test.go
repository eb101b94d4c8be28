package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "debug", Output: &buf})
	require.Equal(t, logrus.DebugLevel, log.GetLevel())

	log.WithField("file", "cv.pdf").Info("CV reviewed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "CV reviewed", entry["msg"])
	require.Equal(t, "cv.pdf", entry["file"])
	require.Equal(t, "info", entry["level"])
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Format: "text", Output: &buf})
	log.Info("hello")
	require.Contains(t, buf.String(), "msg=hello")
}

func TestParseLevel(t *testing.T) {
	testCases := map[string]logrus.Level{
		"debug":   logrus.DebugLevel,
		"DEBUG":   logrus.DebugLevel,
		"info":    logrus.InfoLevel,
		"warn":    logrus.WarnLevel,
		"warning": logrus.WarnLevel,
		"error":   logrus.ErrorLevel,
		"":        logrus.InfoLevel,
		"verbose": logrus.InfoLevel,
	}
	for in, want := range testCases {
		require.Equal(t, want, ParseLevel(in), in)
	}
}

func TestCorrelationID(t *testing.T) {
	ctx := context.Background()
	require.Empty(t, CorrelationID(ctx))

	id := NewCorrelationID()
	require.Len(t, id, 36)
	require.NotEqual(t, id, NewCorrelationID())

	ctx = WithCorrelationID(ctx, id)
	require.Equal(t, id, CorrelationID(ctx))

	var buf bytes.Buffer
	base := New(Config{Output: &buf})
	FromContext(ctx, base).Info("tagged")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, id, entry[CorrelationIDFieldKey])
}

func TestFromContextPrefersStoredLogger(t *testing.T) {
	var buf bytes.Buffer
	base := New(Config{Output: &buf})
	stored := base.WithField("route", "/api/review")

	ctx := WithLogger(context.Background(), stored)
	require.Equal(t, stored, FromContext(ctx, base))
	require.Equal(t, logrus.FieldLogger(base), FromContext(context.Background(), base))
}
