package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Format: "json", Level: "info", Output: &buf})
	require.NoError(t, err)

	logger.WithField("begin", "TON").Info("searching")
	logger.Debug("hidden")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "searching", entry["msg"])
	assert.Equal(t, "TON", entry["begin"])
	assert.Equal(t, "info", entry["level"])
}

func TestNew_Invalid(t *testing.T) {
	_, err := New(Config{Format: "text", Level: "loud"})
	require.Error(t, err)
	_, err = New(Config{Format: "xml", Level: "info"})
	require.Error(t, err)
}

func TestNew_Level(t *testing.T) {
	logger, err := New(Config{Format: "text", Level: "WARN"})
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	hook := test.NewLocal(logger)
	logger.Error("dropped output, recorded entry")
	require.Len(t, hook.Entries, 1)
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}
