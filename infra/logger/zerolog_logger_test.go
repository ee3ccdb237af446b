package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZerologLoggerMethods(t *testing.T) {
	var buf bytes.Buffer
	l := newZerolog("test", Options{Level: "debug", Format: "console", Out: &buf})
	l.Debugf("debug %d", 1)
	l.Debugw("debug", map[string]any{"k": 1})
	l.Infof("info %s", "test")
	l.Infow("info", map[string]any{"trial": 3})
	l.Warnf("warn")
	l.Errorf("error")
	assert.Equal(t, 6, strings.Count(buf.String(), "\n"))
}

func TestZerologLoggerJSONFields(t *testing.T) {
	var buf bytes.Buffer
	l := newZerolog("harness", Options{Level: "info", Format: "json", Out: &buf})
	l.Debugf("dropped")
	l.Infow("trial", map[string]any{"result": 12})

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "harness", rec["component"])
	assert.Equal(t, "trial", rec["message"])
	assert.EqualValues(t, 12, rec["result"])
}

func TestConfigure(t *testing.T) {
	defer func() { require.NoError(t, Configure(Options{Level: "info", Format: "json"})) }()
	assert.Error(t, Configure(Options{Level: "loud"}))
	assert.Error(t, Configure(Options{Format: "xml"}))
	var buf bytes.Buffer
	require.NoError(t, Configure(Options{Level: "error", Out: &buf}))
	l := New("cfg")
	l.Warnf("hidden")
	l.Errorf("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	NopLogger{}.Infow("nothing", nil)
}
