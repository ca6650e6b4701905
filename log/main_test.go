package log

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/netrixframework/evd/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithFieldsJSON(t *testing.T) {
	buf := new(bytes.Buffer)
	l := NewWriterLogger(buf, "json")
	l.With(LogParams{"distribution": "gumbel", "op": "cdf"}).Info("evaluated")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "evaluated", line["msg"])
	assert.Equal(t, "gumbel", line["distribution"])
	assert.Equal(t, "cdf", line["op"])
	assert.Equal(t, "info", line["level"])
}

func TestSetLevel(t *testing.T) {
	buf := new(bytes.Buffer)
	l := NewWriterLogger(buf, "json")
	l.Debug("hidden")
	assert.Zero(t, buf.Len())

	l.SetLevel("debug")
	l.Debug("shown")
	assert.Contains(t, buf.String(), "shown")

	l.SetLevel("not-a-level")
	buf.Reset()
	l.Debug("still shown")
	assert.Contains(t, buf.String(), "still shown")
}

func TestInitWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "evd.log")
	prev := DefaultLogger
	defer func() { DefaultLogger = prev }()

	Init(config.LogConfig{Path: path, Format: "json", Level: "warn"})
	Info("dropped")
	Warn("kept")
	Destroy()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "dropped")
	assert.Contains(t, string(b), "kept")
}
