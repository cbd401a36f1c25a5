package logger

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("", "loud")
	require.Error(t, err)
}

func TestNew_WritesToFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "app.log")

	log, err := New(file, "debug")
	require.NoError(t, err)
	log.Info("hello %s", "file")
	require.NoError(t, log.Close())

	assert.FileExists(t, file)
}

func TestLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, logrus.WarnLevel)

	log.Info("skipped %d", 1)
	log.Warn("kept %d", 2)
	log.Error("kept %d", 3)

	out := buf.String()
	assert.NotContains(t, out, "skipped 1")
	assert.Contains(t, out, "kept 2")
	assert.Contains(t, out, "kept 3")
	assert.NoError(t, log.Close())
}
