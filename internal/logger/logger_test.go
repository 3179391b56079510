package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithOptions_FileReceivesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ksa.log")

	log, err := NewWithOptions(Options{Mode: "prod", File: path})
	require.NoError(t, err)

	log.With("session", "abc").Info("assessment started", "sector", "Cloud Computing")
	log.Debug("dropped at info level")
	log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `"msg":"assessment started"`)
	assert.Contains(t, out, `"sector":"Cloud Computing"`)
	assert.Contains(t, out, `"session":"abc"`)
	assert.False(t, strings.Contains(out, "dropped at info level"))
}

func TestNewWithOptions_NoSinkIsNop(t *testing.T) {
	log, err := NewWithOptions(Options{Mode: "dev"})
	require.NoError(t, err)
	assert.NotPanics(t, func() {
		log.Warn("nowhere", "k", 1)
		log.Sync()
	})
}

func TestIsProd(t *testing.T) {
	assert.True(t, isProd("prod"))
	assert.True(t, isProd("Production"))
	assert.False(t, isProd("dev"))
	assert.False(t, isProd(""))
}
