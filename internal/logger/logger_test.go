package logger

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLogOutputFile(t *testing.T) {
	os.Remove(LogFilePath)
	SetLogOutput('f')
	defer SetLogOutput('c')

	Info("file output selected")

	data, err := os.ReadFile(LogFilePath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "file output selected")
}

func TestLevelFiltering(t *testing.T) {
	os.Remove(LogFilePath)
	SetLogOutput('f')
	defer func() {
		SetLogOutput('c')
		SetLevel(INFO)
	}()

	SetLevel(WARN)
	Info("below the threshold")
	Warn("at the threshold")

	data, err := os.ReadFile(LogFilePath)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "below the threshold")
	assert.Contains(t, string(data), "at the threshold")
}
