package logger_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/NeuralTrust/TrustDrift/pkg/infra/logger"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, logger.ParseLevel("debug"))
	assert.Equal(t, logrus.WarnLevel, logger.ParseLevel(" warn "))
	assert.Equal(t, logrus.InfoLevel, logger.ParseLevel(""))
	assert.Equal(t, logrus.InfoLevel, logger.ParseLevel("loud"))
}

func TestAsyncFileWriter_CloseDrains(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api.log")
	w, err := logger.NewAsyncFileWriter(path, 1024)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		n, err := w.Write([]byte("line\n"))
		require.NoError(t, err)
		assert.Equal(t, 5, n)
	}
	w.Close()
	w.Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 10, bytes.Count(data, []byte("line\n")))
	assert.Zero(t, w.Dropped())
}

func TestConsoleHook(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&bytes.Buffer{})
	l.SetFormatter(&logrus.JSONFormatter{})
	l.AddHook(logger.NewConsoleHook(&buf))

	l.WithField("run_id", "run_1").Info("done")

	assert.Contains(t, buf.String(), `"run_id":"run_1"`)
}
