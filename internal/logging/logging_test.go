package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedLogger() (*logrus.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := SetupLogging()
	logger.Out = buf
	return logger, buf
}

func lastLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)
	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &fields))
	return fields
}

func TestLogData_Context(t *testing.T) {
	assert.Nil(t, GetLogData(context.Background()))

	logData := NewLogData(SetupLogging())
	ctx := WithLogData(context.Background(), logData)
	assert.Same(t, logData, GetLogData(ctx))
}

func TestLogData_FieldsAndTimings(t *testing.T) {
	logger, buf := newBufferedLogger()
	logData := NewLogData(logger)

	logData.AddData("accountID", "abc")
	stop := logData.AddTiming("queryMs")
	stop()
	logData.Log().Info("done")

	fields := lastLine(t, buf)
	assert.Equal(t, "abc", fields["accountID"])
	assert.Contains(t, fields, "queryMs")
	assert.Equal(t, "info", fields["loglevel"])
}

func TestSetupLoggingWithLevel(t *testing.T) {
	logger, err := SetupLoggingWithLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logger.Level)

	_, err = SetupLoggingWithLevel("chatty")
	assert.Error(t, err)
}

func TestLoggingWrapper_Error(t *testing.T) {
	logger, buf := newBufferedLogger()
	handler := LoggingWrapper("Test", logger, func(w http.ResponseWriter, _ *http.Request, _ *LogData) error {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("bad")
	})

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/", nil))

	fields := lastLine(t, buf)
	assert.Equal(t, "Handler.Test.Error", fields["msg"])
	assert.Equal(t, "bad", fields["error"])
}

func TestLoggingWrapper_FreshLogDataPerRequest(t *testing.T) {
	logger, _ := newBufferedLogger()
	var seen []*LogData
	handler := LoggingWrapper("Test", logger, func(_ http.ResponseWriter, _ *http.Request, logData *LogData) error {
		seen = append(seen, logData)
		return nil
	})

	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Len(t, seen, 2)
	assert.NotSame(t, seen[0], seen[1])
}

func TestLogData_NilSafe(t *testing.T) {
	var logData *LogData

	assert.NotPanics(t, func() {
		logData.AddTiming("x")()
		logData.AddToExistingTiming("x")()
		logData.AddData("k", "v")
	})
}
