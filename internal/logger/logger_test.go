package logger

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	Init()
	assert.NotNil(t, InfoLogger)
	assert.NotNil(t, ErrorLogger)
	assert.NotNil(t, DebugLogger)
}

func TestInfo(t *testing.T) {
	var buf bytes.Buffer
	Init()
	InfoLogger = log.New(&buf, "INFO: ", 0)

	Info("test message")

	assert.Contains(t, buf.String(), "test message")
}

func TestInfoWithFields(t *testing.T) {
	var buf bytes.Buffer
	Init()
	InfoLogger = log.New(&buf, "INFO: ", 0)

	Info("booking made", "class_id", "c1", "enrolled", 5)

	output := buf.String()
	assert.Contains(t, output, "booking made")
	assert.Contains(t, output, "class_id=c1")
	assert.Contains(t, output, "enrolled=5")
}

func TestError(t *testing.T) {
	var buf bytes.Buffer
	Init()
	ErrorLogger = log.New(&buf, "ERROR: ", 0)

	Error("test error")

	assert.Contains(t, buf.String(), "test error")
}

func TestInfof(t *testing.T) {
	var buf bytes.Buffer
	Init()
	InfoLogger = log.New(&buf, "INFO: ", 0)

	Infof("loaded %d classes", 6)

	assert.Contains(t, buf.String(), "loaded 6 classes")
}

func TestErrorf(t *testing.T) {
	var buf bytes.Buffer
	Init()
	ErrorLogger = log.New(&buf, "ERROR: ", 0)

	Errorf("persist failed: %s", "timeout")

	assert.Contains(t, buf.String(), "persist failed: timeout")
}

func TestFormatKVOddPair(t *testing.T) {
	out := formatKV("msg", []interface{}{"key"})
	assert.Equal(t, "msg key=", out)
}
