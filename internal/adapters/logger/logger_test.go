package logger_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rapidsai/rapids-build-backend/internal/adapters/logger"
)

func TestLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithOutput(&buf)

	log.Info("resolving configuration")

	out := buf.String()
	if !strings.Contains(out, "level=INFO") {
		t.Errorf("expected INFO level in output, got: %s", out)
	}
	if !strings.Contains(out, "resolving configuration") {
		t.Errorf("expected message in output, got: %s", out)
	}
}

func TestLogger_Warn(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithOutput(&buf)

	log.Warn("git not found")

	if !strings.Contains(buf.String(), "level=WARN") {
		t.Errorf("expected WARN level in output, got: %s", buf.String())
	}
}

func TestLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithOutput(&buf)

	log.Error(errors.New("backend exploded"))

	out := buf.String()
	if !strings.Contains(out, "level=ERROR") {
		t.Errorf("expected ERROR level in output, got: %s", out)
	}
	if !strings.Contains(out, "backend exploded") {
		t.Errorf("expected error text in output, got: %s", out)
	}
}
