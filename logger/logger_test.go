package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelInfo, "leaf")
	l.Debug("hidden")
	l.Info("shown %d", 1)
	l.WithPrefix("mask").Warn("careful")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line written at info level: %q", out)
	}
	if !strings.Contains(out, "INFO [leaf] shown 1") {
		t.Errorf("missing info line: %q", out)
	}
	if !strings.Contains(out, "WARN [leaf/mask] careful") {
		t.Errorf("missing prefixed warn line: %q", out)
	}
}

func TestNilLogger(t *testing.T) {
	var l *Logger
	l.Info("nothing")
	l.WithPrefix("x").Error("nothing")
	l.Step("nothing")()
}
