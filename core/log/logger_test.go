// File: logger_test.go
// Title: Logger Tests
// Description: Tests for level filtering, formatters, persistent fields and
//              error logging.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-14

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	mdwerror "github.com/msto63/textx/core/error"
)

func newBufferLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewWithConfig(Config{Level: level, Format: format, Output: buf}), buf
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", LevelDebug, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"fatal", LevelFatal, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v; want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, FormatConsole)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")
	logger.Error("also shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("output contains filtered messages: %q", out)
	}
	if !strings.Contains(out, "WRN shown") || !strings.Contains(out, "ERR also shown") {
		t.Errorf("output missing messages: %q", out)
	}
}

func TestJSONFormatter(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatJSON)
	logger.WithName("textx").WithField("command", "between").Debug("extracting", Int("subject_len", 42))

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if decoded["message"] != "extracting" || decoded["level"] != "debug" || decoded["logger"] != "textx" {
		t.Errorf("unexpected entry: %v", decoded)
	}
	if decoded["command"] != "between" {
		t.Errorf("command = %v, want between", decoded["command"])
	}
	if decoded["subject_len"] != float64(42) {
		t.Errorf("subject_len = %v, want 42", decoded["subject_len"])
	}
}

func TestTextFormatterIsSorted(t *testing.T) {
	f := &TextFormatter{TimestampFormat: time.RFC3339}
	entry := NewEntry(LevelInfo, "loaded config")
	entry.Timestamp = time.Date(2025, 8, 14, 10, 0, 0, 0, time.UTC)
	entry.Fields = Fields{"path": "textx.toml", "format": "toml", "keys": 3}

	out, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	want := `time=2025-08-14T10:00:00Z level=info msg="loaded config" format=toml keys=3 path=textx.toml` + "\n"
	if string(out) != want {
		t.Errorf("Format() = %q; want %q", out, want)
	}
}

func TestWithFieldDoesNotMutateParent(t *testing.T) {
	parent, buf := newBufferLogger(LevelInfo, FormatText)
	child := parent.WithField("child", true)

	parent.Info("from parent")
	if strings.Contains(buf.String(), "child=") {
		t.Errorf("parent logged child field: %q", buf.String())
	}

	buf.Reset()
	child.Info("from child")
	if !strings.Contains(buf.String(), "child=true") {
		t.Errorf("child field missing: %q", buf.String())
	}
}

func TestLogError(t *testing.T) {
	t.Run("low severity logs a warning", func(t *testing.T) {
		logger, buf := newBufferLogger(LevelInfo, FormatText)
		err := mdwerror.New("stringx.SubstringLength: length cannot be negative, got -1").
			WithCode(mdwerror.CodeNegativeLength).
			WithOperation("stringx.SubstringLength")

		logger.LogError(err)
		out := buf.String()
		if !strings.Contains(out, "level=warn") {
			t.Errorf("expected warn level: %q", out)
		}
		if !strings.Contains(out, "error_code=NEGATIVE_LENGTH") {
			t.Errorf("expected error code: %q", out)
		}
		if !strings.Contains(out, "operation=stringx.SubstringLength") {
			t.Errorf("expected operation: %q", out)
		}
	})

	t.Run("plain error logs at error level", func(t *testing.T) {
		logger, buf := newBufferLogger(LevelInfo, FormatText)
		logger.LogError(errors.New("boom"))
		if !strings.Contains(buf.String(), "level=error") {
			t.Errorf("expected error level: %q", buf.String())
		}
	})

	t.Run("nil is ignored", func(t *testing.T) {
		logger, buf := newBufferLogger(LevelTrace, FormatText)
		logger.LogError(nil)
		if buf.Len() != 0 {
			t.Errorf("expected no output, got %q", buf.String())
		}
	})
}

func TestErrorWithErr(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatText)
	logger.ErrorWithErr("failed to write result", errors.New("broken pipe"), String("command", "between"))

	out := buf.String()
	for _, want := range []string{"level=error", `msg="failed to write result"`, `error="broken pipe"`, "command=between"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %s", out, want)
		}
	}
}

func TestWithFormat(t *testing.T) {
	text, buf := newBufferLogger(LevelInfo, FormatText)
	jsonLogger := text.WithFormat(FormatJSON)

	text.Info("as text")
	if strings.HasPrefix(buf.String(), "{") {
		t.Errorf("parent switched format: %q", buf.String())
	}

	buf.Reset()
	jsonLogger.Info("as json")
	if !strings.HasPrefix(buf.String(), "{") || !strings.Contains(buf.String(), `"message":"as json"`) {
		t.Errorf("expected a JSON entry, got %q", buf.String())
	}
}

func TestTimer(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatConsole)
	elapsed := logger.StartTimer("between").Stop()

	if elapsed < 0 {
		t.Errorf("elapsed = %v, want >= 0", elapsed)
	}
	if !strings.Contains(buf.String(), "operation=between") {
		t.Errorf("timer output missing operation: %q", buf.String())
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	if logger.IsLevelEnabled(LevelFatal) {
		t.Error("Discard() logger should not enable any level")
	}
	logger.Error("nothing")
}

func TestDefaultLogger(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	logger, buf := newBufferLogger(LevelDebug, FormatConsole)
	SetDefault(logger)
	Debug("via default")

	if !strings.Contains(buf.String(), "DBG via default") {
		t.Errorf("default logger not used: %q", buf.String())
	}
}
