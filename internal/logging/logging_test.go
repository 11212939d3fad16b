package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_OffByDefault(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := New("huepick", Options{Output: &buf})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer closer.Close()

	logger.Error("should not appear")
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestNew_WritesAtLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := New("huepick", Options{Level: "debug", Output: &buf})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer closer.Close()

	logger.Trace("too verbose")
	logger.Debug("palette applied", "role", "background")

	out := buf.String()
	if strings.Contains(out, "too verbose") {
		t.Errorf("trace line leaked at debug level: %q", out)
	}
	for _, want := range []string{"[DEBUG]", "huepick", "palette applied", "role=background"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got %q", want, out)
		}
	}
}

func TestNew_UnknownLevel(t *testing.T) {
	if _, _, err := New("huepick", Options{Level: "loud"}); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestForPicker_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "huepick.log")

	logger, closer, err := ForPicker("huepick", "info", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Info("session started")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "session started") {
		t.Errorf("log file missing message: %q", data)
	}
}

func TestForPicker_NoFileIsSilent(t *testing.T) {
	logger, closer, err := ForPicker("huepick", "trace", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer closer.Close()
	if logger.IsTrace() {
		t.Error("picker logger without a file should be a null logger")
	}
}

func TestContext_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := New("huepick", Options{Level: "info", Output: &buf})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer closer.Close()

	ctx := WithContext(context.Background(), logger)
	FromContext(ctx).Info("from context")

	if !strings.Contains(buf.String(), "from context") {
		t.Errorf("expected logger from context to write, got %q", buf.String())
	}
}

func TestFromContext_Missing(t *testing.T) {
	if FromContext(context.Background()) == nil {
		t.Fatal("expected a null logger, got nil")
	}
}
