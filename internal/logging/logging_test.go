package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "dogruyaz.log")
	logger, closer, err := New("debug", "json", path, nil)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.WithField("category", "history").Debug("score saved")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), `"category":"history"`) {
		t.Fatalf("expected json field in log, got %s", data)
	}
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := New("warn", "text", "", &buf)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestNewRejectsBadInput(t *testing.T) {
	if _, _, err := New("loud", "", "", nil); err == nil {
		t.Fatalf("expected error for bad level")
	}
	if _, _, err := New("info", "xml", "", nil); err == nil {
		t.Fatalf("expected error for bad format")
	}
}
