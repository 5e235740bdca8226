package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesToFileAndOutput(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "logs", "demo.log")
	l, err := New(Options{Level: "warn", File: path, Output: &buf})
	if err != nil {
		t.Fatal(err)
	}
	l.Info("hidden")
	l.Warn("camera reset", "x", 8)
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for name, got := range map[string]string{"file": string(data), "output": buf.String()} {
		if strings.Contains(got, "hidden") {
			t.Errorf("%s contains a message below the level", name)
		}
		if !strings.Contains(got, "camera reset") || !strings.Contains(got, "x=8") {
			t.Errorf("%s = %q, want the warning", name, got)
		}
	}
}

func TestNewRejectsBadLevel(t *testing.T) {
	if _, err := New(Options{Level: "loud"}); err == nil {
		t.Fatal("expected an error for an unknown level")
	}
}

func TestCloseWithoutFile(t *testing.T) {
	l, err := New(Options{Output: &bytes.Buffer{}})
	if err != nil {
		t.Fatal(err)
	}
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}
}
