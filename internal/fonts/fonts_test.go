package fonts

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		p := filepath.Join(dir, filepath.FromSlash(n))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "Inter/Inter-Bold.ttf", "Inter/README.md", "Mono.OTF")
	got, err := ScanDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != "Inter/Inter-Bold.ttf" || got[1] != "Mono.OTF" {
		t.Fatalf("ScanDir = %v", got)
	}
	if got, err := ScanDir(filepath.Join(dir, "missing")); err != nil || len(got) != 0 {
		t.Fatalf("missing dir = %v, %v", got, err)
	}
}

func TestFindPrefersRegular(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "Google_Sans/GoogleSans-Bold.ttf", "Google_Sans/GoogleSans-Regular.ttf")
	got, err := Find("Google Sans", dir)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(got) != "GoogleSans-Regular.ttf" {
		t.Fatalf("Find = %s", got)
	}
}

func TestFindMissing(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "Inter/Inter-Regular.ttf")
	if _, err := Find("Roboto", dir); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v", err)
	}
	if _, err := Find("  ", dir); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("blank search err = %v", err)
	}
}
