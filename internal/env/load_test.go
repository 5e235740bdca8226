package env

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := `# demo settings
DEMO_TEST_PLAIN=one
export DEMO_TEST_EXPORTED=two
DEMO_TEST_QUOTED="three four"

DEMO_TEST_KEEP=file # inline comment
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DEMO_TEST_KEEP", "env")
	for _, k := range []string{"DEMO_TEST_PLAIN", "DEMO_TEST_EXPORTED", "DEMO_TEST_QUOTED"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	set, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"DEMO_TEST_EXPORTED", "DEMO_TEST_PLAIN", "DEMO_TEST_QUOTED"}; !slices.Equal(set, want) {
		t.Fatalf("set = %v, want %v", set, want)
	}
	want := map[string]string{
		"DEMO_TEST_PLAIN":    "one",
		"DEMO_TEST_EXPORTED": "two",
		"DEMO_TEST_QUOTED":   "three four",
		"DEMO_TEST_KEEP":     "env",
	}
	for k, v := range want {
		if got := os.Getenv(k); got != v {
			t.Errorf("%s = %q, want %q", k, got, v)
		}
	}
}

func TestLoadMissing(t *testing.T) {
	set, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil || set != nil {
		t.Fatalf("Load(missing) = %v, %v", set, err)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("DEMO-TEST=1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for an invalid variable name")
	}
}
