package env

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"slices"

	"github.com/joho/godotenv"
)

// Load reads KEY=VALUE lines from path (e.g. ".env") into the process environment and returns
// the keys it set, sorted. Variables already present in the environment win over the file, so
// `DEMO_LOG_LEVEL=debug ./demo` still overrides a .env entry. A missing file is not an error.
func Load(path string) ([]string, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var set []string
	for _, key := range slices.Sorted(maps.Keys(vars)) {
		if _, exists := os.LookupEnv(key); exists {
			continue
		}
		if err := os.Setenv(key, vars[key]); err != nil {
			return set, fmt.Errorf("%s: %s: %w", path, key, err)
		}
		set = append(set, key)
	}
	return set, nil
}
