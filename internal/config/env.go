package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// envFiles are tried in order; the first one that exists is loaded.
var envFiles = []string{".env", ".env.local"}

// LoadEnvFiles loads KEY=VALUE pairs from the first .env file found in dir.
// A variable is only set when the process environment has no non-empty value
// for it. It returns the loaded file, or "" when none exists.
func LoadEnvFiles(dir string) (string, error) {
	for _, name := range envFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		values, err := godotenv.Read(path)
		if err != nil {
			return "", err
		}
		for key, value := range values {
			if os.Getenv(key) == "" { // do not override existing env
				if err := os.Setenv(key, value); err != nil {
					return "", err
				}
			}
		}
		return path, nil
	}
	return "", nil
}
