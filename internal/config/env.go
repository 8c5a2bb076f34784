package config

import (
	"os"

	"github.com/joho/godotenv"
)

// envFiles are tried in order; a later file never overrides a key set by an
// earlier one or by the process environment.
var envFiles = []string{".env", ".env.local"}

// LoadEnv loads .env files from the working directory and returns the ones applied.
func LoadEnv() ([]string, error) {
	var loaded []string
	for _, name := range envFiles {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			return loaded, err
		}
		loaded = append(loaded, name)
	}
	return loaded, nil
}
