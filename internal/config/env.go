package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads .env style files into the process environment. Files that
// do not exist are skipped; variables already set are not overridden.
func LoadEnv(files ...string) error {
	for _, f := range files {
		if f == "" {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return err
		}
	}
	return nil
}

// ApplyEnv overlays every BIZSIM_* variable that is set. It returns the keys
// that were applied.
func (c *Config) ApplyEnv() ([]string, error) {
	return c.applyLookup(os.LookupEnv)
}

func (c *Config) applyLookup(lookup func(string) (string, bool)) ([]string, error) {
	var applied []string
	for _, f := range fields {
		raw, ok := lookup(f.Env)
		if !ok {
			continue
		}
		if err := c.Set(f.Key, raw); err != nil {
			return applied, err
		}
		applied = append(applied, f.Key)
	}
	return applied, nil
}
