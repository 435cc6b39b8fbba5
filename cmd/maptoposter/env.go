package main

import (
	"errors"
	iofs "io/fs"

	"github.com/joho/godotenv"
)

// LoadEnv loads KEY=value pairs from path into the process environment.
// Variables that are already set win. A missing file is not an error.
func LoadEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, iofs.ErrNotExist) {
		return nil
	}
	return err
}
