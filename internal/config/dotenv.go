// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// DotEnvVar names the environment variable that points at a .env file.
// When it is unset, "./.env" is loaded if present.
const DotEnvVar = "DOTENV"

const defaultDotEnvPath = ".env"

// loadDotEnv seeds the process environment from a .env file. Variables that
// are already set are left untouched. A missing default file is not an
// error; a missing explicitly named file is.
func loadDotEnv() error {
	path, explicit := os.LookupEnv(DotEnvVar)
	if !explicit || path == "" {
		path = defaultDotEnvPath
		explicit = false
	}

	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading dotenv file %q: %w", path, err)
	}

	return nil
}
