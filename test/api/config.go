/*
Copyright 2025 the Unikorn Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// FakeEmail and FakePassword are registered with the fake service.
	FakeEmail    = "tux@petfriends.test"
	FakePassword = "penguin-4ever"

	defaultInvalidEmail    = "nobody@petfriends.test"
	defaultInvalidPassword = "definitely-not-the-password"
	defaultInvalidAuthKey  = "ea738148a1f19838e1c5d1413877f3691a3731380e733e877b0ae729"
)

var (
	// ErrInvalidConfig is returned when required configuration is missing.
	ErrInvalidConfig = errors.New("invalid test configuration")
)

type TestConfig struct {
	// BaseURL is the service under test, empty runs the fake service.
	BaseURL         string
	ValidEmail      string
	ValidPassword   string
	InvalidEmail    string
	InvalidPassword string
	InvalidAuthKey  string
	ImagesDir       string
	RequestTimeout  time.Duration
	LogRequests     bool
	LogResponses    bool
}

// UseFakeServer reports whether the suites should start the fake service.
func (c *TestConfig) UseFakeServer() bool {
	return c.BaseURL == ""
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Returns an error if required configuration values are missing.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	config := &TestConfig{
		BaseURL:         os.Getenv("API_BASE_URL"),
		ValidEmail:      os.Getenv("TEST_VALID_EMAIL"),
		ValidPassword:   os.Getenv("TEST_VALID_PASSWORD"),
		InvalidEmail:    getWithDefault("TEST_INVALID_EMAIL", defaultInvalidEmail),
		InvalidPassword: getWithDefault("TEST_INVALID_PASSWORD", defaultInvalidPassword),
		InvalidAuthKey:  getWithDefault("TEST_INVALID_AUTH_KEY", defaultInvalidAuthKey),
		ImagesDir:       getWithDefault("TEST_IMAGES_DIR", defaultImagesDir()),
		RequestTimeout:  getDurationWithDefault("REQUEST_TIMEOUT", 30*time.Second),
		LogRequests:     getBoolWithDefault("LOG_REQUESTS", false),
		LogResponses:    getBoolWithDefault("LOG_RESPONSES", false),
	}

	if config.UseFakeServer() {
		if config.ValidEmail == "" {
			config.ValidEmail = FakeEmail
		}

		if config.ValidPassword == "" {
			config.ValidPassword = FakePassword
		}
	}

	if err := validateRequiredFields(config); err != nil {
		return nil, err
	}

	return config, nil
}

func getWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// getDurationWithDefault gets a duration from environment variable or returns default.
func getDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}

// getBoolWithDefault gets a boolean from environment variable or returns default.
func getBoolWithDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}

// moduleTestDir is the test/ directory of this module, wherever the tests
// are run from.
func moduleTestDir() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return "."
	}

	return filepath.Dir(filepath.Dir(file))
}

func defaultImagesDir() string {
	return filepath.Join(moduleTestDir(), "api", "testdata", "images")
}

func loadEnvFile() {
	envPath := filepath.Join(moduleTestDir(), ".env")

	if _, err := os.Stat(envPath); err != nil {
		// .env file not found - this is OK in CI/CD where env vars are set directly
		return
	}

	// Variables already in the environment win.
	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}

// validateRequiredFields checks that all required configuration values are set.
func validateRequiredFields(config *TestConfig) error {
	var missing []string

	required := map[string]string{
		"TEST_VALID_EMAIL":    config.ValidEmail,
		"TEST_VALID_PASSWORD": config.ValidPassword,
	}

	for envVar, value := range required {
		if value == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		slices.Sort(missing)

		return fmt.Errorf("%w: missing %s. Please set these environment variables or add them to test/.env", ErrInvalidConfig, strings.Join(missing, ", "))
	}

	if config.RequestTimeout <= 0 {
		return fmt.Errorf("%w: REQUEST_TIMEOUT must be positive", ErrInvalidConfig)
	}

	return nil
}
