/*
Copyright 2026 the Mistral Harness Authors.

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
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	// EnvAPIKey is the only variable live tests require. When it is unset
	// the suites skip rather than fail, so an unconfigured checkout is
	// distinguishable from a regression against the live API.
	EnvAPIKey = "MISTRAL_API_KEY"

	// EnvBaseURL overrides the API endpoint, e.g. for a staging gateway.
	EnvBaseURL = "MISTRAL_BASE_URL"

	// DefaultBaseURL is the documented default endpoint.
	DefaultBaseURL = "https://api.mistral.ai"

	// DefaultChatModel is a small, cheap model suitable for premise tests.
	DefaultChatModel = "mistral-small-latest"

	// DefaultEmbedModel is the embeddings model.
	DefaultEmbedModel = "mistral-embed"
)

// TestConfig is an immutable snapshot of the environment, taken once per spec
// setup. Nothing mutates it after load, so parallel suite procs each hold
// their own copy without coordination.
type TestConfig struct {
	BaseURL        string
	APIKey         string
	ChatModel      string
	EmbedModel     string
	RequestTimeout time.Duration
	LogRequests    bool
	LogResponses   bool
}

// LoadTestConfig loads configuration from environment variables and an
// optional .env file. A missing API key is not an error here; callers decide
// whether to skip.
func LoadTestConfig() *TestConfig {
	loadEnvFile()

	return &TestConfig{
		BaseURL:        getStringWithDefault(EnvBaseURL, DefaultBaseURL),
		APIKey:         os.Getenv(EnvAPIKey),
		ChatModel:      getStringWithDefault("MISTRAL_CHAT_MODEL", DefaultChatModel),
		EmbedModel:     getStringWithDefault("MISTRAL_EMBED_MODEL", DefaultEmbedModel),
		RequestTimeout: getDurationWithDefault("REQUEST_TIMEOUT", 60*time.Second),
		LogRequests:    getBoolWithDefault("LOG_REQUESTS", true),
		LogResponses:   getBoolWithDefault("LOG_RESPONSES", true),
	}
}

// HasAPIKey reports whether live API tests can run at all.
func (c *TestConfig) HasAPIKey() bool {
	return c.APIKey != ""
}

// SkipReason names the missing variable, for use in skip messages.
func SkipReason() string {
	return fmt.Sprintf("%s environment variable not set", EnvAPIKey)
}

func getStringWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	return value
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

func loadEnvFile() {
	envPaths := []string{
		"../../../.env", // From test/api/suites directory
		"../../.env",    // From test/api directory
		".env",
	}

	var envPath string

	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// .env file not found - this is OK in CI where env vars are set directly
		return
	}

	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}
