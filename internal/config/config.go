// SPDX-FileCopyrightText: 2026 Bonial International GmbH
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"net/url"
	"os"

	"github.com/joho/godotenv"

	"github.com/bonial-oss/ransomstats/internal/datasource/ransomlive"
)

// Config holds settings read from the environment. Command-line flags
// take precedence over these values.
type Config struct {
	APIURL    string
	UserAgent string
	NoColor   bool
}

// Load reads a .env file from the working directory when one exists, then
// builds the configuration from the environment. Variables already set in
// the environment win over the .env file.
func Load(version string) *Config {
	_ = godotenv.Load()

	return &Config{
		APIURL:    getEnv("RANSOMSTATS_API_URL", ransomlive.DefaultBaseURL),
		UserAgent: getEnv("RANSOMSTATS_USER_AGENT", "ransomstats/"+version),
		NoColor:   os.Getenv("NO_COLOR") != "",
	}
}

// Validate checks that the API URL is an absolute http(s) URL.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil {
		return fmt.Errorf("invalid API URL %q: %w", c.APIURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid API URL %q: scheme must be http or https", c.APIURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid API URL %q: missing host", c.APIURL)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
