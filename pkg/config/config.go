// --------------------------------------------------------------------------------
// Author: Thomas F McGeehan V
//
// This file is part of a software project developed by Thomas F McGeehan V.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING WITHOUT LIMITATION THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// For more information about the MIT License, please visit:
// https://opensource.org/licenses/MIT
//
// Acknowledgment appreciated but not required.
// --------------------------------------------------------------------------------

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// DefaultPath is used when CONFIG_PATH is not set.
const DefaultPath = "config.yaml"

type Config struct {
	DBCreds   DBCreds         `yaml:"db_creds"`
	Server    ServerConfig    `yaml:"server"`
	Recommend RecommendConfig `yaml:"recommend"`
	Text      TextConfig      `yaml:"text"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type DBCreds struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

type ServerConfig struct {
	Address         string `yaml:"address"`
	FrontendURL     string `yaml:"frontend_url"`
	ReadTimeoutSec  int    `yaml:"read_timeout_sec"`
	WriteTimeoutSec int    `yaml:"write_timeout_sec"`
	ShutdownSec     int    `yaml:"shutdown_timeout_sec"`
}

// RecommendConfig bounds the content-based endpoint.
type RecommendConfig struct {
	DefaultTopN    int `yaml:"default_top_n"`
	MaxTopN        int `yaml:"max_top_n"`
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// TextConfig points at an optional stop-word file; empty means the built-in English list.
type TextConfig struct {
	StopWordsPath string `yaml:"stop_words_path"`
}

type LoggingConfig struct {
	Env   string `yaml:"env"`   // prod, dev, local
	Level string `yaml:"level"` // debug, info, warn, error
}

// LoadConfig loads the configuration from a YAML file.
// ${VAR} references are expanded from the environment before parsing.
func LoadConfig(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &config); err != nil {
		return nil, fmt.Errorf("unable to unmarshal config file: %w", err)
	}

	config.ApplyDefaults()
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Load reads an optional .env file and then the config file named by
// CONFIG_PATH, falling back to DefaultPath.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("unable to load .env file: %w", err)
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultPath
	}
	return LoadConfig(configPath)
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.DBCreds.Port == "" {
		c.DBCreds.Port = "5432"
	}
	if c.Server.Address == "" {
		c.Server.Address = ":8080"
	}
	if c.Server.ReadTimeoutSec <= 0 {
		c.Server.ReadTimeoutSec = 10
	}
	if c.Server.WriteTimeoutSec <= 0 {
		c.Server.WriteTimeoutSec = 60
	}
	if c.Server.ShutdownSec <= 0 {
		c.Server.ShutdownSec = 10
	}
	if c.Recommend.DefaultTopN == 0 {
		c.Recommend.DefaultTopN = 5
	}
	if c.Recommend.MaxTopN == 0 {
		c.Recommend.MaxTopN = 100
	}
	if c.Recommend.TimeoutSeconds <= 0 {
		c.Recommend.TimeoutSeconds = 30
	}
	if c.Logging.Env == "" {
		c.Logging.Env = "prod"
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.DBCreds.Host == "" {
		return fmt.Errorf("db_creds.host is required")
	}
	if c.DBCreds.Database == "" {
		return fmt.Errorf("db_creds.database is required")
	}
	if c.Recommend.DefaultTopN < 0 {
		return fmt.Errorf("recommend.default_top_n must be positive, got %d", c.Recommend.DefaultTopN)
	}
	if c.Recommend.MaxTopN < 0 {
		return fmt.Errorf("recommend.max_top_n must be positive, got %d", c.Recommend.MaxTopN)
	}
	if c.Recommend.DefaultTopN > c.Recommend.MaxTopN {
		return fmt.Errorf("recommend.default_top_n (%d) exceeds recommend.max_top_n (%d)",
			c.Recommend.DefaultTopN, c.Recommend.MaxTopN)
	}
	switch c.Logging.Env {
	case "prod", "dev", "local":
	default:
		return fmt.Errorf("logging.env must be prod, dev or local, got %q", c.Logging.Env)
	}
	return nil
}
