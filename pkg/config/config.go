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
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
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
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// DBCreds holds the PostgreSQL connection settings. URL, when set, wins over
// the individual fields.
type DBCreds struct {
	URL      string `yaml:"url"`
	Host     string `yaml:"host" validate:"required_without=URL"`
	Port     string `yaml:"port" validate:"omitempty,numeric"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Database string `yaml:"database" validate:"required_without=URL"`
}

type Config struct {
	DBCreds DBCreds `yaml:"db_creds" validate:"-"`
	Server  struct {
		Port int `yaml:"port" validate:"min=1,max=65535"`
	} `yaml:"server"`
	Log struct {
		Level  string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
		Pretty bool   `yaml:"pretty"`
	} `yaml:"log"`
	Batch struct {
		Workers int `yaml:"workers" validate:"min=1,max=256"`
	} `yaml:"batch"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.Server.Port = 8080
	cfg.Log.Level = "info"
	cfg.Batch.Workers = 10
	return cfg
}

// LoadConfig loads the configuration from a YAML file, then applies
// environment overrides (a .env file in the working directory is read first).
// An empty configPath skips the file and starts from Default.
func LoadConfig(configPath string) (*Config, error) {
	config := Default()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("unable to unmarshal config file: %w", err)
		}
	}

	// a missing .env is not an error
	_ = godotenv.Load()
	if err := applyEnv(config); err != nil {
		return nil, err
	}

	return config, nil
}

func applyEnv(config *Config) error {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		config.DBCreds.URL = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		config.Log.Level = v
	}
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		config.Server.Port = port
	}
	if v := os.Getenv("BATCH_WORKERS"); v != "" {
		workers, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid BATCH_WORKERS %q: %w", v, err)
		}
		config.Batch.Workers = workers
	}
	return nil
}

var validate = validator.New()

// Validate checks the server, log and batch settings. Database settings are
// only required by commands that connect, see ValidateDB.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// ValidateDB checks that enough is set to open a database connection.
func (c *Config) ValidateDB() error {
	if err := validate.Struct(c.DBCreds); err != nil {
		return fmt.Errorf("invalid db_creds: %w", err)
	}
	return nil
}

// HasDB reports whether any database setting is present.
func (c *Config) HasDB() bool {
	return c.DBCreds.URL != "" || c.DBCreds.Host != ""
}
