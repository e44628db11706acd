package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	RabbitMQ RabbitMQConfig `yaml:"rabbitmq"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

type RabbitMQConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	VHost    string `yaml:"vhost"`
}

// Enabled reports whether a broker is configured; event publishing is
// optional.
func (c RabbitMQConfig) Enabled() bool { return c.Host != "" }

// Load reads and validates the YAML config, filling in defaults for ports and
// vhost.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 3000
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.RabbitMQ.Enabled() {
		if cfg.RabbitMQ.Port == 0 {
			cfg.RabbitMQ.Port = 5672
		}
		if cfg.RabbitMQ.VHost == "" {
			cfg.RabbitMQ.VHost = "/"
		}
	}

	if cfg.Database.Host == "" {
		return nil, fmt.Errorf("invalid config: database.host is required")
	}
	if cfg.Database.Database == "" {
		return nil, fmt.Errorf("invalid config: database.database is required")
	}
	return cfg, nil
}
