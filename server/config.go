package server

import (
	"fmt"

	"github.com/joeshaw/envdecode"
)

// Config holds the server's environment configuration
type Config struct {
	Port int `env:"PORT,default=8000"`
}

// LoadConfig reads configuration from the environment
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("could not load config: %v", err)
	}
	return cfg, nil
}

// Addr returns the listen address
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
