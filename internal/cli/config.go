package cli

import (
	"fmt"
	"os"
)

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string
	Output    string
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("GRIDGAMES_SERVER", "http://localhost:8080"),
		Output:    OutputText,
	}
}

// Validate checks the flags
func (c *Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON:
		return nil
	default:
		return fmt.Errorf("unknown output format %q: use text or json", c.Output)
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
