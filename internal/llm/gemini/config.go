package gemini

import (
	"os"
	"time"
)

// Config for the Gemini client.
type Config struct {
	APIKey      string        // if empty, falls back to env GEMINI_API_KEY
	Models      []string      // ordered candidates, fastest/cheapest first
	Temperature float32       // near-deterministic by default
	Timeout     time.Duration // per-model call timeout
}

func (c *Config) applyDefaults() {
	if c.APIKey == "" {
		c.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if len(c.Models) == 0 {
		c.Models = []string{
			"gemini-2.5-flash-lite",
			"gemini-2.5-flash",
			"gemini-2.5-pro",
		}
	}
	if c.Temperature <= 0 {
		c.Temperature = 0.1
	}
	if c.Timeout <= 0 {
		c.Timeout = 60 * time.Second
	}
}
