package engine

import (
	"net/http"
	"time"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	FetchTimeout          time.Duration
	MaxBodyBytes          int64    // cap on a single response body (0 = unlimited)
	MaxContentChars       int      // default output cap for tools (0 = no limit)
	MaxParallelFetches    int      // fetch_contents fan-out
	YouTubeCaptionsSource string   // "watch" (default) or "player"
	YouTubeLangs          []string // caption track preference, first match wins
	HTTPClient            *http.Client
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (sources).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	if c.FetchTimeout <= 0 {
		c.FetchTimeout = 30 * time.Second
	}
	if c.MaxParallelFetches <= 0 {
		c.MaxParallelFetches = 4
	}
	if len(c.YouTubeLangs) == 0 {
		c.YouTubeLangs = []string{"en"}
	}
	if c.HTTPClient == nil {
		c.HTTPClient = newFetchClient(c.FetchTimeout)
	}
	cfg = c
	Cfg = &cfg
}
