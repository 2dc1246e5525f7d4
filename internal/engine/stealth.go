package engine

import stealth "github.com/anatolykoptev/go-stealth"

// RandomUserAgent re-exports the stealth User-Agent rotation for engine consumers.
func RandomUserAgent() string { return stealth.RandomUserAgent() }
