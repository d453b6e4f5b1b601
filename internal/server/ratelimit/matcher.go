package ratelimit

import (
	"strings"
)

// MatchEndpoint resolves a request path and method to its endpoint tier.
// Exact matches win over prefix matches; a config path ending in "/" acts
// as a prefix, so "/generate/" covers every generation route. Returns nil
// when no tier applies, which means the default limit is used.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	// Health probes are never throttled.
	if path == "/health" && method == "GET" {
		return &EndpointConfig{
			Limit:  0,
			Window: 0,
			Burst:  0,
		}
	}

	for i := range configs {
		config := &configs[i]
		if config.Path == path && config.Method == method {
			return config
		}
	}

	for i := range configs {
		config := &configs[i]
		if config.Method == method && strings.HasSuffix(config.Path, "/") {
			if strings.HasPrefix(path, config.Path) {
				return config
			}
		}
	}

	return nil
}
