package ratelimit

import (
	"strings"

	"golang.org/x/time/rate"
)

// EndpointConfig overrides the default limit for one endpoint.
type EndpointConfig struct {
	Path   string     // Exact path, or a prefix when it ends with "/"
	Method string     // HTTP method (GET, POST, etc.)
	Rate   rate.Limit // Requests per second; rate.Inf means unlimited
	Burst  int        // Bucket capacity
}

// DefaultEndpointConfigs returns the per-endpoint limits derived from the
// default per-client rate. Full pipeline runs cost a multiple of a single
// stage, so they get a fifth of the rate and a small burst.
func DefaultEndpointConfigs(base rate.Limit, burst int) []EndpointConfig {
	runBurst := burst / 5
	if runBurst < 1 {
		runBurst = 1
	}
	return []EndpointConfig{
		{Path: "/run", Method: "POST", Rate: base / 5, Burst: runBurst},
		{Path: "/run/stream", Method: "POST", Rate: base / 5, Burst: runBurst},
		{Path: "/health", Method: "GET", Rate: rate.Inf},
	}
}

// MatchEndpoint matches a request path and method to an endpoint configuration.
// Returns the matching EndpointConfig or nil if no match is found.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	// Try exact match first
	for i := range configs {
		config := &configs[i]
		if config.Path == path && config.Method == method {
			return config
		}
	}

	// Try prefix match (for paths ending with "/")
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
