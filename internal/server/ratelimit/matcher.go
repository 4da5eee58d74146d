package ratelimit

import (
	"net/http"
	"strings"
)

// unlimited marks probe and scrape endpoints that are never limited.
var unlimited = map[string]bool{
	PathHealth: true,
	"/metrics": true,
}

// MatchEndpoint returns the configuration for path and method, or nil when the
// default limit applies. An exact path wins over a prefix ("/api/" matches "/api/x").
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if method == http.MethodGet && unlimited[path] {
		return &EndpointConfig{}
	}

	for i := range configs {
		if configs[i].Path == path && configs[i].Method == method {
			return &configs[i]
		}
	}

	for i := range configs {
		c := &configs[i]
		if c.Method == method && strings.HasSuffix(c.Path, "/") && strings.HasPrefix(path, c.Path) {
			return c
		}
	}
	return nil
}
