package params

import "time"

// ListenerConfig says where the daemon listens. Network takes anything
// net.Listen accepts; the daemon itself only ever uses tcp variants.
type ListenerConfig struct {
	Network string
	Address string
}

type WebDaemonConfig struct {
	ListenerConfig

	// Sampling is the grid sampling the daemon serves, in meters per pixel.
	Sampling int

	// SearchCacheTTL bounds how long identical search requests are answered
	// from cache. Search results are immutable per grid, so the TTL only
	// limits memory held by cold entries.
	SearchCacheTTL time.Duration
}

func DefaultWebListenerConfig() ListenerConfig {
	return ListenerConfig{
		Network: "tcp",
		Address: "localhost:3000",
	}
}

func DefaultWebDaemonConfig() *WebDaemonConfig {
	return &WebDaemonConfig{
		ListenerConfig: DefaultWebListenerConfig(),
		Sampling:       DefaultSampling,
		SearchCacheTTL: 15 * time.Minute,
	}
}

func DefaultTestWebDaemonConfig() *WebDaemonConfig {
	return &WebDaemonConfig{
		ListenerConfig: ListenerConfig{
			Network: "tcp",
			Address: "localhost:3333",
		},
		Sampling:       DefaultSampling,
		SearchCacheTTL: time.Minute,
	}
}
