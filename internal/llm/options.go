package llm

// CallSettings collects per-request overrides resolved from CallOptions.
// The zero value means "use the client configuration".
type CallSettings struct {
	Temperature *float32
}

// CallOption adjusts a single generation request without touching the
// client-wide configuration.
type CallOption func(*CallSettings)

// WithCallTemperature overrides the sampling temperature for one request.
func WithCallTemperature(temperature float32) CallOption {
	return func(s *CallSettings) { s.Temperature = &temperature }
}

// ResolveCallOptions applies opts to an empty CallSettings.
func ResolveCallOptions(opts ...CallOption) CallSettings {
	var settings CallSettings
	for _, opt := range opts {
		opt(&settings)
	}
	return settings
}
