package entities

// ProviderHealth is the outcome of one adapter reachability probe.
//
// Probes are diagnostic, not request-path-critical: adapters capture every
// failure into Reachable/LastError instead of returning an error.
type ProviderHealth struct {
	ProviderName string `json:"provider_name"`
	Reachable    bool   `json:"reachable"`
	LatencyMs    int64  `json:"latency_ms"`
	LastError    string `json:"last_error,omitempty"`
}
