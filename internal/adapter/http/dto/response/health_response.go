package response

import "pagamentos_xpto/internal/domain/entities"

type ProviderHealthResponse struct {
	ProviderName string `json:"provider_name"`
	Reachable    bool   `json:"reachable"`
	LatencyMs    int64  `json:"latency_ms"`
	LastError    string `json:"last_error,omitempty"`
}

type ProvidersHealthResponse struct {
	Providers map[string]ProviderHealthResponse `json:"providers"`
}

func FromProvidersHealth(report map[string]entities.ProviderHealth) ProvidersHealthResponse {
	providers := make(map[string]ProviderHealthResponse, len(report))
	for name, h := range report {
		providers[name] = ProviderHealthResponse{
			ProviderName: h.ProviderName,
			Reachable:    h.Reachable,
			LatencyMs:    h.LatencyMs,
			LastError:    h.LastError,
		}
	}
	return ProvidersHealthResponse{Providers: providers}
}
