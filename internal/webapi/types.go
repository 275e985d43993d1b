package webapi

// RootResponse describes the service and its available endpoints.
type RootResponse struct {
	App         string            `json:"app"`
	Version     string            `json:"version"`
	Environment string            `json:"environment"`
	Message     string            `json:"message"`
	Endpoints   map[string]string `json:"endpoints"`
}

// HealthResponse is the health check response.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// VersionResponse is the deployment tracking response.
type VersionResponse struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
	Commit      string `json:"commit"`
}
