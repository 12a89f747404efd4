package dto

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// HealthResponse is returned by the liveness endpoint
type HealthResponse struct {
	Status   string             `json:"status"`
	Database string             `json:"database"`
	Pool     *PoolStatsResponse `json:"pool,omitempty"`
}

// PoolStatsResponse is the last sampled state of the database connection pool
type PoolStatsResponse struct {
	Open      int   `json:"open"`
	InUse     int   `json:"inUse"`
	Idle      int   `json:"idle"`
	MaxOpen   int   `json:"maxOpen"`
	WaitCount int64 `json:"waitCount"`
}
