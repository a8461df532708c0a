package types

// ApiResponse is the envelope returned by the authenticated JSON endpoints.
type ApiResponse struct {
	Message string      `json:"message"`
	Status  int         `json:"status"`
	Token   string      `json:"token,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is a minimal error body for auth failures.
type ErrorResponse struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}
