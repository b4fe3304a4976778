package server

// DrawRequest asks for a batch of values from a named stream. Format "u64"
// (the default) returns raw values; "float" returns restricted-precision
// doubles in [0,1) when the stream's generator offers them.
type DrawRequest struct {
	Stream    string `json:"stream"`
	Count     int    `json:"count"`
	Format    string `json:"format,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

// DrawResponse carries one batch of values. Raw values are hex-encoded
// strings: JSON numbers cannot represent the full 64-bit range.
type DrawResponse struct {
	Stream    string    `json:"stream"`
	Tag       string    `json:"tag"`
	Values    []string  `json:"values,omitempty"`
	Floats    []float64 `json:"floats,omitempty"`
	RequestID string    `json:"requestId,omitempty"`
	Error     string    `json:"error,omitempty"`
}
