// internal/api/types/response.go
package types

// OperationResponse is the discriminated result returned by every
// mutating endpoint: callers branch on Success rather than on a thrown
// error. Data carries the created or mutated record on success.
type OperationResponse[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    *T     `json:"data,omitempty"`
}

// OK builds a successful OperationResponse.
func OK[T any](message string, data *T) OperationResponse[T] {
	return OperationResponse[T]{Success: true, Message: message, Data: data}
}

// Failed builds a failed OperationResponse.
func Failed[T any](message string) OperationResponse[T] {
	return OperationResponse[T]{Success: false, Message: message}
}

// PaginatedResponse defines a generic structure for paginated API responses.
// T represents the type of data contained in the 'Data' slice.
type PaginatedResponse[T any] struct {
	Data       []T   `json:"data"`
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	TotalCount int64 `json:"total_count"`
}
