package harness

import "github.com/nvinhtan/chaospy/internal/quadrature"

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates overall success: every assertion held.
	Pass bool `json:"pass"`

	// Errors contains assertion failure messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`

	// RequestID is the content identity of the scenario's request.
	// Empty when the request failed to build.
	RequestID string `json:"request_id,omitempty"`

	// ErrorCode is the code of the build error, if the build failed.
	ErrorCode string `json:"error_code,omitempty"`

	// Grid is the grid as read back from the store.
	Grid *quadrature.Grid `json:"-"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Errors: []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
