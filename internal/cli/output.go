package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/nvinhtan/chaospy/internal/quadrature"
	"github.com/nvinhtan/chaospy/internal/request"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Scenario failure or digest mismatch on replay
	ExitCommandError = 2 // Command error (invalid request, unreadable file, store failure)
)

// Error codes reported in the JSON envelope.
const (
	ErrCodeInvalidLevel        = "E_INVALID_LEVEL"
	ErrCodeUnsupportedOrder    = "E_UNSUPPORTED_ORDER"
	ErrCodeDimensionMismatch   = "E_DIMENSION_MISMATCH"
	ErrCodeUnknownFamily       = "E_UNKNOWN_FAMILY"
	ErrCodeGridTooLarge        = "E_GRID_TOO_LARGE"
	ErrCodeMissingDistribution = "E_MISSING_DISTRIBUTION"
	ErrCodeInvalidRequest      = "E_INVALID_REQUEST"
	ErrCodeNonFiniteGrid       = "E_NON_FINITE_GRID"
	ErrCodeStore               = "E_STORE"
	ErrCodeWriteFailed         = "E_WRITE_FAILED"
	ErrCodeGeneric             = "E_GENERIC"
)

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)

	// Reported is set once the command has written the error to the user.
	Reported bool
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// reported marks e as already written by the command.
func reported(e *ExitError) *ExitError {
	e.Reported = true
	return e
}

// IsReported reports whether err was already written to the user, so the
// caller should only exit with its code.
func IsReported(err error) bool {
	var exitErr *ExitError
	return errors.As(err, &exitErr) && exitErr.Reported
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// ErrorCode maps an error to its envelope code. Quadrature codes survive
// wrapping; request load errors report E_INVALID_REQUEST.
func ErrorCode(err error) string {
	switch quadrature.CodeOf(err) {
	case quadrature.ErrCodeInvalidLevel:
		return ErrCodeInvalidLevel
	case quadrature.ErrCodeUnsupportedOrder:
		return ErrCodeUnsupportedOrder
	case quadrature.ErrCodeDimensionMismatch:
		return ErrCodeDimensionMismatch
	case quadrature.ErrCodeUnknownFamily:
		return ErrCodeUnknownFamily
	case quadrature.ErrCodeGridTooLarge:
		return ErrCodeGridTooLarge
	case quadrature.ErrCodeMissingDistribution:
		return ErrCodeMissingDistribution
	}
	var le *request.LoadError
	if errors.As(err, &le) {
		return ErrCodeInvalidRequest
	}
	return ErrCodeGeneric
}

// errorDetails returns the structured context of a quadrature error.
func errorDetails(err error) any {
	var qe *quadrature.Error
	if errors.As(err, &qe) && len(qe.Details) > 0 {
		return qe.Details
	}
	return nil
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Separate writer for verbose/diagnostic output (defaults to Writer)
	Verbose   bool
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string    `json:"status"`          // "ok" or "error"
	Data   any       `json:"data,omitempty"`  // success payload
	Error  *CLIError `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`              // "E_INVALID_LEVEL", "E_STORE", etc.
	Message string `json:"message"`           // human-readable message
	Details any    `json:"details,omitempty"` // additional context
}

// Success outputs a successful result in the configured format.
func (f *OutputFormatter) Success(data any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
	}

	fmt.Fprintln(f.Writer, data)
	return nil
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string, details any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
				Details: details,
			},
		})
	}

	fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	if f.Verbose && details != nil {
		fmt.Fprintf(f.Writer, "Details: %v\n", details)
	}
	return nil
}

// Fail reports err in the configured format and returns it as an
// ExitError with the given exit code.
func (f *OutputFormatter) Fail(exitCode int, message string, err error) error {
	_ = f.Error(ErrorCode(err), fmt.Sprintf("%s: %v", message, err), errorDetails(err))
	return reported(WrapExitError(exitCode, message, err))
}

// VerboseLog outputs a message only if verbose mode is enabled.
// Uses ErrWriter if set, otherwise falls back to Writer.
// When format is JSON, verbose logs go to ErrWriter to avoid corrupting JSON output.
func (f *OutputFormatter) VerboseLog(format string, args ...any) {
	if !f.Verbose {
		return
	}
	w := f.ErrWriter
	if w == nil {
		w = f.Writer
	}
	fmt.Fprintf(w, format+"\n", args...)
}

// Table writes a light-style table with the given title and header.
func (f *OutputFormatter) Table(title string, header table.Row, rows []table.Row) {
	tw := table.NewWriter()
	if title != "" {
		tw.SetTitle(title)
	}
	tw.AppendHeader(header)
	tw.AppendRows(rows)
	style := table.StyleLight
	style.Format.Header = text.FormatDefault
	tw.SetStyle(style)
	fmt.Fprintln(f.Writer, tw.Render())
}

func newFormatter(opts *RootOptions, w, errW io.Writer) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    w,
		ErrWriter: errW,
		Verbose:   opts.Verbose,
	}
}
