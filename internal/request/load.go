package request

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

// Load error codes.
const (
	ErrCodeRead    = "READ_FAILED"
	ErrCodeFormat  = "UNSUPPORTED_FORMAT"
	ErrCodeParse   = "PARSE_FAILED"
	ErrCodeInvalid = "INVALID_REQUEST"
)

// LoadError reports a request file that could not be read or is invalid.
type LoadError struct {
	Code    string
	Message string
	Path    string
	Err     error
}

func (e *LoadError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %s", e.Path, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// IsLoadError reports whether err is a LoadError with the given code.
func IsLoadError(err error, code string) bool {
	var le *LoadError
	if errors.As(err, &le) {
		return le.Code == code
	}
	return false
}

// schema constrains CUE request files. Definitions are closed, so unknown
// fields are rejected just like the strict YAML decoder does.
const schema = `
#Dimension: {
	level:        int & >=0
	distribution: string
}

#Request: {
	name?:       string
	family?:     string
	max_points?: int & >=0
	dimensions: [#Dimension, ...#Dimension]
}
`

// Load reads a request from a .yaml, .yml or .cue file and validates it.
func Load(path string) (*Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeRead, Message: err.Error(), Path: path, Err: err}
	}

	var req *Request
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		req, err = ParseYAML(data)
	case ".cue":
		req, err = ParseCUE(data, path)
	default:
		return nil, &LoadError{
			Code:    ErrCodeFormat,
			Message: fmt.Sprintf("unsupported extension %q (want .yaml, .yml or .cue)", filepath.Ext(path)),
			Path:    path,
		}
	}
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
		}
		return nil, err
	}
	return req, nil
}

// ParseYAML decodes and validates a YAML request.
// Unknown fields are rejected so typos surface early.
func ParseYAML(data []byte) (*Request, error) {
	var req Request
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&req); err != nil {
		return nil, &LoadError{Code: ErrCodeParse, Message: fmt.Sprintf("failed to parse YAML: %v", err), Err: err}
	}
	return validated(&req)
}

// ParseCUE compiles data against the request schema, then decodes and
// validates it. filename is used only in error positions.
func ParseCUE(data []byte, filename string) (*Request, error) {
	ctx := cuecontext.New()
	def := ctx.CompileString(schema).LookupPath(cue.ParsePath("#Request"))
	if err := def.Err(); err != nil {
		return nil, fmt.Errorf("request schema: %w", err)
	}

	v := ctx.CompileBytes(data, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return nil, &LoadError{Code: ErrCodeParse, Message: fmt.Sprintf("failed to compile CUE: %v", err), Err: err}
	}
	u := def.Unify(v)
	if err := u.Validate(cue.Concrete(true)); err != nil {
		return nil, &LoadError{Code: ErrCodeParse, Message: fmt.Sprintf("request does not match schema: %v", err), Err: err}
	}

	var req Request
	if err := u.Decode(&req); err != nil {
		return nil, &LoadError{Code: ErrCodeParse, Message: fmt.Sprintf("failed to decode CUE: %v", err), Err: err}
	}
	return validated(&req)
}

func validated(req *Request) (*Request, error) {
	if err := req.Validate(); err != nil {
		return nil, &LoadError{Code: ErrCodeInvalid, Message: err.Error(), Err: err}
	}
	return req, nil
}
