package store

import (
	"path/filepath"
	"testing"

	"github.com/nvinhtan/chaospy/internal/quadrature"
	"github.com/nvinhtan/chaospy/internal/request"
)

// createTestStore opens a fresh store in a temporary directory.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// buildRecord builds the grid for req and wraps it in a Record.
func buildRecord(t *testing.T, req *request.Request) (Record, *quadrature.Grid) {
	t.Helper()
	g, err := req.Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	rec, err := NewRecord(req, g)
	if err != nil {
		t.Fatalf("NewRecord() failed: %v", err)
	}
	return rec, g
}

func testRequest(name, family string, dims ...request.Dimension) *request.Request {
	return &request.Request{Name: name, Family: family, Dimensions: dims}
}
