package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/nvinhtan/chaospy/internal/canonical"
	"github.com/nvinhtan/chaospy/internal/codec"
	"github.com/nvinhtan/chaospy/internal/dist"
	"github.com/nvinhtan/chaospy/internal/quadrature"
	"github.com/nvinhtan/chaospy/internal/request"
)

// Summary describes a cached grid without its payload.
type Summary struct {
	Seq       int64  `json:"seq"`
	RequestID string `json:"request_id"`
	BuildID   string `json:"build_id"`
	Name      string `json:"name,omitempty"`
	Family    string `json:"family"`
	Levels    []int  `json:"levels"`
	Dims      int    `json:"dims"`
	Points    int    `json:"points"`
	Digest    string `json:"digest"`
}

// Record is a cached grid.
type Record struct {
	Summary

	// Distributions holds the normalized spec of each dimension.
	Distributions []string

	// Payload is the CBOR encoding produced by codec.EncodeGrid.
	Payload []byte
}

// Grid decodes the payload.
func (r Record) Grid() (*quadrature.Grid, error) {
	return codec.DecodeGrid(r.Payload)
}

// Request rebuilds the request the record was cached for. Its ID equals
// RequestID.
func (r Record) Request() *request.Request {
	req := &request.Request{Name: r.Name, Family: r.Family}
	for i, d := range r.Distributions {
		req.Dimensions = append(req.Dimensions, request.Dimension{Level: r.Levels[i], Distribution: d})
	}
	return req
}

// NewRecord prepares g, built from req, for caching. Every call gets a
// fresh build ID; the request ID and digest depend only on content.
func NewRecord(req *request.Request, g *quadrature.Grid) (Record, error) {
	id, err := req.ID()
	if err != nil {
		return Record{}, fmt.Errorf("new record: %w", err)
	}
	digest, err := Digest(g)
	if err != nil {
		return Record{}, fmt.Errorf("new record: %w", err)
	}
	payload, err := codec.EncodeGrid(g)
	if err != nil {
		return Record{}, fmt.Errorf("new record: %w", err)
	}

	dists := make([]string, len(req.Dimensions))
	for i, d := range req.Dimensions {
		spec, err := dist.Parse(d.Distribution)
		if err != nil {
			return Record{}, fmt.Errorf("new record: dimension %d: %w", i, err)
		}
		dists[i] = spec.String()
	}

	return Record{
		Summary: Summary{
			RequestID: id,
			BuildID:   uuid.Must(uuid.NewV7()).String(),
			Name:      req.Name,
			Family:    g.Family.String(),
			Levels:    append([]int(nil), g.Levels...),
			Dims:      g.Dims(),
			Points:    g.Len(),
			Digest:    digest,
		},
		Distributions: dists,
		Payload:       payload,
	}, nil
}

// Digest is the content hash of a grid: family, levels, nodes (row-major)
// and weights.
func Digest(g *quadrature.Grid) (string, error) {
	p := codec.NewPayload(g)
	return canonical.GridDigest(map[string]any{
		"family":  g.Family.String(),
		"levels":  p.Levels,
		"nodes":   p.Nodes,
		"weights": p.Weights,
	})
}

// PutGrid stores rec. Uses ON CONFLICT(request_id) DO NOTHING, so caching
// the same request twice keeps the first record; inserted reports which
// case happened.
func (s *Store) PutGrid(ctx context.Context, rec Record) (inserted bool, err error) {
	if len(rec.Distributions) != rec.Dims || len(rec.Levels) != rec.Dims {
		return false, fmt.Errorf("put grid: %d levels and %d distributions for %d dims",
			len(rec.Levels), len(rec.Distributions), rec.Dims)
	}
	levels, err := canonical.Marshal(rec.Levels)
	if err != nil {
		return false, fmt.Errorf("put grid: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("put grid: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	result, err := tx.ExecContext(ctx, `
		INSERT INTO grids
		(request_id, build_id, name, family, levels, dims, points, digest, payload)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(request_id) DO NOTHING
	`,
		rec.RequestID,
		rec.BuildID,
		rec.Name,
		rec.Family,
		string(levels),
		rec.Dims,
		rec.Points,
		rec.Digest,
		rec.Payload,
	)
	if err != nil {
		return false, fmt.Errorf("put grid: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("put grid: rows affected: %w", err)
	}
	if n == 0 {
		return false, nil
	}

	for i, d := range rec.Distributions {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO grid_dimensions (request_id, dim, level, distribution)
			VALUES (?, ?, ?, ?)
		`, rec.RequestID, i, rec.Levels[i], d)
		if err != nil {
			return false, fmt.Errorf("put grid: dimension %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("put grid: commit: %w", err)
	}
	return true, nil
}

// GetGrid returns the record cached for requestID. found is false when
// there is none.
func (s *Store) GetGrid(ctx context.Context, requestID string) (rec Record, found bool, err error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT seq, request_id, build_id, name, family, levels, dims, points, digest, payload
		FROM grids
		WHERE request_id = ?
	`, requestID)

	var levels string
	err = row.Scan(
		&rec.Seq, &rec.RequestID, &rec.BuildID, &rec.Name, &rec.Family,
		&levels, &rec.Dims, &rec.Points, &rec.Digest, &rec.Payload,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, fmt.Errorf("get grid: %w", err)
	}
	if err := json.Unmarshal([]byte(levels), &rec.Levels); err != nil {
		return Record{}, false, fmt.Errorf("get grid: levels: %w", err)
	}

	rec.Distributions, err = s.readDistributions(ctx, requestID)
	if err != nil {
		return Record{}, false, err
	}
	return rec, true, nil
}

func (s *Store) readDistributions(ctx context.Context, requestID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT distribution
		FROM grid_dimensions
		WHERE request_id = ?
		ORDER BY dim ASC
	`, requestID)
	if err != nil {
		return nil, fmt.Errorf("read distributions: %w", err)
	}
	defer rows.Close()

	var dists []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("read distributions: %w", err)
		}
		dists = append(dists, d)
	}
	return dists, rows.Err()
}

// ListGrids returns every cached grid in insertion order.
func (s *Store) ListGrids(ctx context.Context) ([]Summary, error) {
	return s.listGrids(ctx, `
		SELECT seq, request_id, build_id, name, family, levels, dims, points, digest
		FROM grids
		ORDER BY seq ASC, request_id COLLATE BINARY ASC
	`)
}

// ListGridsByFamily returns the cached grids of one family in insertion order.
func (s *Store) ListGridsByFamily(ctx context.Context, f quadrature.Family) ([]Summary, error) {
	return s.listGrids(ctx, `
		SELECT seq, request_id, build_id, name, family, levels, dims, points, digest
		FROM grids
		WHERE family = ?
		ORDER BY seq ASC, request_id COLLATE BINARY ASC
	`, f.String())
}

func (s *Store) listGrids(ctx context.Context, query string, args ...any) ([]Summary, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list grids: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var sum Summary
		var levels string
		if err := rows.Scan(
			&sum.Seq, &sum.RequestID, &sum.BuildID, &sum.Name, &sum.Family,
			&levels, &sum.Dims, &sum.Points, &sum.Digest,
		); err != nil {
			return nil, fmt.Errorf("list grids: %w", err)
		}
		if err := json.Unmarshal([]byte(levels), &sum.Levels); err != nil {
			return nil, fmt.Errorf("list grids: levels: %w", err)
		}
		out = append(out, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list grids: %w", err)
	}
	return out, nil
}
