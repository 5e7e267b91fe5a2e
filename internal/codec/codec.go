// Package codec encodes tensor grids as deterministic CBOR.
package codec

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"gonum.org/v1/gonum/mat"

	"github.com/nvinhtan/chaospy/internal/quadrature"
)

// PayloadVersion is the current payload layout.
const PayloadVersion = 1

// encMode produces canonical CBOR, so equal grids encode to equal bytes.
var encMode cbor.EncMode

var decMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsEmpty,
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyEnforcedAPF,
		IndefLength: cbor.IndefLengthForbidden,
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR decoder mode: %v", err))
	}
}

// Payload is the wire form of a grid. Nodes are stored row-major: the
// Points values of dimension 0, then those of dimension 1, and so on.
type Payload struct {
	Version int       `cbor:"1,keyasint"`
	Family  int       `cbor:"2,keyasint"`
	Levels  []int     `cbor:"3,keyasint"`
	Dims    int       `cbor:"4,keyasint"`
	Points  int       `cbor:"5,keyasint"`
	Nodes   []float64 `cbor:"6,keyasint"`
	Weights []float64 `cbor:"7,keyasint"`
}

// NewPayload flattens g.
func NewPayload(g *quadrature.Grid) *Payload {
	dims, points := g.Dims(), g.Len()
	nodes := make([]float64, 0, dims*points)
	for i := 0; i < dims; i++ {
		nodes = append(nodes, g.Row(i)...)
	}
	return &Payload{
		Version: PayloadVersion,
		Family:  int(g.Family),
		Levels:  append([]int(nil), g.Levels...),
		Dims:    dims,
		Points:  points,
		Nodes:   nodes,
		Weights: append([]float64(nil), g.Weights...),
	}
}

// Validate checks that the payload describes a well-formed grid.
func (p *Payload) Validate() error {
	if p.Version != PayloadVersion {
		return fmt.Errorf("unsupported payload version %d", p.Version)
	}
	if !quadrature.Family(p.Family).Valid() {
		return quadrature.NewUnknownFamilyError(fmt.Sprintf("%d", p.Family))
	}
	if p.Dims <= 0 || p.Points <= 0 {
		return fmt.Errorf("empty grid (%d dims, %d points)", p.Dims, p.Points)
	}
	if len(p.Levels) != p.Dims {
		return fmt.Errorf("%d levels for %d dims", len(p.Levels), p.Dims)
	}
	if len(p.Weights) != p.Points {
		return fmt.Errorf("%d weights for %d points", len(p.Weights), p.Points)
	}
	if len(p.Nodes) != p.Dims*p.Points {
		return fmt.Errorf("%d node values for %dx%d grid", len(p.Nodes), p.Dims, p.Points)
	}
	return nil
}

// Grid rebuilds the grid. The payload must be valid.
func (p *Payload) Grid() *quadrature.Grid {
	nodes := mat.NewDense(p.Dims, p.Points, append([]float64(nil), p.Nodes...))
	return quadrature.NewGrid(nodes, append([]float64(nil), p.Weights...),
		quadrature.Family(p.Family), append([]int(nil), p.Levels...))
}

// Marshal encodes a value to canonical CBOR.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes CBOR bytes into a value.
func Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}

// EncodeGrid encodes g as a CBOR payload.
func EncodeGrid(g *quadrature.Grid) ([]byte, error) {
	p := NewPayload(g)
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid grid: %w", err)
	}
	return Marshal(p)
}

// DecodeGrid decodes a payload produced by EncodeGrid.
func DecodeGrid(data []byte) (*quadrature.Grid, error) {
	var p Payload
	if err := Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to decode grid: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid grid: %w", err)
	}
	return p.Grid(), nil
}

// WriteGrid encodes g to w.
func WriteGrid(w io.Writer, g *quadrature.Grid) error {
	data, err := EncodeGrid(g)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
