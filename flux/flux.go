package flux

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"lukechampine.com/blake3"
)

// ErrGroupMismatch indicates a vector whose length differs from the group
// structure fixed at registry construction.
var ErrGroupMismatch = errors.New("flux: group structure mismatch")

// ErrUnknownFlux indicates a flux ID that was never registered.
var ErrUnknownFlux = errors.New("flux: unknown flux id")

// Vector is one group-wise flux, ngroups long.
type Vector []float64

// Registry owns the problem's flux vectors and their identities.
// IDs are dense integers 0..Count()-1 in first-registration order; vectors
// with byte-identical content share one ID.
type Registry struct {
	ngroups int
	vecs    []Vector
	byHash  map[[32]byte]int
}

// NewRegistry creates a registry for the given group structure.
func NewRegistry(ngroups int) *Registry {
	return &Registry{
		ngroups: ngroups,
		byHash:  make(map[[32]byte]int),
	}
}

// NGroups returns the fixed group count.
func (r *Registry) NGroups() int { return r.ngroups }

// Count returns the number of distinct fluxes registered.
func (r *Registry) Count() int { return len(r.vecs) }

// hash produces the content identity of a vector: BLAKE3 over the
// little-endian IEEE-754 encoding of the group values.
func hash(v Vector) [32]byte {
	buf := make([]byte, 8*len(v))
	for i, x := range v {
		binary.LittleEndian.PutUint64(buf[8*i:], math.Float64bits(x))
	}
	return blake3.Sum256(buf)
}

// Register adds v and returns its ID. A vector with content equal to an
// already-registered one returns the existing ID. The vector is copied.
func (r *Registry) Register(v Vector) (int, error) {
	if len(v) != r.ngroups {
		return 0, fmt.Errorf("got %d groups, registry has %d: %w",
			len(v), r.ngroups, ErrGroupMismatch)
	}
	h := hash(v)
	if id, ok := r.byHash[h]; ok {
		return id, nil
	}
	id := len(r.vecs)
	cp := make(Vector, len(v))
	copy(cp, v)
	r.vecs = append(r.vecs, cp)
	r.byHash[h] = id
	return id, nil
}

// Vector returns the flux registered under id.
func (r *Registry) Vector(id int) (Vector, error) {
	if id < 0 || id >= len(r.vecs) {
		return nil, fmt.Errorf("id %d of %d: %w", id, len(r.vecs), ErrUnknownFlux)
	}
	return r.vecs[id], nil
}

// Reference returns the group-wise maximum over all registered fluxes —
// the conservative flux used by chain truncation estimates. With no fluxes
// registered it returns the zero vector.
func (r *Registry) Reference() Vector {
	ref := make(Vector, r.ngroups)
	for _, v := range r.vecs {
		for g, x := range v {
			if x > ref[g] {
				ref[g] = x
			}
		}
	}
	return ref
}

// Collapse folds a rate vector with a flux: ⟨σ, φ⟩ over ngroups.
// A nil rate vector collapses to zero (missing data is not an error).
func Collapse(rate []float64, phi Vector) (float64, error) {
	if rate == nil {
		return 0, nil
	}
	if len(rate) != len(phi) {
		return 0, fmt.Errorf("rate has %d groups, flux has %d: %w",
			len(rate), len(phi), ErrGroupMismatch)
	}
	var sum float64
	for g, s := range rate {
		sum += s * phi[g]
	}
	return sum, nil
}
