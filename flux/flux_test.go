package flux_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/alara/flux"
)

func TestRegisterDedupesByContent(t *testing.T) {
	r := flux.NewRegistry(3)

	a, err := r.Register(flux.Vector{1e14, 2e14, 3e13})
	require.NoError(t, err)
	b, err := r.Register(flux.Vector{5e13, 0, 0})
	require.NoError(t, err)
	again, err := r.Register(flux.Vector{1e14, 2e14, 3e13})
	require.NoError(t, err)

	require.Equal(t, 0, a)
	require.Equal(t, 1, b)
	require.Equal(t, a, again, "identical content must share one ID")
	require.Equal(t, 2, r.Count())
}

func TestRegisterCopies(t *testing.T) {
	r := flux.NewRegistry(2)
	src := flux.Vector{1, 2}
	id, err := r.Register(src)
	require.NoError(t, err)

	src[0] = 99
	got, err := r.Vector(id)
	require.NoError(t, err)
	require.Equal(t, flux.Vector{1, 2}, got)
}

func TestRegisterGroupMismatch(t *testing.T) {
	r := flux.NewRegistry(4)
	_, err := r.Register(flux.Vector{1, 2})
	require.ErrorIs(t, err, flux.ErrGroupMismatch)
	require.Contains(t, err.Error(), "2")
	require.Contains(t, err.Error(), "4")
}

func TestVectorUnknownID(t *testing.T) {
	r := flux.NewRegistry(1)
	_, err := r.Vector(0)
	require.ErrorIs(t, err, flux.ErrUnknownFlux)
}

func TestReferenceIsGroupwiseMax(t *testing.T) {
	r := flux.NewRegistry(3)
	_, err := r.Register(flux.Vector{5, 1, 9})
	require.NoError(t, err)
	_, err = r.Register(flux.Vector{2, 7, 3})
	require.NoError(t, err)

	require.Equal(t, flux.Vector{5, 7, 9}, r.Reference())
}

func TestCollapse(t *testing.T) {
	phi := flux.Vector{1e14, 5e13}

	got, err := flux.Collapse([]float64{2e-24, 4e-24}, phi)
	require.NoError(t, err)
	require.InEpsilon(t, 2e-24*1e14+4e-24*5e13, got, 1e-15)

	// missing rate data collapses to zero, not an error
	got, err = flux.Collapse(nil, phi)
	require.NoError(t, err)
	require.Equal(t, 0.0, got)

	_, err = flux.Collapse([]float64{1}, phi)
	require.ErrorIs(t, err, flux.ErrGroupMismatch)
}
