package nuclide_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/alara/nuclide"
)

func TestNewEncodesFields(t *testing.T) {
	for _, tc := range []struct {
		z, a, i int
		want    nuclide.KZA
	}{
		{1, 1, 0, 10010},
		{26, 56, 0, 260560},
		{47, 110, 1, 471101},
		{92, 235, 0, 922350},
	} {
		t.Run(fmt.Sprintf("%d-%d-%d", tc.z, tc.a, tc.i), func(t *testing.T) {
			k, err := nuclide.New(tc.z, tc.a, tc.i)
			require.NoError(t, err)
			require.Equal(t, tc.want, k)
			require.Equal(t, tc.z, k.Z())
			require.Equal(t, tc.a, k.A())
			require.Equal(t, tc.i, k.I())
			require.True(t, k.Valid())
		})
	}
}

func TestNewRejectsNonPhysical(t *testing.T) {
	for _, tc := range []struct{ z, a, i int }{
		{0, 1, 0},   // no element zero
		{26, 20, 0}, // A < Z
		{1, 1, -1},  // negative isomer index
		{1, 1, 10},  // isomer index overflows the digit
	} {
		_, err := nuclide.New(tc.z, tc.a, tc.i)
		require.ErrorIs(t, err, nuclide.ErrBadKZA)
	}
}

func TestString(t *testing.T) {
	for _, tc := range []struct {
		kza  nuclide.KZA
		want string
	}{
		{260560, "fe-56"},
		{471101, "ag-110m"},
		{471102, "ag-110m2"},
		{10030, "h-3"},
	} {
		require.Equal(t, tc.want, tc.kza.String())
	}
}

func TestFissionTypeString(t *testing.T) {
	require.Equal(t, "thermal", nuclide.FissionThermal.String())
	require.Equal(t, "none", nuclide.NoFission.String())
}

func TestErrBadKZAIsSentinel(t *testing.T) {
	_, err := nuclide.New(0, 0, 0)
	require.True(t, errors.Is(err, nuclide.ErrBadKZA))
}
