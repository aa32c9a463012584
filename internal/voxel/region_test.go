package voxel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegionDerivedExtents(t *testing.T) {
	r := NewRegion(4, 1, 4, 8, 1, 8)
	require.Equal(t, 12, r.XEnd())
	require.Equal(t, 2, r.YEnd())
	require.Equal(t, 12, r.ZEnd())
	require.Equal(t, 64, r.Volume())
}

func TestRegionEqual(t *testing.T) {
	a := NewRegion(0, 0, 0, 32, 1, 32)
	b := NewRegion(0, 0, 0, 32, 1, 32)
	c := NewRegion(0, 0, 0, 32, 2, 32)
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}
