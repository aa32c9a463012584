package meshing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dantero-ps/voxmesh/internal/voxel"
)

func buildTestVolume() *voxel.Volume[uint16] {
	vol := voxel.New[uint16](0, 0, 0, 12, 4, 12, true)
	vol.FillRegion(voxel.NewRegion(0, 0, 0, 12, 1, 12), 1)
	vol.FillRegion(voxel.NewRegion(3, 1, 3, 4, 1, 4), 2)
	return vol
}

func TestGenerateParallelMatchesSequentialQuadCounts(t *testing.T) {
	vol := buildTestVolume()

	sequential := New[uint16]()
	sequential.Generate(vol, []float32{0, 1, 2}, 1)

	parallel := New[uint16]()
	parallel.GenerateParallel(vol, []float32{0, 1, 2}, 1)

	require.Len(t, parallel.Vertices(), len(sequential.Vertices()))
	require.Len(t, parallel.Indices(), len(sequential.Indices()))
	require.Equal(t, sequential.LastRunStats(), parallel.LastRunStats())
}

func TestGenerateParallelIndicesStayWithinVertexBounds(t *testing.T) {
	vol := buildTestVolume()
	m := New[uint16]()
	m.GenerateParallel(vol, []float32{0, 1, 2}, 1)

	vertexCount := Index(len(m.Vertices()))
	for _, idx := range m.Indices() {
		require.Less(t, idx, vertexCount)
	}
}
