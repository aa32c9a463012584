package meshing

import (
	"sync"

	"github.com/dantero-ps/voxmesh/internal/growlist"
	"github.com/dantero-ps/voxmesh/internal/voxel"
)

// direction result computed independently, before being rebased and
// concatenated into the Mesher's shared output buffers.
type partialResult[V voxel.Unsigned] struct {
	vertices *growlist.List[Vertex]
	indices  *growlist.List[Index]
	stats    map[V]int
}

// GenerateParallel is the optional multi-threaded entry point: it runs the
// six face directions on their own goroutines, each writing into its own
// vertex/index buffers, then rebases each partial's indices against the
// running global vertex cursor before concatenating in canonical direction
// order (+X, -X, +Y, -Y, +Z, -Z). The result is identical, up to quad
// ordering within the final buffer, to a sequential Generate call.
//
// Each direction gets one goroutine, spawned and joined with a
// sync.WaitGroup within this call; there is no long-lived pool or job
// channel.
func (m *Mesher[V]) GenerateParallel(volume *voxel.Volume[V], textureTable []float32, cubeSize float32) {
	w, h, d := volume.Width(), volume.Height(), volume.Depth()

	results := make([]partialResult[V], len(directions))
	var wg sync.WaitGroup
	for i, dir := range directions {
		wg.Add(1)
		go func(i int, dir direction) {
			defer wg.Done()
			sub := &Mesher[V]{
				vertices:  growlist.New[Vertex](0),
				indices:   growlist.New[Index](0),
				lastStats: make(map[V]int),
			}
			lv := NewLayerView(dir.axis, w, h, d)
			sub.sweepDirection(volume, lv, dir, textureTable, cubeSize)
			results[i] = partialResult[V]{vertices: sub.vertices, indices: sub.indices, stats: sub.lastStats}
		}(i, dir)
	}
	wg.Wait()

	m.vertices.ResetCursor()
	m.indices.ResetCursor()
	m.lastStats = make(map[V]int)

	totalVertices, totalIndices := 0, 0
	for _, r := range results {
		totalVertices += r.vertices.Cursor()
		totalIndices += r.indices.Cursor()
	}
	m.vertices.Reserve(totalVertices)
	m.indices.Reserve(totalIndices)

	for _, r := range results {
		base := Index(m.vertices.Cursor())
		for _, v := range r.vertices.Slice() {
			*m.vertices.Push() = v
		}
		for _, idx := range r.indices.Slice() {
			*m.indices.Push() = idx + base
		}
		for id, count := range r.stats {
			m.lastStats[id] += count
		}
	}

	m.runs++
	m.verticesGenerated += uint64(m.vertices.Cursor())
	m.updateExpected()
}
