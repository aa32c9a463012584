// Package meshing implements the greedy voxel-face mesher: a six-direction
// sweep over a voxel.Volume that emits merged rectangular quads as a vertex
// and index buffer suitable for GPU upload.
package meshing

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/dantero-ps/voxmesh/internal/growlist"
	"github.com/dantero-ps/voxmesh/internal/voxel"
)

// capacityUpdateThreshold is the two-sided hysteresis band on the capacity
// predictor: a run only triggers a resize when the average has drifted more
// than 20% from the current expectation, in either direction.
const capacityUpdateThreshold = 0.2

// Mesher holds a Volume's greedy-meshing state: the two output buffers and
// the capacity predictor that pre-sizes them across repeated Generate calls.
// A Mesher is not safe for concurrent Generate calls against the same
// instance; create one per goroutine that meshes independently.
type Mesher[V voxel.Unsigned] struct {
	vertices *growlist.List[Vertex]
	indices  *growlist.List[Index]

	runs              int
	verticesGenerated uint64
	average           int
	expected          int
	update            bool

	lastStats map[V]int
}

// New returns a Mesher with empty output buffers and no capacity prediction
// yet — the first Generate call relies entirely on in-sweep Reserve calls.
func New[V voxel.Unsigned]() *Mesher[V] {
	return &Mesher[V]{
		vertices: growlist.New[Vertex](0),
		indices:  growlist.New[Index](0),
	}
}

// Vertices returns the vertex buffer written by the most recent Generate
// call. It aliases the Mesher's internal storage; copy it before calling
// Generate again if it must be retained.
func (m *Mesher[V]) Vertices() []Vertex { return m.vertices.Slice() }

// Indices returns the index buffer written by the most recent Generate
// call, aliased the same way as Vertices.
func (m *Mesher[V]) Indices() []Index { return m.indices.Slice() }

// Expected returns the capacity predictor's current expected vertex count.
func (m *Mesher[V]) Expected() int { return m.expected }

// Runs returns the number of Generate calls made on this Mesher so far.
func (m *Mesher[V]) Runs() int { return m.runs }

// LastRunStats returns the number of emitted quads per voxel id from the
// most recent Generate call. The returned map is owned by the caller.
func (m *Mesher[V]) LastRunStats() map[V]int {
	stats := make(map[V]int, len(m.lastStats))
	for k, v := range m.lastStats {
		stats[k] = v
	}
	return stats
}

// Generate sweeps all six face directions of volume and writes the merged
// quads into the Mesher's vertex and index buffers, overwriting the
// previous run's contents. textureTable is indexed by voxel id; Generate
// panics the first time it needs an entry beyond the table's length.
func (m *Mesher[V]) Generate(volume *voxel.Volume[V], textureTable []float32, cubeSize float32) {
	m.vertices.ResetCursor()
	m.indices.ResetCursor()
	m.lastStats = make(map[V]int)

	if m.update {
		m.vertices.Reserve(m.expected * 4)
		m.indices.Reserve(m.expected * 6)
		m.update = false
	}

	w, h, d := volume.Width(), volume.Height(), volume.Depth()
	for _, dir := range directions {
		lv := NewLayerView(dir.axis, w, h, d)
		m.sweepDirection(volume, lv, dir, textureTable, cubeSize)
	}

	m.runs++
	m.verticesGenerated += uint64(m.vertices.Cursor())
	m.updateExpected()
}

// updateExpected recomputes the running average vertex count and raises the
// update flag when it has drifted more than capacityUpdateThreshold from the
// current expectation. The first run seeds expected directly, since there is
// nothing yet to compare a diff against.
func (m *Mesher[V]) updateExpected() {
	m.average = int(m.verticesGenerated / uint64(m.runs))

	if m.expected == 0 {
		m.expected = m.average
		m.update = true
		return
	}

	diff := math.Abs(float64(m.average)-float64(m.expected)) / float64(m.expected)
	if diff > capacityUpdateThreshold {
		m.expected = m.average
		m.update = true
	}
}

// layerMask is a scratch buffer for one slice: true means "consumed or
// hidden", false means "an unmerged, visible cell".
type layerMask []bool

func (m *Mesher[V]) sweepDirection(volume *voxel.Volume[V], lv LayerView, dir direction, textureTable []float32, cubeSize float32) {
	mask := make(layerMask, lv.Size())

	for a := 0; a < lv.SliceRange(); a++ {
		if sliceEmpty(volume, dir.axis, a) {
			continue
		}

		m.buildMask(volume, lv, dir, a, mask)
		m.extractRects(volume, lv, dir, a, mask, textureTable, cubeSize)
	}
}

func sliceEmpty[V voxel.Unsigned](volume *voxel.Volume[V], axis Axis, a int) bool {
	switch axis {
	case AxisX:
		return volume.IsLayerXEmpty(a)
	case AxisY:
		return volume.IsLayerYEmpty(a)
	default:
		return volume.IsLayerZEmpty(a)
	}
}

// buildMask marks, for every layer cell at slice a, whether it is empty or
// hidden by an occupied neighbor slice. It visits every cell exactly once
// and always writes a value, so the mask needs no separate zeroing pass.
func (m *Mesher[V]) buildMask(volume *voxel.Volume[V], lv LayerView, dir direction, a int, mask layerMask) {
	neighborA := dir.neighborSlice(a)
	var zero V

	for ly := 0; ly < lv.LyRange(); ly++ {
		for lx := 0; lx < lv.LxRange(); lx++ {
			idx := lv.Index(lx, ly)
			x, y, z := lv.To3D(lx, ly, a)
			voxelValue := volume.Get(x, y, z)

			if voxelValue == zero {
				mask[idx] = true
				continue
			}

			nx, ny, nz := lv.To3D(lx, ly, neighborA)
			if volume.GetChecked(nx, ny, nz) != zero {
				mask[idx] = true
				continue
			}

			mask[idx] = false
		}
	}
}

// extractRects runs the greedy rectangle extraction and two-phase shrink
// over one slice's mask, emitting a quad per merged rectangle.
func (m *Mesher[V]) extractRects(volume *voxel.Volume[V], lv LayerView, dir direction, a int, mask layerMask, textureTable []float32, cubeSize float32) {
	for ly := 0; ly < lv.LyRange(); ly++ {
		for lx := 0; lx < lv.LxRange(); {
			if mask[lv.Index(lx, ly)] {
				lx++
				continue
			}

			x, y, z := lv.To3D(lx, ly, a)
			v := volume.Get(x, y, z)

			lyEnd := ly + 1
			for lyEnd < lv.LyRange() {
				if mask[lv.Index(lx, lyEnd)] {
					break
				}
				xx, yy, zz := lv.To3D(lx, lyEnd, a)
				if volume.Get(xx, yy, zz) != v {
					break
				}
				lyEnd++
			}

			lxEnd := lx + 1
			for lxEnd < lv.LxRange() {
				if mask[lv.Index(lxEnd, ly)] {
					break
				}
				xx, yy, zz := lv.To3D(lxEnd, ly, a)
				if volume.Get(xx, yy, zz) != v {
					break
				}
				lxEnd++
			}

			lyEnd = shrinkLyEnd(volume, lv, a, lx, ly, lxEnd, lyEnd, v, mask)
			lxEnd = shrinkLxEnd(volume, lv, a, lx, ly, lxEnd, lyEnd, v, mask)

			width := lxEnd - lx

			m.emitQuad(volume, lv, dir, a, lx, ly, lxEnd, lyEnd, v, textureTable, cubeSize)

			for my := ly; my < lyEnd; my++ {
				base := lv.Index(lx, my)
				for i := 0; i < width; i++ {
					mask[base+i] = true
				}
			}

			if lx == 0 && lxEnd == lv.LxRange() {
				ly = lyEnd - 1
				break
			}
			lx = lxEnd
		}
	}
}

// shrinkLyEnd walks the rectangle's interior, outer lx then inner ly, and
// returns the first ly at which an obstruction is found, or the unchanged
// lyEnd if none is.
func shrinkLyEnd[V voxel.Unsigned](volume *voxel.Volume[V], lv LayerView, a, lx, ly, lxEnd, lyEnd int, v V, mask layerMask) int {
	for sx := lx + 1; sx < lxEnd; sx++ {
		for sy := ly + 1; sy < lyEnd; sy++ {
			if mask[lv.Index(sx, sy)] {
				return sy
			}
			xx, yy, zz := lv.To3D(sx, sy, a)
			if volume.Get(xx, yy, zz) != v {
				return sy
			}
		}
	}
	return lyEnd
}

// shrinkLxEnd mirrors shrinkLyEnd with the loop order swapped: outer ly,
// inner lx.
func shrinkLxEnd[V voxel.Unsigned](volume *voxel.Volume[V], lv LayerView, a, lx, ly, lxEnd, lyEnd int, v V, mask layerMask) int {
	for sy := ly + 1; sy < lyEnd; sy++ {
		for sx := lx + 1; sx < lxEnd; sx++ {
			if mask[lv.Index(sx, sy)] {
				return sx
			}
			xx, yy, zz := lv.To3D(sx, sy, a)
			if volume.Get(xx, yy, zz) != v {
				return sx
			}
		}
	}
	return lxEnd
}

func (m *Mesher[V]) emitQuad(volume *voxel.Volume[V], lv LayerView, dir direction, a, lx, ly, lxEnd, lyEnd int, v V, textureTable []float32, cubeSize float32) {
	if int(v) >= len(textureTable) {
		panic(fmt.Sprintf("meshing: voxel id %d has no entry in a %d-entry texture table", v, len(textureTable)))
	}
	textureID := textureTable[v]

	fa := dir.facePlane(a)
	corners := dir.order.corners(lx, ly, lxEnd, lyEnd)

	ox, oy, oz := volume.Origin()

	m.vertices.Reserve(m.vertices.Cursor() + 4)
	base := Index(m.vertices.Cursor())

	for _, c := range corners {
		x, y, z := lv.To3D(c[0], c[1], fa)
		pos := mgl32.Vec3{
			float32(ox+x) * cubeSize,
			float32(oy+y) * cubeSize,
			float32(oz+z) * cubeSize,
		}
		*m.vertices.Push() = Vertex{Position: pos, Normal: dir.normal, TextureID: textureID}
	}

	m.indices.Reserve(m.indices.Cursor() + 6)
	*m.indices.Push() = base
	*m.indices.Push() = base + 1
	*m.indices.Push() = base + 2
	*m.indices.Push() = base + 2
	*m.indices.Push() = base + 3
	*m.indices.Push() = base

	m.lastStats[v]++
}
