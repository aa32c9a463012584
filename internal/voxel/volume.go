package voxel

import "fmt"

// Unsigned is the set of voxel identifier kinds a Volume can hold. 0 is
// always the reserved "empty" (air) value.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Volume is a dense W*H*D voxel grid with incrementally maintained
// per-axis occupancy counters. Dimensions are fixed at construction; a
// Volume never resizes.
//
// Index order matches the original: index(x,y,z) = y*(W*D) + z*W + x. Y is
// the slow axis, then Z, then X contiguous, so the mesher's inner loops
// (which iterate X fastest within a horizontal slab) walk memory in order.
type Volume[V Unsigned] struct {
	originX, originY, originZ int
	width, height, depth      int

	data []V

	countX []int
	countY []int
	countZ []int
}

// New allocates a Volume of the given dimensions at the given world-space
// origin. If clear is true the backing array starts zeroed (it always
// does in Go, but the flag is kept to mirror the source's explicit
// zero-fill decision and to make the caller's intent explicit).
func New[V Unsigned](originX, originY, originZ, width, height, depth int, clear bool) *Volume[V] {
	_ = clear // make() already zero-fills; kept for parity with the source's Volume(x, y, z, clear_data) signature.
	return &Volume[V]{
		originX: originX, originY: originY, originZ: originZ,
		width: width, height: height, depth: depth,
		data:   make([]V, width*height*depth),
		countX: make([]int, width),
		countY: make([]int, height),
		countZ: make([]int, depth),
	}
}

func (v *Volume[V]) Width() int  { return v.width }
func (v *Volume[V]) Height() int { return v.height }
func (v *Volume[V]) Depth() int  { return v.depth }

// Origin returns the volume's world-space origin.
func (v *Volume[V]) Origin() (x, y, z int) { return v.originX, v.originY, v.originZ }

func (v *Volume[V]) index(x, y, z int) int {
	return y*(v.width*v.depth) + z*v.width + x
}

func (v *Volume[V]) inBounds(x, y, z int) bool {
	return x >= 0 && x < v.width && y >= 0 && y < v.height && z >= 0 && z < v.depth
}

// Get returns the voxel at (x,y,z). Out-of-bounds coordinates are a
// programmer error and panic.
func (v *Volume[V]) Get(x, y, z int) V {
	if !v.inBounds(x, y, z) {
		panic(fmt.Sprintf("voxel: position (%d,%d,%d) out of bounds for %dx%dx%d volume", x, y, z, v.width, v.height, v.depth))
	}
	return v.data[v.index(x, y, z)]
}

// GetChecked returns the voxel at (x,y,z), or the zero (empty) value if
// the position is out of bounds. Used only by the mesher's neighbor
// lookups across the volume boundary.
func (v *Volume[V]) GetChecked(x, y, z int) V {
	if !v.inBounds(x, y, z) {
		var zero V
		return zero
	}
	return v.data[v.index(x, y, z)]
}

// Set writes the voxel at (x,y,z) and incrementally maintains the three
// occupancy counters. A write that does not change emptiness state (air
// to air, or the same non-air value written twice) touches no counters.
func (v *Volume[V]) Set(x, y, z int, value V) {
	if !v.inBounds(x, y, z) {
		panic(fmt.Sprintf("voxel: position (%d,%d,%d) out of bounds for %dx%dx%d volume", x, y, z, v.width, v.height, v.depth))
	}
	idx := v.index(x, y, z)
	old := v.data[idx]
	if old == value {
		return
	}
	var zero V
	switch {
	case old == zero && value != zero:
		v.countX[x]++
		v.countY[y]++
		v.countZ[z]++
	case old != zero && value == zero:
		v.countX[x]--
		v.countY[y]--
		v.countZ[z]--
	}
	v.data[idx] = value
}

// FillRegion writes value into every cell of region, iterating y-outer,
// z-middle, x-inner to match the backing memory order.
func (v *Volume[V]) FillRegion(region Region, value V) {
	for y := region.Y; y < region.YEnd(); y++ {
		for z := region.Z; z < region.ZEnd(); z++ {
			for x := region.X; x < region.XEnd(); x++ {
				v.Set(x, y, z, value)
			}
		}
	}
}

// IsLayerXEmpty, IsLayerYEmpty and IsLayerZEmpty report whether every
// voxel in the given axis-perpendicular slab is empty, in O(1).
func (v *Volume[V]) IsLayerXEmpty(x int) bool { return v.countX[x] == 0 }
func (v *Volume[V]) IsLayerYEmpty(y int) bool { return v.countY[y] == 0 }
func (v *Volume[V]) IsLayerZEmpty(z int) bool { return v.countZ[z] == 0 }

// NonEmptyCount returns the total number of non-empty cells, computed from
// the X-axis counters (any axis would do; they are redundant by
// construction, traded for O(1) IsLayer*Empty lookups).
func (v *Volume[V]) NonEmptyCount() int {
	sum := 0
	for _, c := range v.countX {
		sum += c
	}
	return sum
}

// checkInvariants recomputes counter sums from scratch and compares them
// against the incrementally maintained counters and each other. It exists
// for tests verifying the counters stay consistent with the backing data;
// production code never calls it.
func (v *Volume[V]) checkInvariants() error {
	var zero V
	nonEmpty := 0
	for _, c := range v.data {
		if c != zero {
			nonEmpty++
		}
	}
	sumX, sumY, sumZ := 0, 0, 0
	for _, c := range v.countX {
		if c < 0 {
			return fmt.Errorf("voxel: negative countX entry %d", c)
		}
		sumX += c
	}
	for _, c := range v.countY {
		if c < 0 {
			return fmt.Errorf("voxel: negative countY entry %d", c)
		}
		sumY += c
	}
	for _, c := range v.countZ {
		if c < 0 {
			return fmt.Errorf("voxel: negative countZ entry %d", c)
		}
		sumZ += c
	}
	if sumX != nonEmpty || sumY != nonEmpty || sumZ != nonEmpty {
		return fmt.Errorf("voxel: counter sums (%d,%d,%d) disagree with non-empty cell count %d", sumX, sumY, sumZ, nonEmpty)
	}
	return nil
}

// CheckInvariants exposes checkInvariants for tests in other packages.
func (v *Volume[V]) CheckInvariants() error { return v.checkInvariants() }
