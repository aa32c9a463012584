package meshing

import "github.com/go-gl/mathgl/mgl32"

// cornerOrder names one of the two fixed vertex-winding patterns a face
// direction can use to walk a rectangle's four corners. Every one of the six
// directions collapses to one of these two, alternating by axis handedness.
type cornerOrder int

const (
	orderA cornerOrder = iota // (lx,ly) -> (lx,lyEnd) -> (lxEnd,lyEnd) -> (lxEnd,ly)
	orderB                    // (lx,ly) -> (lxEnd,ly) -> (lxEnd,lyEnd) -> (lx,lyEnd)
)

// corners returns the four (lx, ly) pairs of rect, in this order's winding.
func (o cornerOrder) corners(lx, ly, lxEnd, lyEnd int) [4][2]int {
	if o == orderA {
		return [4][2]int{{lx, ly}, {lx, lyEnd}, {lxEnd, lyEnd}, {lxEnd, ly}}
	}
	return [4][2]int{{lx, ly}, {lxEnd, ly}, {lxEnd, lyEnd}, {lx, lyEnd}}
}

// direction describes one of the six face-generation passes.
type direction struct {
	axis   Axis
	sign   int // +1 or -1 along axis
	normal mgl32.Vec3
	order  cornerOrder
}

// directions holds the six sweep passes in canonical emission order
// (+X, -X, +Y, -Y, +Z, -Z), matching the order GenerateParallel rebases
// indices in when concatenating per-direction buffers.
var directions = [6]direction{
	{axis: AxisX, sign: +1, normal: mgl32.Vec3{1, 0, 0}, order: orderA},
	{axis: AxisX, sign: -1, normal: mgl32.Vec3{-1, 0, 0}, order: orderB},
	{axis: AxisY, sign: +1, normal: mgl32.Vec3{0, 1, 0}, order: orderA},
	{axis: AxisY, sign: -1, normal: mgl32.Vec3{0, -1, 0}, order: orderB},
	{axis: AxisZ, sign: +1, normal: mgl32.Vec3{0, 0, 1}, order: orderB},
	{axis: AxisZ, sign: -1, normal: mgl32.Vec3{0, 0, -1}, order: orderA},
}

// facePlane returns the slice coordinate the emitted quad's vertices lie on:
// a+1 for a positive-signed direction, a for a negative one.
func (d direction) facePlane(a int) int {
	if d.sign > 0 {
		return a + 1
	}
	return a
}

// neighborSlice returns the slice coordinate whose occupancy hides a face
// at slice a.
func (d direction) neighborSlice(a int) int {
	return a + d.sign
}
