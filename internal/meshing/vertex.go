package meshing

import "github.com/go-gl/mathgl/mgl32"

// Index is the GPU-side index type for the emitted triangle list.
type Index = uint32

// Vertex is the on-wire vertex record consumed by a downstream renderer:
// position, normal, texture id, and one float of explicit padding so the
// record lands on a 32-byte boundary.
type Vertex struct {
	Position  mgl32.Vec3
	Normal    mgl32.Vec3
	TextureID float32
	_pad      float32
}

// Encode returns the vertex as eight little-endian float32s in wire order:
// position.x, position.y, position.z, normal.x, normal.y, normal.z,
// texture_id, padding.
func (v Vertex) Encode() [8]float32 {
	return [8]float32{
		v.Position.X(), v.Position.Y(), v.Position.Z(),
		v.Normal.X(), v.Normal.Y(), v.Normal.Z(),
		v.TextureID, 0,
	}
}
