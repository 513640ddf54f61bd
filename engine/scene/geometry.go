package scene

import "github.com/quadwave/quadwave/engine/core"

const (
	floatsPerVertex = 5 // pos3 + uv2
	indicesPerQuad  = 6
)

// quadVertexLayout: attribute 0 = position (3 floats, offset 0),
// attribute 1 = texcoord (2 floats, offset 3 floats).
var quadVertexLayout = core.VertexLayout{
	Stride: floatsPerVertex * 4,
	Attributes: []core.VertexAttrib{
		{Location: 0, Size: 3, Type: core.AttribFloat32, Offset: 0},
		{Location: 1, Size: 2, Type: core.AttribFloat32, Offset: 3 * 4},
	},
}

// twoQuadVertices is the interleaved data for both quads: the flat one on
// the left, the wave one on the right.
func twoQuadVertices() []float32 {
	return []float32{
		//  X,    Y,   Z,   U, V
		-0.9, 0.5, 0.0, 0, 1, // flat top-left
		-0.9, 0.0, 0.0, 0, 0, // flat bottom-left
		-0.5, 0.0, 0.0, 1, 0, // flat bottom-right
		-0.5, 0.5, 0.0, 1, 1, // flat top-right

		0.5, 0.5, 0.0, 0, 1, // wave top-left
		0.5, 0.0, 0.0, 0, 0, // wave bottom-left
		0.9, 0.0, 0.0, 1, 0, // wave bottom-right
		0.9, 0.5, 0.0, 1, 1, // wave top-right
	}
}

// twoQuadIndices: two triangles per quad. The first six indices reference
// only vertices 0..3, the last six only 4..7; the quads never share a vertex.
func twoQuadIndices() []uint32 {
	return []uint32{
		0, 1, 2, 0, 2, 3,
		4, 5, 6, 4, 6, 7,
	}
}
