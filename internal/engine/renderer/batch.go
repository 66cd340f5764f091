package renderer

import (
	"github.com/Faultbox/crosscut/internal/engine/chain"
	"github.com/Faultbox/crosscut/pkg/color"
	"github.com/Faultbox/crosscut/pkg/math"
)

// floatsPerVertex is the interleaved layout: x, y, r, g, b, a.
const floatsPerVertex = 6

// Batch collects colored chain triangles for one frame.
type Batch struct {
	vertices []float32
	scratch  []math.Vec2
}

// NewBatch creates an empty batch.
func NewBatch() *Batch {
	return &Batch{vertices: make([]float32, 0, 4096)}
}

// Reset empties the batch, keeping its storage.
func (b *Batch) Reset() {
	b.vertices = b.vertices[:0]
}

// DrawChain tessellates the chain and queues its triangles.
func (b *Batch) DrawChain(points []math.Vec2, width float32, c color.Color, segments int) {
	b.scratch = chain.Tessellate(b.scratch[:0], points, width, segments)
	for _, p := range b.scratch {
		b.vertices = append(b.vertices, p.X, p.Y, c.R, c.G, c.B, c.A)
	}
}

// VertexCount returns the number of queued vertices.
func (b *Batch) VertexCount() int {
	return len(b.vertices) / floatsPerVertex
}

// Vertices returns the interleaved vertex data.
func (b *Batch) Vertices() []float32 {
	return b.vertices
}
