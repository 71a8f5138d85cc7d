// Package geometry builds the triangle meshes the 3-D examples render,
// either server-side (rasterized to frames) or client-side (pushed as
// binary payloads).
package geometry

import "math"

// Mesh is an indexed triangle mesh. Positions and Normals are packed
// xyz triples; Indices reference vertices in groups of three.
type Mesh struct {
	Positions []float32 `cbor:"positions" json:"positions"`
	Normals   []float32 `cbor:"normals" json:"normals"`
	Indices   []uint32  `cbor:"indices" json:"indices"`
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.Positions) / 3 }

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int { return len(m.Indices) / 3 }

// Bounds returns the axis-aligned min and max corners of the mesh.
func (m *Mesh) Bounds() (min, max [3]float32) {
	if m.VertexCount() == 0 {
		return
	}
	for i := 0; i < 3; i++ {
		min[i] = m.Positions[i]
		max[i] = m.Positions[i]
	}
	for v := 1; v < m.VertexCount(); v++ {
		for i := 0; i < 3; i++ {
			p := m.Positions[v*3+i]
			if p < min[i] {
				min[i] = p
			}
			if p > max[i] {
				max[i] = p
			}
		}
	}
	return
}

// Center returns the centroid of the bounding box.
func (m *Mesh) Center() [3]float32 {
	min, max := m.Bounds()
	return [3]float32{(min[0] + max[0]) / 2, (min[1] + max[1]) / 2, (min[2] + max[2]) / 2}
}

// ComputeNormals replaces the mesh normals with area-weighted vertex
// normals derived from the triangle faces.
func (m *Mesh) ComputeNormals() {
	normals := make([]float32, len(m.Positions))
	for t := 0; t < m.TriangleCount(); t++ {
		i0, i1, i2 := m.Indices[t*3], m.Indices[t*3+1], m.Indices[t*3+2]
		a := m.vertex(i0)
		b := m.vertex(i1)
		c := m.vertex(i2)
		// Cross product of the two edges; magnitude carries the
		// area weighting.
		e1 := [3]float32{b[0] - a[0], b[1] - a[1], b[2] - a[2]}
		e2 := [3]float32{c[0] - a[0], c[1] - a[1], c[2] - a[2]}
		n := [3]float32{
			e1[1]*e2[2] - e1[2]*e2[1],
			e1[2]*e2[0] - e1[0]*e2[2],
			e1[0]*e2[1] - e1[1]*e2[0],
		}
		for _, idx := range []uint32{i0, i1, i2} {
			normals[idx*3] += n[0]
			normals[idx*3+1] += n[1]
			normals[idx*3+2] += n[2]
		}
	}
	for v := 0; v < len(normals); v += 3 {
		length := float32(math.Sqrt(float64(normals[v]*normals[v] + normals[v+1]*normals[v+1] + normals[v+2]*normals[v+2])))
		if length > 0 {
			normals[v] /= length
			normals[v+1] /= length
			normals[v+2] /= length
		}
	}
	m.Normals = normals
}

func (m *Mesh) vertex(i uint32) [3]float32 {
	return [3]float32{m.Positions[i*3], m.Positions[i*3+1], m.Positions[i*3+2]}
}
