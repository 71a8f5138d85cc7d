package geometry

import "math"

// Cone builds a cone of the given side resolution, apex on +X, base
// centered at the origin, matching the classic demo pipeline. The
// minimum usable resolution is 3.
func Cone(resolution int) *Mesh {
	if resolution < 3 {
		resolution = 3
	}
	const (
		height = 1.0
		radius = 0.5
	)
	m := &Mesh{}
	// Apex, then base ring, then base center.
	m.Positions = append(m.Positions, height/2, 0, 0)
	for i := 0; i < resolution; i++ {
		angle := 2 * math.Pi * float64(i) / float64(resolution)
		m.Positions = append(m.Positions,
			-height/2,
			float32(radius*math.Cos(angle)),
			float32(radius*math.Sin(angle)),
		)
	}
	m.Positions = append(m.Positions, -height/2, 0, 0)
	centerIdx := uint32(resolution + 1)

	for i := 0; i < resolution; i++ {
		a := uint32(i + 1)
		b := uint32((i+1)%resolution + 1)
		// Side triangle and base triangle.
		m.Indices = append(m.Indices, 0, a, b)
		m.Indices = append(m.Indices, centerIdx, b, a)
	}
	m.ComputeNormals()
	return m
}

// Sphere builds a UV sphere with the given latitude and longitude
// segment counts.
func Sphere(latSegments, lonSegments int, radius float64) *Mesh {
	if latSegments < 2 {
		latSegments = 2
	}
	if lonSegments < 3 {
		lonSegments = 3
	}
	m := &Mesh{}
	for lat := 0; lat <= latSegments; lat++ {
		theta := math.Pi * float64(lat) / float64(latSegments)
		for lon := 0; lon <= lonSegments; lon++ {
			phi := 2 * math.Pi * float64(lon) / float64(lonSegments)
			m.Positions = append(m.Positions,
				float32(radius*math.Sin(theta)*math.Cos(phi)),
				float32(radius*math.Cos(theta)),
				float32(radius*math.Sin(theta)*math.Sin(phi)),
			)
		}
	}
	stride := uint32(lonSegments + 1)
	for lat := 0; lat < latSegments; lat++ {
		for lon := 0; lon < lonSegments; lon++ {
			a := uint32(lat)*stride + uint32(lon)
			b := a + stride
			m.Indices = append(m.Indices, a, b, a+1, a+1, b, b+1)
		}
	}
	m.ComputeNormals()
	return m
}

// ScalarField2D samples f over a regular nx by ny grid spanning
// [x0,x1] x [y0,y1].
func ScalarField2D(f func(x, y float64) float64, nx, ny int, x0, x1, y0, y1 float64) [][]float64 {
	field := make([][]float64, ny)
	for j := 0; j < ny; j++ {
		row := make([]float64, nx)
		y := y0 + (y1-y0)*float64(j)/float64(ny-1)
		for i := 0; i < nx; i++ {
			x := x0 + (x1-x0)*float64(i)/float64(nx-1)
			row[i] = f(x, y)
		}
		field[j] = row
	}
	return field
}

// FieldRange returns the minimum and maximum of a sampled field.
func FieldRange(field [][]float64) (min, max float64) {
	first := true
	for _, row := range field {
		for _, v := range row {
			if first {
				min, max = v, v
				first = false
				continue
			}
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	return
}

// Heightfield builds a surface mesh from a sampled 2-D field, mapping
// grid coordinates to the XZ plane and values to Y.
func Heightfield(field [][]float64, x0, x1, y0, y1 float64) *Mesh {
	ny := len(field)
	if ny < 2 {
		return &Mesh{}
	}
	nx := len(field[0])
	if nx < 2 {
		return &Mesh{}
	}
	m := &Mesh{}
	for j := 0; j < ny; j++ {
		z := y0 + (y1-y0)*float64(j)/float64(ny-1)
		for i := 0; i < nx; i++ {
			x := x0 + (x1-x0)*float64(i)/float64(nx-1)
			m.Positions = append(m.Positions, float32(x), float32(field[j][i]), float32(z))
		}
	}
	stride := uint32(nx)
	for j := 0; j < ny-1; j++ {
		for i := 0; i < nx-1; i++ {
			a := uint32(j)*stride + uint32(i)
			b := a + stride
			m.Indices = append(m.Indices, a, b, a+1, a+1, b, b+1)
		}
	}
	m.ComputeNormals()
	return m
}
