package geometry

// Segment is one iso-line segment in field grid coordinates.
type Segment struct {
	X0, Y0, X1, Y1 float64
}

// IsoSegments extracts the iso-value contour of a sampled 2-D field
// using marching squares with linear interpolation along cell edges.
// The ambiguous saddle cases (5 and 10) are split by the cell-center
// average, which keeps contours consistent across adjacent cells.
func IsoSegments(field [][]float64, iso float64) []Segment {
	ny := len(field)
	if ny < 2 {
		return nil
	}
	nx := len(field[0])
	if nx < 2 {
		return nil
	}

	// Edge interpolators return the crossing point on each cell edge.
	lerp := func(a, b float64) float64 {
		if b == a {
			return 0.5
		}
		return (iso - a) / (b - a)
	}

	var segments []Segment
	for j := 0; j < ny-1; j++ {
		for i := 0; i < nx-1; i++ {
			// Corner values: tl, tr, br, bl.
			tl := field[j][i]
			tr := field[j][i+1]
			br := field[j+1][i+1]
			bl := field[j+1][i]

			var caseIdx int
			if tl >= iso {
				caseIdx |= 8
			}
			if tr >= iso {
				caseIdx |= 4
			}
			if br >= iso {
				caseIdx |= 2
			}
			if bl >= iso {
				caseIdx |= 1
			}
			if caseIdx == 0 || caseIdx == 15 {
				continue
			}

			x := float64(i)
			y := float64(j)
			top := [2]float64{x + lerp(tl, tr), y}
			right := [2]float64{x + 1, y + lerp(tr, br)}
			bottom := [2]float64{x + lerp(bl, br), y + 1}
			left := [2]float64{x, y + lerp(tl, bl)}

			add := func(a, b [2]float64) {
				segments = append(segments, Segment{a[0], a[1], b[0], b[1]})
			}

			switch caseIdx {
			case 1, 14:
				add(left, bottom)
			case 2, 13:
				add(bottom, right)
			case 3, 12:
				add(left, right)
			case 4, 11:
				add(top, right)
			case 6, 9:
				add(top, bottom)
			case 7, 8:
				add(left, top)
			case 5, 10:
				center := (tl + tr + br + bl) / 4
				connected := (center >= iso) == (caseIdx == 5)
				if connected {
					add(left, top)
					add(bottom, right)
				} else {
					add(left, bottom)
					add(top, right)
				}
			}
		}
	}
	return segments
}

// ContourRibbon extrudes iso-line segments vertically into a quad
// ribbon mesh, mapping grid coordinates to the XZ plane spanning
// [x0,x1] x [y0,y1]. The ribbon sits between y=0 and y=height.
func ContourRibbon(field [][]float64, iso float64, x0, x1, y0, y1, height float64) *Mesh {
	ny := len(field)
	if ny < 2 {
		return &Mesh{}
	}
	nx := len(field[0])

	segments := IsoSegments(field, iso)
	m := &Mesh{}
	mapX := func(g float64) float32 { return float32(x0 + (x1-x0)*g/float64(nx-1)) }
	mapZ := func(g float64) float32 { return float32(y0 + (y1-y0)*g/float64(ny-1)) }

	for _, seg := range segments {
		base := uint32(m.VertexCount())
		m.Positions = append(m.Positions,
			mapX(seg.X0), 0, mapZ(seg.Y0),
			mapX(seg.X1), 0, mapZ(seg.Y1),
			mapX(seg.X1), float32(height), mapZ(seg.Y1),
			mapX(seg.X0), float32(height), mapZ(seg.Y0),
		)
		m.Indices = append(m.Indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
	}
	m.ComputeNormals()
	return m
}
