// Package render is the minimal software rasterizer behind the
// remote-rendering examples: it turns scenes of triangle meshes into
// PNG frames on the server. It is intentionally small — flat shading,
// painter's algorithm, no textures — because real rendering engines are
// out of scope; the examples only need recognizable frames that react
// to state.
package render

import "math"

// Vec3 is a 3-component vector.
type Vec3 struct {
	X, Y, Z float64
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Dot returns the dot product.
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the cross product.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the vector magnitude.
func (v Vec3) Length() float64 { return math.Sqrt(v.Dot(v)) }

// Normalize returns the unit vector, or the zero vector unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Camera is a perspective camera.
type Camera struct {
	// Eye is the camera position.
	Eye Vec3
	// Target is the look-at point.
	Target Vec3
	// Up is the view-up direction.
	Up Vec3
	// FOV is the vertical field of view in degrees.
	FOV float64
}

// DefaultCamera looks at the origin from +Z.
func DefaultCamera() Camera {
	return Camera{
		Eye:    Vec3{0, 0, 3},
		Target: Vec3{},
		Up:     Vec3{0, 1, 0},
		FOV:    30,
	}
}

// FitCamera positions a camera to frame a bounding sphere of the given
// center and radius, viewing from an oblique angle like the classic
// reset-camera behavior.
func FitCamera(center Vec3, radius float64) Camera {
	if radius <= 0 {
		radius = 1
	}
	fov := 30.0
	distance := radius / math.Tan(fov/2*math.Pi/180) * 1.4
	direction := Vec3{0.4, 0.35, 1}.Normalize()
	return Camera{
		Eye:    center.Add(direction.Scale(distance)),
		Target: center,
		Up:     Vec3{0, 1, 0},
		FOV:    fov,
	}
}

// Orbit returns a copy of the camera rotated around the target by the
// given azimuth and elevation deltas in radians. Used to apply client
// interaction events to server-side cameras.
func (c Camera) Orbit(azimuth, elevation float64) Camera {
	offset := c.Eye.Sub(c.Target)
	radius := offset.Length()
	theta := math.Atan2(offset.X, offset.Z) + azimuth
	phi := math.Acos(clamp(offset.Y/radius, -1, 1)) + elevation
	phi = clamp(phi, 0.05, math.Pi-0.05)

	c.Eye = c.Target.Add(Vec3{
		radius * math.Sin(phi) * math.Sin(theta),
		radius * math.Cos(phi),
		radius * math.Sin(phi) * math.Cos(theta),
	})
	return c
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
