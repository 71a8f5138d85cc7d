package render

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"math"
	"sort"

	"github.com/go-weft/weft/pkg/geometry"
)

// Actor places a mesh in a scene with a display color.
type Actor struct {
	Mesh    *geometry.Mesh
	Color   color.RGBA
	Visible bool
}

// DefaultActorColor is the fallback surface color for actors whose
// example does not pick one.
var DefaultActorColor = color.RGBA{R: 217, G: 95, B: 2, A: 255}

// NewActor returns a visible actor.
func NewActor(mesh *geometry.Mesh, c color.RGBA) *Actor {
	return &Actor{Mesh: mesh, Color: c, Visible: true}
}

// Scene is a renderable set of actors.
type Scene struct {
	Background color.RGBA
	Actors     []*Actor
}

// Bounds returns the center and radius of the bounding sphere over all
// visible actors.
func (s *Scene) Bounds() (Vec3, float64) {
	var lo, hi [3]float32
	first := true
	for _, a := range s.Actors {
		if !a.Visible || a.Mesh.VertexCount() == 0 {
			continue
		}
		amin, amax := a.Mesh.Bounds()
		if first {
			lo, hi = amin, amax
			first = false
			continue
		}
		for i := 0; i < 3; i++ {
			if amin[i] < lo[i] {
				lo[i] = amin[i]
			}
			if amax[i] > hi[i] {
				hi[i] = amax[i]
			}
		}
	}
	if first {
		return Vec3{}, 1
	}
	center := Vec3{
		float64(lo[0]+hi[0]) / 2,
		float64(lo[1]+hi[1]) / 2,
		float64(lo[2]+hi[2]) / 2,
	}
	radius := Vec3{
		float64(hi[0]) - center.X,
		float64(hi[1]) - center.Y,
		float64(hi[2]) - center.Z,
	}.Length()
	if radius == 0 {
		radius = 1
	}
	return center, radius
}

// ResetCamera returns a camera framing the whole scene.
func (s *Scene) ResetCamera() Camera {
	center, radius := s.Bounds()
	return FitCamera(center, radius)
}

type screenTriangle struct {
	pts   [3][2]float64
	depth float64
	col   color.RGBA
}

// Render rasterizes the scene from the given camera into an RGBA
// image. Triangles are painter-sorted back to front and flat-shaded by
// a single headlight at the eye.
func Render(scene *Scene, camera Camera, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	bg := scene.Background
	if bg.A == 0 {
		bg = color.RGBA{32, 32, 38, 255}
	}
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = bg.R
		img.Pix[i+1] = bg.G
		img.Pix[i+2] = bg.B
		img.Pix[i+3] = 255
	}

	forward := camera.Target.Sub(camera.Eye).Normalize()
	right := forward.Cross(camera.Up).Normalize()
	up := right.Cross(forward)
	fovScale := math.Tan(camera.FOV / 2 * math.Pi / 180)
	aspect := float64(width) / float64(height)

	project := func(p Vec3) ([2]float64, float64, bool) {
		rel := p.Sub(camera.Eye)
		z := rel.Dot(forward)
		if z < 1e-4 {
			return [2]float64{}, 0, false
		}
		x := rel.Dot(right) / (z * fovScale * aspect)
		y := rel.Dot(up) / (z * fovScale)
		sx := (x + 1) / 2 * float64(width)
		sy := (1 - y) / 2 * float64(height)
		return [2]float64{sx, sy}, z, true
	}

	var tris []screenTriangle
	light := forward.Scale(-1)
	for _, actor := range scene.Actors {
		if !actor.Visible || actor.Mesh == nil {
			continue
		}
		mesh := actor.Mesh
		for t := 0; t < mesh.TriangleCount(); t++ {
			var pts [3][2]float64
			var world [3]Vec3
			depth := 0.0
			ok := true
			for v := 0; v < 3; v++ {
				idx := mesh.Indices[t*3+v]
				p := Vec3{
					float64(mesh.Positions[idx*3]),
					float64(mesh.Positions[idx*3+1]),
					float64(mesh.Positions[idx*3+2]),
				}
				world[v] = p
				pt, z, visible := project(p)
				if !visible {
					ok = false
					break
				}
				pts[v] = pt
				depth += z
			}
			if !ok {
				continue
			}
			normal := world[1].Sub(world[0]).Cross(world[2].Sub(world[0])).Normalize()
			// Both faces lit: examples orbit freely around open meshes.
			shade := math.Abs(normal.Dot(light))
			shade = 0.25 + 0.75*shade
			tris = append(tris, screenTriangle{
				pts:   pts,
				depth: depth / 3,
				col: color.RGBA{
					uint8(float64(actor.Color.R) * shade),
					uint8(float64(actor.Color.G) * shade),
					uint8(float64(actor.Color.B) * shade),
					255,
				},
			})
		}
	}

	sort.Slice(tris, func(i, j int) bool { return tris[i].depth > tris[j].depth })
	for _, tri := range tris {
		fillTriangle(img, tri)
	}
	return img
}

// fillTriangle rasterizes one screen triangle with edge functions over
// its bounding box.
func fillTriangle(img *image.RGBA, tri screenTriangle) {
	bounds := img.Bounds()
	minX := int(math.Floor(min3(tri.pts[0][0], tri.pts[1][0], tri.pts[2][0])))
	maxX := int(math.Ceil(max3(tri.pts[0][0], tri.pts[1][0], tri.pts[2][0])))
	minY := int(math.Floor(min3(tri.pts[0][1], tri.pts[1][1], tri.pts[2][1])))
	maxY := int(math.Ceil(max3(tri.pts[0][1], tri.pts[1][1], tri.pts[2][1])))
	if minX < bounds.Min.X {
		minX = bounds.Min.X
	}
	if minY < bounds.Min.Y {
		minY = bounds.Min.Y
	}
	if maxX > bounds.Max.X-1 {
		maxX = bounds.Max.X - 1
	}
	if maxY > bounds.Max.Y-1 {
		maxY = bounds.Max.Y - 1
	}

	edge := func(ax, ay, bx, by, px, py float64) float64 {
		return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
	}
	a, b, c := tri.pts[0], tri.pts[1], tri.pts[2]
	area := edge(a[0], a[1], b[0], b[1], c[0], c[1])
	if area == 0 {
		return
	}

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px := float64(x) + 0.5
			py := float64(y) + 0.5
			w0 := edge(b[0], b[1], c[0], c[1], px, py)
			w1 := edge(c[0], c[1], a[0], a[1], px, py)
			w2 := edge(a[0], a[1], b[0], b[1], px, py)
			if (w0 >= 0 && w1 >= 0 && w2 >= 0 && area > 0) ||
				(w0 <= 0 && w1 <= 0 && w2 <= 0 && area < 0) {
				img.SetRGBA(x, y, tri.col)
			}
		}
	}
}

func min3(a, b, c float64) float64 { return math.Min(a, math.Min(b, c)) }
func max3(a, b, c float64) float64 { return math.Max(a, math.Max(b, c)) }

// EncodePNG returns the PNG bytes of an image.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DataURL returns the image as a data: URL for state-carried images.
func DataURL(img image.Image) (string, error) {
	data, err := EncodePNG(img)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(data), nil
}
