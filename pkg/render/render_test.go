package render_test

import (
	"bytes"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/go-weft/weft/pkg/geometry"
	"github.com/go-weft/weft/pkg/render"
)

func coneScene() *render.Scene {
	return &render.Scene{
		Background: color.RGBA{10, 10, 10, 255},
		Actors: []*render.Actor{
			render.NewActor(geometry.Cone(16), color.RGBA{200, 60, 60, 255}),
		},
	}
}

func TestRenderProducesForegroundPixels(t *testing.T) {
	scene := coneScene()
	img := render.Render(scene, scene.ResetCamera(), 160, 120)

	foreground := 0
	for y := 0; y < 120; y++ {
		for x := 0; x < 160; x++ {
			c := img.RGBAAt(x, y)
			if c.R > 30 {
				foreground++
			}
		}
	}
	if foreground == 0 {
		t.Fatal("rendered frame contains no foreground pixels")
	}
	// The cone should cover a meaningful share of the frame, not a sliver.
	if foreground < 160*120/100 {
		t.Errorf("cone covers only %d pixels", foreground)
	}
}

func TestRenderReactsToResolution(t *testing.T) {
	low := &render.Scene{Actors: []*render.Actor{render.NewActor(geometry.Cone(3), color.RGBA{200, 60, 60, 255})}}
	high := &render.Scene{Actors: []*render.Actor{render.NewActor(geometry.Cone(48), color.RGBA{200, 60, 60, 255})}}

	cam := low.ResetCamera()
	a := render.Render(low, cam, 120, 90)
	b := render.Render(high, cam, 120, 90)

	if bytes.Equal(a.Pix, b.Pix) {
		t.Error("frames for different resolutions are identical")
	}
}

func TestInvisibleActorSkipped(t *testing.T) {
	scene := coneScene()
	scene.Actors[0].Visible = false
	img := render.Render(scene, render.DefaultCamera(), 64, 64)
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] != scene.Background.R {
			t.Fatal("invisible actor left pixels in the frame")
		}
	}
}

func TestEncodePNG(t *testing.T) {
	scene := coneScene()
	img := render.Render(scene, scene.ResetCamera(), 64, 64)
	data, err := render.EncodePNG(img)
	if err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding produced PNG: %v", err)
	}
	if decoded.Bounds().Dx() != 64 {
		t.Errorf("decoded width = %d, want 64", decoded.Bounds().Dx())
	}
}

func TestDataURLPrefix(t *testing.T) {
	scene := coneScene()
	img := render.Render(scene, scene.ResetCamera(), 16, 16)
	url, err := render.DataURL(img)
	if err != nil {
		t.Fatalf("DataURL: %v", err)
	}
	if !strings.HasPrefix(url, "data:image/png;base64,") {
		t.Errorf("unexpected data URL prefix: %.40s", url)
	}
}

func TestOrbitKeepsDistance(t *testing.T) {
	cam := render.DefaultCamera()
	before := cam.Eye.Sub(cam.Target).Length()
	orbited := cam.Orbit(0.5, 0.25)
	after := orbited.Eye.Sub(orbited.Target).Length()
	if diff := before - after; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("orbit changed camera distance: %v -> %v", before, after)
	}
}

func TestPlotRender(t *testing.T) {
	p := &render.Plot{
		Title:  "Moving Window Average",
		XLabel: "t",
		Series: []render.Series{
			{X: []float64{0, 1, 2, 3}, Y: []float64{0, 1, 0, 1}},
			{X: []float64{0, 1, 2, 3}, Y: []float64{1, 1, 1, 1}, Dots: true, Color: color.RGBA{200, 30, 0, 255}},
		},
	}
	img := p.Render(320, 240)

	nonWhite := 0
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 255 || img.Pix[i+1] != 255 || img.Pix[i+2] != 255 {
			nonWhite++
		}
	}
	if nonWhite == 0 {
		t.Fatal("plot rendered nothing")
	}
}

func TestPlotEmptySeriesStillRenders(t *testing.T) {
	p := &render.Plot{Title: "empty"}
	img := p.Render(100, 80)
	if img.Bounds().Dx() != 100 {
		t.Errorf("width = %d, want 100", img.Bounds().Dx())
	}
}
