package renderer

import (
	"image"
	"testing"

	"github.com/df07/go-interactive-raytracer/pkg/integrator"
)

func TestNewRowBands(t *testing.T) {
	tests := []struct {
		name       string
		height     int
		bandHeight int
		bands      int
	}{
		{"exact", 8, 2, 4},
		{"remainder", 10, 3, 4},
		{"single", 5, 10, 1},
		{"zero band height", 3, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tiles := NewRowBands(7, tt.height, tt.bandHeight)
			if len(tiles) != tt.bands {
				t.Fatalf("got %d bands, want %d", len(tiles), tt.bands)
			}

			next := 0
			for i, tile := range tiles {
				if tile.Index != i {
					t.Errorf("band %d has index %d", i, tile.Index)
				}
				if tile.Bounds.Min.Y != next || tile.Bounds.Min.X != 0 || tile.Bounds.Max.X != 7 {
					t.Errorf("band %d bounds %v", i, tile.Bounds)
				}
				next = tile.Bounds.Max.Y
			}
			if next != tt.height {
				t.Errorf("bands end at row %d, want %d", next, tt.height)
			}
		})
	}
}

func TestRenderTileBoundsWritesOnlyItsTile(t *testing.T) {
	job := createPixelJob(t, 1, integrator.Normals, 1)
	buf := NewPixelBuffer(job.Width, job.Height)
	tr := NewTileRenderer(job, buf)

	bounds := image.Rect(0, 2, job.Width, 5)
	stat := tr.RenderTileBounds(bounds)

	if stat.Pixels != bounds.Dx()*bounds.Dy() || stat.Samples != stat.Pixels {
		t.Errorf("unexpected stats %+v", stat)
	}
	for y := 0; y < job.Height; y++ {
		for x := 0; x < job.Width; x++ {
			inside := image.Pt(x, y).In(bounds)
			alpha := buf.At(x, y).A
			if inside && alpha != 255 {
				t.Errorf("pixel (%d,%d) inside the tile was not written", x, y)
			}
			if !inside && alpha != 0 {
				t.Errorf("pixel (%d,%d) outside the tile was written", x, y)
			}
			if inside && buf.At(x, y) != RenderPixel(job, x, y) {
				t.Errorf("pixel (%d,%d) differs from RenderPixel", x, y)
			}
		}
	}
}
