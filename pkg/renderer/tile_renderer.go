package renderer

import (
	"image"
	"time"

	"github.com/df07/go-interactive-raytracer/pkg/core"
)

// Tile is a disjoint rectangle of the frame owned by exactly one task
type Tile struct {
	Index  int
	Bounds image.Rectangle
}

// NewRowBands splits a frame into full-width bands of at most bandHeight rows
func NewRowBands(width, height, bandHeight int) []Tile {
	bandHeight = max(1, bandHeight)
	tiles := make([]Tile, 0, (height+bandHeight-1)/bandHeight)
	for y := 0; y < height; y += bandHeight {
		tiles = append(tiles, Tile{
			Index:  len(tiles),
			Bounds: image.Rect(0, y, width, min(y+bandHeight, height)),
		})
	}
	return tiles
}

// TileRenderer renders pixels of a single frame into a shared buffer
type TileRenderer struct {
	job    PixelJob
	buffer *PixelBuffer
}

// NewTileRenderer creates a tile renderer writing into buffer
func NewTileRenderer(job PixelJob, buffer *PixelBuffer) *TileRenderer {
	return &TileRenderer{job: job, buffer: buffer}
}

// RenderTileBounds renders every pixel inside bounds. Tiles never overlap,
// so concurrent calls on distinct tiles need no locking.
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle) BandStat {
	start := time.Now()
	sampler := core.NewPixelSampler(tr.job.Seed, bounds.Min.X, bounds.Min.Y, 0)

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			c := samplePixel(tr.job, i, j, sampler)
			tr.buffer.Set(i, j, ToRGBA(c, tr.job.Mode))
		}
	}

	pixels := bounds.Dx() * bounds.Dy()
	return BandStat{
		Bounds:     bounds,
		Pixels:     pixels,
		Samples:    pixels * tr.job.SampleCount,
		RenderTime: time.Since(start),
	}
}
