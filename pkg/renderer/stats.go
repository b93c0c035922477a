package renderer

import (
	"bytes"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-interactive-raytracer/pkg/integrator"
	"github.com/olekukonko/tablewriter"
)

// BandStat describes the work done for one tile
type BandStat struct {
	Bounds     image.Rectangle
	Pixels     int
	Samples    int
	RenderTime time.Duration
}

// FrameStats contains statistics about one rendered frame
type FrameStats struct {
	Scene       string
	Mode        integrator.Mode
	Width       int
	Height      int
	SampleCount int
	Workers     int

	// Per-band stats in band order.
	Bands []BandStat

	// Total render time for the entire frame, including scene resolution.
	RenderTime time.Duration
}

// TotalSamples returns the number of camera samples taken for the frame
func (fs FrameStats) TotalSamples() int {
	total := 0
	for _, band := range fs.Bands {
		total += band.Samples
	}
	return total
}

// SamplesPerSecond returns the sampling throughput of the frame
func (fs FrameStats) SamplesPerSecond() float64 {
	if fs.RenderTime <= 0 {
		return 0
	}
	return float64(fs.TotalSamples()) / fs.RenderTime.Seconds()
}

// Table formats the per-band stats as a text table
func (fs FrameStats) Table() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Band", "Rows", "Pixels", "Samples", "% of frame", "Render time"})

	framePixels := fs.Width * fs.Height
	for i, band := range fs.Bands {
		percent := 0.0
		if framePixels > 0 {
			percent = 100 * float64(band.Pixels) / float64(framePixels)
		}
		table.Append([]string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%d-%d", band.Bounds.Min.Y, band.Bounds.Max.Y-1),
			fmt.Sprintf("%d", band.Pixels),
			fmt.Sprintf("%d", band.Samples),
			fmt.Sprintf("%02.1f %%", percent),
			band.RenderTime.String(),
		})
	}
	table.SetFooter([]string{
		fs.Scene,
		fs.Mode.String(),
		fmt.Sprintf("%dx%d", fs.Width, fs.Height),
		fmt.Sprintf("%d", fs.TotalSamples()),
		"TOTAL",
		fs.RenderTime.String(),
	})

	table.Render()
	return buf.String()
}
