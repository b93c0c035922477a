package renderer

import (
	"image"
	"strings"
	"testing"
	"time"

	"github.com/df07/go-interactive-raytracer/pkg/integrator"
)

func TestFrameStatsTable(t *testing.T) {
	stats := FrameStats{
		Scene:       "cornell",
		Mode:        integrator.Pathtracing,
		Width:       4,
		Height:      4,
		SampleCount: 2,
		Bands: []BandStat{
			{Bounds: image.Rect(0, 0, 4, 2), Pixels: 8, Samples: 16, RenderTime: time.Millisecond},
			{Bounds: image.Rect(0, 2, 4, 4), Pixels: 8, Samples: 16, RenderTime: 2 * time.Millisecond},
		},
		RenderTime: 3 * time.Millisecond,
	}

	if stats.TotalSamples() != 32 {
		t.Errorf("TotalSamples() = %d, want 32", stats.TotalSamples())
	}
	if sps := stats.SamplesPerSecond(); sps < 10666 || sps > 10667 {
		t.Errorf("SamplesPerSecond() = %f", sps)
	}

	table := stats.Table()
	for _, want := range []string{"Band", "Render time", "cornell", "pathtracing", "50.0 %", "0-1", "2-3", "TOTAL", "3ms"} {
		if !strings.Contains(table, want) {
			t.Errorf("table missing %q:\n%s", want, table)
		}
	}
}

func TestFrameStatsEmpty(t *testing.T) {
	var stats FrameStats
	if stats.SamplesPerSecond() != 0 {
		t.Error("empty stats should report zero throughput")
	}
	if stats.Table() == "" {
		t.Error("empty stats should still render a header")
	}
}
