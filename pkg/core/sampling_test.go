package core

import (
	"math"
	"testing"
)

func TestPixelSeed_Deterministic(t *testing.T) {
	a1, a2 := PixelSeed(42, 3, 7, 11)
	b1, b2 := PixelSeed(42, 3, 7, 11)
	if a1 != b1 || a2 != b2 {
		t.Errorf("Expected identical seeds for identical inputs, got (%d,%d) and (%d,%d)", a1, a2, b1, b2)
	}
}

func TestPixelSeed_DistinctInputs(t *testing.T) {
	base1, base2 := PixelSeed(42, 3, 7, 11)

	tests := []struct {
		name                string
		seed                uint64
		x, y, sampleIndex int
	}{
		{"different seed", 43, 3, 7, 11},
		{"different x", 42, 4, 7, 11},
		{"different y", 42, 3, 8, 11},
		{"different sample", 42, 3, 7, 12},
		{"swapped coordinates", 42, 7, 3, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s1, s2 := PixelSeed(tt.seed, tt.x, tt.y, tt.sampleIndex)
			if s1 == base1 && s2 == base2 {
				t.Errorf("Expected a different seed for %s", tt.name)
			}
		})
	}
}

func TestRandomSampler_ReseedReproducesStream(t *testing.T) {
	fresh := NewPixelSampler(7, 1, 2, 3)
	want := []float64{fresh.Get1D(), fresh.Get1D(), fresh.Get1D()}

	reused := NewRandomSampler(0, 0)
	reused.Get1D()
	reused.Reseed(7, 1, 2, 3)
	for i, w := range want {
		if got := reused.Get1D(); got != w {
			t.Errorf("Draw %d: expected %v after reseed, got %v", i, w, got)
		}
	}
}

func TestRandomSampler_Range(t *testing.T) {
	sampler := NewRandomSampler(1, 2)
	for i := 0; i < 1000; i++ {
		v := sampler.Get2D()
		if v.X < 0 || v.X >= 1 || v.Y < 0 || v.Y >= 1 {
			t.Fatalf("Sample %d out of [0,1): %v", i, v)
		}
	}
}

func TestSampleCosineHemisphere_AboveSurface(t *testing.T) {
	normals := []Vec3{
		NewVec3(0, 1, 0),
		NewVec3(1, 0, 0),
		NewVec3(0, 0, -1),
		NewVec3(1, 1, 1).Normalize(),
	}
	sampler := NewRandomSampler(3, 4)

	for _, normal := range normals {
		for i := 0; i < 200; i++ {
			dir := SampleCosineHemisphere(normal, sampler.Get2D())
			if dir.Dot(normal) < -1e-9 {
				t.Fatalf("Direction %v below surface with normal %v", dir, normal)
			}
			if math.Abs(dir.Length()-1) > 1e-9 {
				t.Fatalf("Direction %v is not unit length", dir)
			}
		}
	}
}

func TestSampleCosineHemisphere_MeanCosine(t *testing.T) {
	// E[cos θ] for a cosine-weighted hemisphere is 2/3
	normal := NewVec3(0, 0, 1)
	sampler := NewRandomSampler(5, 6)
	const n = 20000

	sum := 0.0
	for i := 0; i < n; i++ {
		sum += SampleCosineHemisphere(normal, sampler.Get2D()).Dot(normal)
	}
	mean := sum / n
	if math.Abs(mean-2.0/3.0) > 0.01 {
		t.Errorf("Expected mean cosine near 0.667, got %f", mean)
	}
}

func TestSamplePointInUnitSphere_Inside(t *testing.T) {
	sampler := NewRandomSampler(8, 9)
	for i := 0; i < 1000; i++ {
		p := SamplePointInUnitSphere(sampler.Get3D())
		if p.Length() > 1+1e-9 {
			t.Fatalf("Point %v outside unit sphere", p)
		}
	}
}
