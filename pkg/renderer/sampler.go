package renderer

import (
	"image/color"

	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/geometry"
	"github.com/df07/go-interactive-raytracer/pkg/integrator"
	"github.com/df07/go-interactive-raytracer/pkg/scene"
)

// Gamma is applied to the radiance modes before quantization.
// Normals are written linearly so that the remapped normal survives unchanged.
const Gamma = 2.0

// PixelJob describes everything needed to render one pixel
type PixelJob struct {
	Integrator  *integrator.Integrator
	Scene       *scene.Scene
	Camera      *geometry.Camera
	Mode        integrator.Mode
	Width       int
	Height      int
	SampleCount int
	Seed        uint64
}

// RenderPixel averages SampleCount jittered samples of pixel (x, y) and
// quantizes the result. The result is a pure function of the job and the
// pixel coordinates.
func RenderPixel(job PixelJob, x, y int) color.RGBA {
	sampler := core.NewPixelSampler(job.Seed, x, y, 0)
	return ToRGBA(samplePixel(job, x, y, sampler), job.Mode)
}

// samplePixel returns the mean linear color of pixel (x, y). The sampler is
// reseeded for every sample, so its previous state is irrelevant.
func samplePixel(job PixelJob, x, y int, sampler *core.RandomSampler) core.Vec3 {
	var colorAccum core.Vec3
	for sample := 0; sample < job.SampleCount; sample++ {
		sampler.Reseed(job.Seed, x, y, sample)
		ray := job.Camera.GenerateRay(x, y, job.Width, job.Height, sampler.Get2D())
		colorAccum = colorAccum.Add(job.Integrator.Shade(job.Mode, job.Scene, ray, 0, sampler))
	}
	return colorAccum.Multiply(1.0 / float64(job.SampleCount))
}

// ToRGBA clamps a linear color to [0,1], applies the gamma curve for the
// radiance modes and rounds to 8 bits with an opaque alpha
func ToRGBA(c core.Vec3, mode integrator.Mode) color.RGBA {
	c = c.Clamp(0.0, 1.0)
	if mode.IsRadiance() {
		c = c.GammaCorrect(Gamma)
	}
	return color.RGBA{
		R: quantize(c.X),
		G: quantize(c.Y),
		B: quantize(c.Z),
		A: 255,
	}
}

func quantize(v float64) uint8 {
	return uint8(255*v + 0.5)
}
