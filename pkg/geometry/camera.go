package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	Center core.Vec3 // Camera position
	LookAt core.Vec3 // Point the camera is looking at
	Up     core.Vec3 // Up direction (usually {0, 1, 0})
	VFov   float64   // Vertical field of view in degrees
}

// Validate checks that the pose and field of view define a usable camera
func (c CameraConfig) Validate() error {
	if !(c.VFov > 0 && c.VFov < 180) {
		return fmt.Errorf("%w: vertical fov %f outside (0, 180)", ErrDegenerateGeometry, c.VFov)
	}
	forward := c.LookAt.Subtract(c.Center)
	if forward.Length() < 1e-9 {
		return fmt.Errorf("%w: camera looks at its own position", ErrDegenerateGeometry)
	}
	if forward.Normalize().Cross(c.Up.Normalize()).Length() < 1e-6 {
		return fmt.Errorf("%w: camera up %v is parallel to the view direction", ErrDegenerateGeometry, c.Up)
	}
	return nil
}

// Camera maps pixel coordinates to world-space rays with a pinhole projection.
// Pixel row 0 is the top of the image, which maps to the camera's +Up side.
type Camera struct {
	config        CameraConfig
	cameraToWorld mgl64.Mat4
	tanHalfFov    float64
}

// NewCamera creates a camera from the given configuration.
// The configuration is expected to have passed Validate.
func NewCamera(config CameraConfig) *Camera {
	view := mgl64.LookAtV(toMgl(config.Center), toMgl(config.LookAt), toMgl(config.Up))
	return &Camera{
		config:        config,
		cameraToWorld: view.Inv(),
		tanHalfFov:    math.Tan(mgl64.DegToRad(config.VFov) / 2),
	}
}

// GenerateRay returns the ray through pixel (px, py) of a width x height
// image, offset inside the pixel footprint by jitter in [0,1)².
// A jitter of (0.5, 0.5) targets the pixel center.
func (c *Camera) GenerateRay(px, py, width, height int, jitter core.Vec2) core.Ray {
	aspect := float64(width) / float64(height)

	// Normalized device coordinates in [-1, 1], y up
	ndcX := 2*(float64(px)+jitter.X)/float64(width) - 1
	ndcY := 1 - 2*(float64(py)+jitter.Y)/float64(height)

	// The camera looks down -Z in its own space
	local := mgl64.Vec4{ndcX * aspect * c.tanHalfFov, ndcY * c.tanHalfFov, -1, 0}
	world := c.cameraToWorld.Mul4x1(local).Vec3()

	return core.NewRay(c.config.Center, fromMgl(world))
}

// GetCameraForward returns the unit view direction
func (c *Camera) GetCameraForward() core.Vec3 {
	return c.config.LookAt.Subtract(c.config.Center).Normalize()
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}

func toMgl(v core.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func fromMgl(v mgl64.Vec3) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}
