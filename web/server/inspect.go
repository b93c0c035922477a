package server

import (
	"fmt"
	"net/http"

	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/geometry"
	"github.com/df07/go-interactive-raytracer/pkg/material"
	"github.com/df07/go-interactive-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	MaterialType string                 `json:"materialType,omitempty"`
	GeometryType string                 `json:"geometryType,omitempty"`
	ShapeIndex   int                    `json:"shapeIndex"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	FrontFace    bool                   `json:"frontFace"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

func vecJSON(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func hexColor(c core.Vec3) string {
	c = c.Clamp(0, 1)
	return fmt.Sprintf("#%02x%02x%02x", int(c.X*255), int(c.Y*255), int(c.Z*255))
}

// extractMaterialInfo classifies a material and lists its parameters
func extractMaterialInfo(mat material.Material) (string, map[string]interface{}) {
	properties := map[string]interface{}{
		"albedo":       vecJSON(mat.Albedo),
		"color":        hexColor(mat.Albedo),
		"reflectivity": mat.Reflectivity,
		"roughness":    mat.Roughness,
	}

	switch {
	case mat.IsEmissive():
		properties["emission"] = vecJSON(mat.Emission)
		properties["color"] = hexColor(mat.Emission)
		return "emissive", properties
	case mat.Reflectivity >= 1:
		return "metal", properties
	case mat.IsSpecular():
		return "glossy", properties
	default:
		return "lambertian", properties
	}
}

// extractGeometryInfo extracts detailed geometry information
func extractGeometryInfo(shape geometry.Shape) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := shape.(type) {
	case *geometry.Sphere:
		properties["center"] = vecJSON(geom.Center)
		properties["radius"] = geom.Radius
		return "sphere", properties

	case *geometry.Plane:
		properties["point"] = vecJSON(geom.Point)
		properties["normal"] = vecJSON(geom.Normal)
		return "plane", properties

	case *geometry.Triangle:
		properties["vertices"] = [3][3]float64{vecJSON(geom.V0), vecJSON(geom.V1), vecJSON(geom.V2)}
		properties["normal"] = vecJSON(geom.GetNormal())
		return "triangle", properties

	default:
		return "unknown", properties
	}
}

// inspectPixel casts a ray through the center of a pixel and reports the nearest hit
func inspectPixel(s *scene.Scene, width, height, pixelX, pixelY int) InspectResponse {
	camera := geometry.NewCamera(s.CameraConfig)
	ray := camera.GenerateRay(pixelX, pixelY, width, height, core.NewVec2(0.5, 0.5))

	hit, isHit := geometry.NearestHit(s.Shapes, ray)
	if !isHit {
		return InspectResponse{Hit: false, ShapeIndex: -1}
	}

	materialType, materialProps := extractMaterialInfo(s.Material(hit.Material))
	geometryType, geometryProps := extractGeometryInfo(s.Shapes[hit.Index])

	return InspectResponse{
		Hit:          true,
		MaterialType: materialType,
		GeometryType: geometryType,
		ShapeIndex:   hit.Index,
		Point:        vecJSON(hit.Point),
		Normal:       vecJSON(hit.Normal),
		Distance:     hit.T,
		FrontFace:    hit.FrontFace,
		Properties: map[string]interface{}{
			"material": materialProps,
			"geometry": geometryProps,
		},
	}
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	req, err := parseRenderRequest(values)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	pixelX, err := parseIntParam(values, "x", -1, 0, req.Width-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	pixelY, err := parseIntParam(values, "y", -1, 0, req.Height-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if pixelX < 0 || pixelY < 0 {
		writeError(w, http.StatusBadRequest, fmt.Errorf("x and y are required"))
		return
	}

	sceneObj, err := scene.Resolve(req.SceneIndex)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	writeJSON(w, http.StatusOK, inspectPixel(sceneObj, req.Width, req.Height, pixelX, pixelY))
}
