package scene

import (
	"errors"
	"fmt"
)

// CatalogSize is the number of selectable scenes; valid indices are 0..CatalogSize-1
const CatalogSize = 10

// ErrInvalidSceneIndex is returned when a scene index is outside the catalog
var ErrInvalidSceneIndex = errors.New("scene: invalid scene index")

// SceneInfo describes a catalog entry for hosts
type SceneInfo struct {
	Index       int    `json:"index"`
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
}

type catalogEntry struct {
	info  SceneInfo
	build func() (*Scene, error)
}

var catalog = [CatalogSize]catalogEntry{
	{SceneInfo{ID: "plane", DisplayName: "Plane", Description: "Single plane facing the camera"}, NewPlaneScene},
	{SceneInfo{ID: "spheres", DisplayName: "Spheres", Description: "Diffuse, mirror and gold spheres on a ground plane"}, NewDefaultScene},
	{SceneInfo{ID: "cornell", DisplayName: "Cornell Box", Description: "Colored walls with an emissive ceiling panel"}, NewCornellScene},
	{SceneInfo{ID: "mirrors", DisplayName: "Hall of Mirrors", Description: "Mirror spheres inside a mirror sphere"}, NewMirrorScene},
	{SceneInfo{ID: "enclosed", DisplayName: "Enclosed", Description: "Objects sealed inside a sphere, lights outside"}, NewEnclosedScene},
	{SceneInfo{ID: "spheregrid", DisplayName: "Sphere Grid", Description: "Reflectivity and roughness sweep"}, NewSphereGridScene},
	{SceneInfo{ID: "triangles", DisplayName: "Triangles", Description: "Pyramid and icosahedron meshes"}, NewTriangleMeshScene},
	{SceneInfo{ID: "emissive", DisplayName: "Emissive", Description: "Lit only by glowing spheres and the sky"}, NewEmissiveScene},
	{SceneInfo{ID: "sunset", DisplayName: "Sunset", Description: "Low directional sun under a warm sky"}, NewSunsetScene},
	{SceneInfo{ID: "mixed", DisplayName: "Mixed", Description: "Colored point lights over glossy metals"}, NewMixedScene},
}

// Resolve builds the scene at index. Every call returns a fresh, validated scene.
func Resolve(index int) (*Scene, error) {
	if index < 0 || index >= CatalogSize {
		return nil, fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidSceneIndex, index, CatalogSize-1)
	}

	entry := catalog[index]
	s, err := entry.build()
	if err != nil {
		return nil, fmt.Errorf("scene %d (%s): %w", index, entry.info.ID, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Catalog lists every selectable scene in index order
func Catalog() []SceneInfo {
	infos := make([]SceneInfo, CatalogSize)
	for i, entry := range catalog {
		infos[i] = entry.info
		infos[i].Index = i
	}
	return infos
}

// IndexOf returns the catalog index of a scene ID
func IndexOf(id string) (int, bool) {
	for i, entry := range catalog {
		if entry.info.ID == id {
			return i, true
		}
	}
	return 0, false
}
