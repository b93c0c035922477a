package scene

import (
	"errors"
	"reflect"
	"testing"
)

func TestResolveAllScenes(t *testing.T) {
	for i := 0; i < CatalogSize; i++ {
		s, err := Resolve(i)
		if err != nil {
			t.Fatalf("Resolve(%d) error = %v", i, err)
		}
		if s.GetPrimitiveCount() == 0 {
			t.Errorf("scene %d (%s) has no primitives", i, s.Name)
		}
		if len(s.Materials) == 0 {
			t.Errorf("scene %d (%s) has no materials", i, s.Name)
		}
	}
}

func TestResolveInvalidIndex(t *testing.T) {
	for _, index := range []int{-1, CatalogSize, 100} {
		s, err := Resolve(index)
		if !errors.Is(err, ErrInvalidSceneIndex) {
			t.Errorf("Resolve(%d) error = %v, want ErrInvalidSceneIndex", index, err)
		}
		if s != nil {
			t.Errorf("Resolve(%d) returned a scene", index)
		}
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	for i := 0; i < CatalogSize; i++ {
		a, err := Resolve(i)
		if err != nil {
			t.Fatal(err)
		}
		b, err := Resolve(i)
		if err != nil {
			t.Fatal(err)
		}
		if a == b {
			t.Errorf("scene %d: Resolve returned the same pointer twice", i)
		}
		if !reflect.DeepEqual(a, b) {
			t.Errorf("scene %d: two resolutions differ", i)
		}
	}
}

func TestCatalog(t *testing.T) {
	infos := Catalog()
	if len(infos) != CatalogSize {
		t.Fatalf("Catalog() returned %d entries, want %d", len(infos), CatalogSize)
	}

	seen := make(map[string]bool)
	for i, info := range infos {
		if info.Index != i {
			t.Errorf("entry %d has index %d", i, info.Index)
		}
		if seen[info.ID] {
			t.Errorf("duplicate scene id %q", info.ID)
		}
		seen[info.ID] = true

		index, ok := IndexOf(info.ID)
		if !ok || index != i {
			t.Errorf("IndexOf(%q) = %d, %v; want %d, true", info.ID, index, ok, i)
		}

		s, err := Resolve(i)
		if err != nil {
			t.Fatal(err)
		}
		if s.Name != info.ID {
			t.Errorf("scene %d is named %q, catalog says %q", i, s.Name, info.ID)
		}
	}

	if _, ok := IndexOf("nope"); ok {
		t.Error("IndexOf should not find unknown ids")
	}
}

func TestEmissiveSceneHasNoLights(t *testing.T) {
	s, err := NewEmissiveScene()
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Lights) != 0 {
		t.Errorf("expected no delta lights, got %d", len(s.Lights))
	}
	emitters := 0
	for _, m := range s.Materials {
		if m.IsEmissive() {
			emitters++
		}
	}
	if emitters == 0 {
		t.Error("expected at least one emissive material")
	}
}

func TestTriangleMeshSceneLoadsIcosahedron(t *testing.T) {
	s, err := NewTriangleMeshScene()
	if err != nil {
		t.Fatal(err)
	}
	// ground plane + 4 pyramid faces + 20 icosahedron faces + chrome sphere
	if got, want := s.GetPrimitiveCount(), 1+4+20+1; got != want {
		t.Errorf("primitive count = %d, want %d", got, want)
	}
}
