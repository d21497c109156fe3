package scene

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string // Identifier accepted by Create
	Name        string // Display name
	Description string
	Shapes      int // Number of top-level shapes
}

type builtin struct {
	description string
	build       func() *Scene
}

var builtins = map[string]builtin{
	"default": {"Sphere resting on a large ground sphere", NewDefaultScene},
	"sphere":  {"Single sphere floating in front of the sky", NewSphereScene},
	"empty":   {"No geometry, sky gradient only", NewEmptyScene},
	"row":     {"Three spheres side by side on the ground", NewRowScene},
	"plane":   {"Sphere resting on an infinite ground plane", NewPlaneScene},
	"grid":    {"Staggered grid of small spheres over a ground plane", NewSphereGridScene},
}

// Create builds the built-in scene with the given ID
func Create(id string) (*Scene, error) {
	b, ok := builtins[id]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownScene, "%q", id)
	}
	return b.build(), nil
}

// ListScenes returns every built-in scene, sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtins))
	for id, b := range builtins {
		scenes = append(scenes, SceneInfo{
			ID:          id,
			Name:        titleCase(id),
			Description: b.description,
			Shapes:      b.build().Len(),
		})
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})

	return scenes
}

// titleCase converts an identifier to title case
// e.g., "sphere-grid" -> "Sphere Grid"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
