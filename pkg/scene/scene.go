// Package scene answers scene and hierarchy queries through small provider
// interfaces that the embedding engine implements. An in-memory provider
// (Manager, GameObject, Transform) is included for tools and tests.
package scene

import "github.com/zeusync/gametools/pkg/sequence"

// Scene is a named, independently loaded collection of entities.
type Scene interface {
	Name() string
	Path() string
	Handle() uint64
	IsLoaded() bool
}

// Provider enumerates the scenes the engine currently has loaded.
type Provider interface {
	SceneCount() int
	SceneAt(index int) Scene
}

// ActiveScenes lists every scene reported by p in index order.
func ActiveScenes(p Provider) []Scene {
	return sequence.Indexed(p.SceneCount(), p.SceneAt).Collect()
}

// ActiveSceneNames lists the names of every scene reported by p in index order.
func ActiveSceneNames(p Provider) []string {
	return sequence.Map(sequence.From(ActiveScenes(p)), Scene.Name).Collect()
}
