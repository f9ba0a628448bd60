package scene

import (
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/zeusync/gametools/internal/observability/log"
	"github.com/zeusync/gametools/pkg/sequence"
)

var (
	_ Provider = (*Manager)(nil)
	_ Scene    = (*MemoryScene)(nil)
)

// MemoryScene is a scene held by a Manager.
type MemoryScene struct {
	name   string
	path   string
	handle uint64
	loaded bool
	roots  []*GameObject
}

func (s *MemoryScene) Name() string { return s.name }

func (s *MemoryScene) Path() string { return s.path }

// Handle is derived from the path, so reloading a path yields the same handle.
func (s *MemoryScene) Handle() uint64 { return s.handle }

func (s *MemoryScene) IsLoaded() bool { return s.loaded }

// AddRoot places g at the top level of the scene, detaching it from any parent.
func (s *MemoryScene) AddRoot(g *GameObject) {
	_ = g.transform.SetParent(nil)
	for _, r := range s.roots {
		if r == g {
			return
		}
	}
	s.roots = append(s.roots, g)
}

// Roots returns the top-level objects in insertion order. Objects that have
// since been parented elsewhere are skipped.
func (s *MemoryScene) Roots() []*GameObject {
	return sequence.From(s.roots).
		Filter(func(g *GameObject) bool { return g.transform.parent == nil }).
		Collect()
}

// Find looks up an object by name, depth first through the hierarchy.
func (s *MemoryScene) Find(name string) (*GameObject, bool) {
	var walk func(t *Transform) *GameObject
	walk = func(t *Transform) *GameObject {
		if t.owner.name == name {
			return t.owner
		}
		for _, c := range t.children {
			if found := walk(c); found != nil {
				return found
			}
		}
		return nil
	}
	for _, r := range s.Roots() {
		if found := walk(r.transform); found != nil {
			return found, true
		}
	}
	return nil, false
}

// Manager is an in-memory Provider. It is not safe for concurrent use.
type Manager struct {
	scenes []*MemoryScene
	logger log.Log
}

type ManagerOption func(*Manager)

// WithLogger sets the logger used for load and unload events.
func WithLogger(l log.Log) ManagerOption {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{logger: log.Nop()}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = m.logger.With(log.String("component", "scene_manager"))
	return m
}

// Load registers the scene stored at scenePath. The scene name is the last
// path element without its extension, "Assets/Scenes/Main.unity" is "Main".
func (m *Manager) Load(scenePath string) (*MemoryScene, error) {
	clean := path.Clean(strings.TrimSpace(scenePath))
	name := strings.TrimSuffix(path.Base(clean), path.Ext(clean))
	if scenePath == "" || name == "" || name == "." || name == "/" {
		return nil, fmt.Errorf("%q: %w", scenePath, ErrInvalidScenePath)
	}
	for _, s := range m.scenes {
		if s.path == clean {
			return nil, fmt.Errorf("%s: %w", clean, ErrSceneAlreadyLoaded)
		}
	}

	s := &MemoryScene{
		name:   name,
		path:   clean,
		handle: xxhash.Sum64String(clean),
		loaded: true,
	}
	m.scenes = append(m.scenes, s)
	m.logger.Debug("scene loaded",
		log.String("name", s.name),
		log.String("path", s.path),
		log.Uint64("handle", s.handle),
		log.Int("count", len(m.scenes)),
	)
	return s, nil
}

// Unload removes the first loaded scene called name.
func (m *Manager) Unload(name string) error {
	for i, s := range m.scenes {
		if s.name != name {
			continue
		}
		s.loaded = false
		m.scenes = slices.Delete(m.scenes, i, i+1)
		m.logger.Debug("scene unloaded",
			log.String("name", s.name),
			log.Int("count", len(m.scenes)),
		)
		return nil
	}
	return fmt.Errorf("%s: %w", name, ErrSceneNotFound)
}

// SceneByName returns the first loaded scene called name.
func (m *Manager) SceneByName(name string) (*MemoryScene, bool) {
	return sequence.From(m.scenes).Find(func(s *MemoryScene) bool { return s.name == name })
}

func (m *Manager) SceneCount() int { return len(m.scenes) }

// SceneAt panics when index is out of range.
func (m *Manager) SceneAt(index int) Scene { return m.scenes[index] }
