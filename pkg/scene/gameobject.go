package scene

import (
	"slices"

	"github.com/google/uuid"

	"github.com/zeusync/gametools/pkg/vector"
)

var (
	_ Entity = (*GameObject)(nil)
	_ Node   = (*Transform)(nil)
)

// GameObject is the in-memory Entity. It owns exactly one Transform.
type GameObject struct {
	id        uuid.UUID
	name      string
	transform *Transform
}

// NewGameObject creates a root object at the origin.
func NewGameObject(name string) *GameObject {
	g := &GameObject{
		id:   uuid.New(),
		name: name,
	}
	g.transform = &Transform{owner: g}
	return g
}

func (g *GameObject) ID() uuid.UUID { return g.id }

func (g *GameObject) Name() string { return g.name }

func (g *GameObject) SetName(name string) { g.name = name }

func (g *GameObject) Node() Node { return g.transform }

func (g *GameObject) Transform() *Transform { return g.transform }

// Position is the world position of the object's transform.
func (g *GameObject) Position() vector.Point3 { return g.transform.Position() }

// Transform places a GameObject in the hierarchy. Positions are
// translation-only: a child's world position is its parent's world position
// plus its local offset.
type Transform struct {
	owner    *GameObject
	parent   *Transform
	children []*Transform
	local    vector.Point3
}

func (t *Transform) ChildCount() int { return len(t.children) }

// Child returns the child at index. It panics when index is out of range.
func (t *Transform) Child(index int) Node { return t.children[index] }

func (t *Transform) Entity() Entity { return t.owner }

// GameObject is Entity with the concrete type.
func (t *Transform) GameObject() *GameObject { return t.owner }

// Parent returns nil for a root transform.
func (t *Transform) Parent() *Transform { return t.parent }

func (t *Transform) LocalPosition() vector.Point3 { return t.local }

func (t *Transform) SetLocalPosition(p vector.Point3) { t.local = p }

func (t *Transform) Position() vector.Point3 {
	p := t.local
	for anc := t.parent; anc != nil; anc = anc.parent {
		p.X += anc.local.X
		p.Y += anc.local.Y
		p.Z += anc.local.Z
	}
	return p
}

// SetParent moves t under parent, appending it after parent's existing
// children. A nil parent detaches t to the root. Local offsets are kept.
func (t *Transform) SetParent(parent *Transform) error {
	for anc := parent; anc != nil; anc = anc.parent {
		if anc == t {
			return ErrHierarchyCycle
		}
	}
	if t.parent == parent {
		return nil
	}
	if t.parent != nil {
		t.parent.children = slices.DeleteFunc(t.parent.children, func(c *Transform) bool { return c == t })
	}
	t.parent = parent
	if parent != nil {
		parent.children = append(parent.children, t)
	}
	return nil
}

// IsChildOf reports whether t sits anywhere below ancestor.
func (t *Transform) IsChildOf(ancestor *Transform) bool {
	for anc := t.parent; anc != nil; anc = anc.parent {
		if anc == ancestor {
			return true
		}
	}
	return false
}
