package raycast

import (
	"github.com/lixenwraith/console-caster/render"
	"github.com/lixenwraith/console-caster/vmath"
)

// Kind tags what a scene object is for collision and scoring
type Kind uint8

const (
	KindTarget Kind = iota
	KindProjectile
)

func (k Kind) String() string {
	switch k {
	case KindTarget:
		return "target"
	case KindProjectile:
		return "projectile"
	}
	return "unknown"
}

// SceneObject is a billboard with simple Euler physics
// Sprite is shared between objects of the same kind
type SceneObject struct {
	Pos    vmath.Vec2
	Vel    vmath.Vec2
	Remove bool
	Kind   Kind
	Sprite *render.Sprite
}

// Objects is an insertion-ordered arena of scene objects
// Indices stay stable until Compact; flagged objects are only dropped there
type Objects struct {
	items []SceneObject
}

// Add appends an object and returns its index
func (o *Objects) Add(obj SceneObject) int {
	o.items = append(o.items, obj)
	return len(o.items) - 1
}

// Len returns the number of objects, flagged ones included
func (o *Objects) Len() int { return len(o.items) }

// At returns the object at index i for in-place mutation
func (o *Objects) At(i int) *SceneObject { return &o.items[i] }

// Last returns the most recently inserted object, nil when empty
func (o *Objects) Last() *SceneObject {
	if len(o.items) == 0 {
		return nil
	}
	return &o.items[len(o.items)-1]
}

// Compact drops flagged objects, keeping insertion order, and returns how many were removed
func (o *Objects) Compact() int {
	kept := o.items[:0]
	for _, obj := range o.items {
		if !obj.Remove {
			kept = append(kept, obj)
		}
	}
	removed := len(o.items) - len(kept)
	clear(o.items[len(kept):])
	o.items = kept
	return removed
}

// Count returns the number of live objects of kind k
func (o *Objects) Count(k Kind) int {
	n := 0
	for i := range o.items {
		if o.items[i].Kind == k && !o.items[i].Remove {
			n++
		}
	}
	return n
}

// Reset drops every object
func (o *Objects) Reset() {
	clear(o.items)
	o.items = o.items[:0]
}
