package components

import (
	"github.com/automoto/doomerang-boss/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// EntityKind tells the collision collaborator what an emitted entity is.
type EntityKind int

const (
	KindProjectile EntityKind = iota
	KindRingNode
	KindShockwave
)

func (k EntityKind) String() string {
	switch k {
	case KindProjectile:
		return "projectile"
	case KindRingNode:
		return "ring-node"
	case KindShockwave:
		return "shockwave"
	}
	return "unknown"
}

// ProjectileData is a generator-owned entity advanced by the motion model.
type ProjectileData struct {
	Kind     EntityKind
	Motion   gamemath.LinearMotion
	Angle    float64 // degrees
	Radius   float64
	Damage   int
	Lifetime float64 // ms before expiry, 0 = expire on travel completion
	Lives    int     // collision signals absorbed before destruction

	// Growth ramps Radius for ring nodes, nil otherwise
	Growth *gween.Tween
}

// Spent reports whether the entity has absorbed all its collision signals.
func (p *ProjectileData) Spent() bool {
	return p.Lives <= 0
}

// Expired reports whether the owning generator should destroy the entity.
func (p *ProjectileData) Expired() bool {
	if p.Spent() {
		return true
	}
	if p.Lifetime > 0 {
		return p.Motion.Elapsed >= p.Lifetime
	}
	return p.Motion.Travelled()
}

var Projectile = donburi.NewComponentType[ProjectileData]()

// EntityPool is the collection of entities owned by exactly one generator. It
// is created by whoever builds the generator and injected into it.
type EntityPool struct {
	entries []*donburi.Entry
}

func NewEntityPool() *EntityPool {
	return &EntityPool{}
}

// Add hands ownership of an entry to the pool.
func (p *EntityPool) Add(e *donburi.Entry) {
	p.entries = append(p.entries, e)
}

// Len returns the number of owned entries.
func (p *EntityPool) Len() int {
	return len(p.entries)
}

// Each calls fn for every owned entry that is still valid.
func (p *EntityPool) Each(fn func(*donburi.Entry)) {
	for _, e := range p.entries {
		if e.Valid() {
			fn(e)
		}
	}
}

// Sweep removes and returns the entries for which expired reports true.
// Invalid entries are dropped silently.
func (p *EntityPool) Sweep(expired func(*donburi.Entry) bool) []*donburi.Entry {
	var removed []*donburi.Entry
	kept := p.entries[:0]
	for _, e := range p.entries {
		if !e.Valid() {
			continue
		}
		if expired(e) {
			removed = append(removed, e)
			continue
		}
		kept = append(kept, e)
	}
	for i := len(kept); i < len(p.entries); i++ {
		p.entries[i] = nil
	}
	p.entries = kept
	return removed
}
