package bounds

import (
	"github.com/akmonengine/bounds/actor"
)

// Proxy is a shape registered in the broadphase.
// Fat is the shape AABB padded by Skin; it is kept as long as it still
// contains the tight AABB, so small motions do not move the proxy in the grid.
type Proxy struct {
	ID        int
	Shape     actor.Shape
	Transform actor.Transform
	Skin      float64
	// Static proxies never pair with other static proxies
	Static    bool

	Fat    actor.AABB
	tight  actor.AABB
	fitted bool
	moved  bool
}

// Refit recomputes the shape AABB at the current transform.
// It returns true when the tight box escaped the fat box, which is then rebuilt.
// The shape is only read, so several proxies may share it.
func (p *Proxy) Refit() bool {
	tight := p.Shape.AABB(p.Transform)
	p.tight = tight

	if p.fitted && p.Fat.Contains(tight) {
		p.moved = false
		return false
	}

	p.Fat = tight.Expand(p.Skin)
	p.fitted = true
	p.moved = true

	return true
}

// Tight returns the unpadded shape AABB computed by the last Refit
func (p *Proxy) Tight() actor.AABB {
	return p.tight
}

// Moved reports whether the last Refit rebuilt the fat box
func (p *Proxy) Moved() bool {
	return p.moved
}

// BoundsIn returns the fat box of p expressed in the local frame of other
func (p *Proxy) BoundsIn(other *Proxy) actor.AABB {
	var local actor.AABB
	p.Fat.ToLocalFrame(other.Transform, &local)

	return local
}
