// Package physics advances particles with a per-frame spring-damper.
//
// There is no delta time: one call is one displayed frame.
package physics

import (
	"particlehero/hero/particle"
	"particlehero/hero/quarkgl"
)

// DefaultSpringDivisor gives a soft spring: the pull is 1/1000 of the offset per tick.
const DefaultSpringDivisor = 1000

// Integrate advances p by one tick:
//
//	Acc = (Target - Pos) / divisor
//	Vel = (Vel + Acc) * Damping
//	Pos = Pos + Vel
func Integrate(p *particle.Particle, divisor float64) {
	if divisor <= 0 {
		divisor = DefaultSpringDivisor
	}
	d := p.Target.Sub(p.Pos)
	p.Acc = quarkgl.V3(d.X/divisor, d.Y/divisor, d.Z/divisor)
	p.Vel = p.Vel.Add(p.Acc).Mul(p.Damping)
	p.Pos = p.Pos.Add(p.Vel)
}

// IntegrateAll advances every particle by one tick.
func IntegrateAll(ps []particle.Particle, divisor float64) {
	for i := range ps {
		Integrate(&ps[i], divisor)
	}
}

// ApplyImpulse adds a velocity change. It composes with the spring on the next tick.
func ApplyImpulse(p *particle.Particle, dv quarkgl.Vec3) {
	p.Vel = p.Vel.Add(dv)
}
