package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/flappy/common"
	"github.com/milk9111/flappy/ecs"
	"github.com/milk9111/flappy/ecs/component"
	"github.com/milk9111/flappy/timing"
)

const (
	collisionTypePlayer cp.CollisionType = iota + 1
	collisionTypeSolid
)

const (
	// maxSubsteps caps how finely a frame is split for fast CCD bodies.
	maxSubsteps = 8
	// ccdTravelFraction is the share of a CCD body's radius it may move per substep.
	ccdTravelFraction = 0.5
)

// PhysicsSystem mirrors PhysicsBody entities into a Chipmunk space, steps it
// by the frame delta and writes dynamic bodies back into their transforms.
// Contacts are simulated only; nothing in the game reacts to them.
type PhysicsSystem struct {
	clock         *timing.Clock
	space         *cp.Space
	handlersReady bool

	entities map[ecs.Entity]*bodyInfo
	contacts int
}

type bodyInfo struct {
	body   *cp.Body
	shape  *cp.Shape
	kind   component.BodyType
	ccd    bool
	extent float64
}

func NewPhysicsSystem(clock *timing.Clock) *PhysicsSystem {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: common.Gravity})
	return &PhysicsSystem{
		clock:    clock,
		space:    space,
		entities: make(map[ecs.Entity]*bodyInfo),
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

// BodyCount is the number of entities currently backed by a body.
func (ps *PhysicsSystem) BodyCount() int {
	return len(ps.entities)
}

// Contacts counts player contacts begun since the system was created.
func (ps *PhysicsSystem) Contacts() int {
	return ps.contacts
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil || ps.space == nil {
		return
	}

	ps.ensureHandlers()
	ps.cleanupEntities(w)
	ps.syncEntities(w)

	dt := 0.0
	if ps.clock != nil {
		dt = ps.clock.DeltaSeconds()
	}
	if dt <= 0 {
		return
	}

	ps.pushKinematic(w, dt)
	ps.applyImpulses(w)

	steps := ps.substeps(dt)
	for i := 0; i < steps; i++ {
		ps.space.Step(dt / float64(steps))
	}

	ps.syncTransforms(w)
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady {
		return
	}

	handler := ps.space.NewCollisionHandler(collisionTypePlayer, collisionTypeSolid)
	handler.UserData = ps
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		if sys, ok := userData.(*PhysicsSystem); ok && sys != nil {
			sys.contacts++
		}
		return true
	}

	ps.handlersReady = true
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ecs.ForEach(w, component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody) {
		if info, ok := ps.entities[e]; ok {
			bodyComp.Body = info.body
			bodyComp.Shape = info.shape
			return
		}

		x, y, rotation, ok := worldPosition(w, e)
		if !ok {
			return
		}

		info := ps.createBodyInfo(w, e, bodyComp, x, y, rotation)
		if info == nil {
			return
		}
		ps.entities[e] = info
		bodyComp.Body = info.body
		bodyComp.Shape = info.shape
	})
}

func (ps *PhysicsSystem) createBodyInfo(w *ecs.World, e ecs.Entity, bodyComp *component.PhysicsBody, x, y, rotation float64) *bodyInfo {
	radius := bodyComp.Radius
	width := bodyComp.Width
	height := bodyComp.Height
	if radius <= 0 && (width <= 0 || height <= 0) {
		return nil
	}

	info := &bodyInfo{kind: bodyComp.Type, ccd: bodyComp.CCD}
	if radius > 0 {
		info.extent = radius
	} else {
		info.extent = math.Min(width, height) / 2
	}

	if bodyComp.Type == component.BodyStatic {
		var shape *cp.Shape
		if radius > 0 {
			shape = cp.NewCircle(ps.space.StaticBody, radius, cp.Vector{X: x, Y: y})
		} else {
			bb := cp.BB{L: x - width/2, B: y - height/2, R: x + width/2, T: y + height/2}
			shape = cp.NewBox2(ps.space.StaticBody, bb, 0)
		}
		ps.configureShape(w, e, shape, bodyComp)
		ps.space.AddShape(shape)
		info.body = ps.space.StaticBody
		info.shape = shape
		return info
	}

	var body *cp.Body
	if bodyComp.Type == component.BodyKinematic {
		body = cp.NewKinematicBody()
	} else {
		mass := bodyComp.Density * bodyArea(radius, width, height)
		if mass <= 0 {
			mass = 1
		}
		var moment float64
		if radius > 0 {
			moment = cp.MomentForCircle(mass, 0, radius, cp.Vector{})
		} else {
			moment = cp.MomentForBox(mass, width, height)
		}
		body = cp.NewBody(mass, moment)
	}
	body.SetPosition(cp.Vector{X: x, Y: y})
	body.SetAngle(rotation)

	if v, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok && bodyComp.Type == component.BodyDynamic {
		body.SetVelocity(v.LinearX, v.LinearY)
		body.SetAngularVelocity(v.Angular)
	}
	if g, ok := ecs.Get(w, e, component.GravityScaleComponent.Kind()); ok && bodyComp.Type == component.BodyDynamic {
		body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
			cp.BodyUpdateVelocity(body, gravity.Mult(g.Scale), damping, dt)
		})
	}

	var shape *cp.Shape
	if radius > 0 {
		shape = cp.NewCircle(body, radius, cp.Vector{})
	} else {
		shape = cp.NewBox(body, width, height, 0)
	}
	ps.configureShape(w, e, shape, bodyComp)

	ps.space.AddBody(body)
	ps.space.AddShape(shape)

	info.body = body
	info.shape = shape
	return info
}

func (ps *PhysicsSystem) configureShape(w *ecs.World, e ecs.Entity, shape *cp.Shape, bodyComp *component.PhysicsBody) {
	shape.SetFriction(bodyComp.Friction)
	shape.SetElasticity(bodyComp.Elasticity)
	shape.SetCollisionType(collisionTypeSolid)
	if ecs.Has(w, e, component.PlayerTagComponent.Kind()) {
		shape.SetCollisionType(collisionTypePlayer)
	}
	shape.UserData = uint64(e)
}

// bodyArea is the collider area in square meters.
func bodyArea(radius, width, height float64) float64 {
	if radius > 0 {
		r := radius / common.PixelsPerMeter
		return math.Pi * r * r
	}
	return (width / common.PixelsPerMeter) * (height / common.PixelsPerMeter)
}

// pushKinematic gives each kinematic body the velocity that carries it onto
// its entity's current world position over dt, so dynamic bodies it touches
// are pushed rather than tunnelled through.
func (ps *PhysicsSystem) pushKinematic(w *ecs.World, dt float64) {
	for e, info := range ps.entities {
		if info.kind != component.BodyKinematic {
			continue
		}
		x, y, rotation, ok := worldPosition(w, e)
		if !ok {
			continue
		}
		pos := info.body.Position()
		info.body.SetVelocity((x-pos.X)/dt, (y-pos.Y)/dt)
		info.body.SetAngularVelocity((rotation - info.body.Angle()) / dt)
	}
}

func (ps *PhysicsSystem) applyImpulses(w *ecs.World) {
	ecs.ForEach(w, component.ExternalImpulseComponent.Kind(), func(e ecs.Entity, impulse *component.ExternalImpulse) {
		info, ok := ps.entities[e]
		if !ok || info.kind != component.BodyDynamic {
			return
		}
		if impulse.IsZero() {
			return
		}
		// world frame: a flap is straight up however the bird is spinning
		info.body.ApplyImpulseAtWorldPoint(cp.Vector{X: impulse.X, Y: impulse.Y}, info.body.Position())
		if impulse.Torque != 0 {
			info.body.SetAngularVelocity(info.body.AngularVelocity() + impulse.Torque/info.body.Moment())
		}
		*impulse = component.ExternalImpulse{}
	})
}

// substeps splits dt so no CCD body moves more than a fraction of its extent
// per step.
func (ps *PhysicsSystem) substeps(dt float64) int {
	steps := 1
	for _, info := range ps.entities {
		if !info.ccd || info.kind != component.BodyDynamic || info.extent <= 0 {
			continue
		}
		travel := info.body.Velocity().Length() * dt
		n := int(math.Ceil(travel / (info.extent * ccdTravelFraction)))
		if n > steps {
			steps = n
		}
	}
	return int(common.Clamp(float64(steps), 1, maxSubsteps))
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	for e, info := range ps.entities {
		if info.kind != component.BodyDynamic {
			continue
		}
		pos := info.body.Position()
		angle := info.body.Angle()

		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			t.X = pos.X
			t.Y = pos.Y
			t.Rotation = angle
		}
		if g, ok := ecs.Get(w, e, component.GlobalTransformComponent.Kind()); ok {
			g.X = pos.X
			g.Y = pos.Y
			g.Rotation = angle
		}
		if v, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
			vel := info.body.Velocity()
			v.LinearX = vel.X
			v.LinearY = vel.Y
			v.Angular = info.body.AngularVelocity()
		}
	}
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if ecs.IsAlive(w, e) && ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}
		if info.shape != nil {
			ps.space.RemoveShape(info.shape)
		}
		if info.body != nil && info.kind != component.BodyStatic {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.entities, e)
	}
}
