package raffle

import "time"

// celebration is the per-widget animation session that runs after a reveal:
// every frame it spawns, steps and paints particles, then asks the scheduler
// for the next frame for as long as it stays active.
type celebration struct {
	sched    *Scheduler
	spawner  *Spawner
	renderer Renderer
	canvas   Canvas

	kind      Kind
	active    bool
	particles []Particle
	frame     FrameID

	frames int // frames run since start
	stats  frameStats
	debug  bool
}

// start begins a session of the given kind and runs its first frame
// immediately. Without a canvas it does nothing and reports false.
func (c *celebration) start(kind Kind) bool {
	c.stop()
	if c.canvas == nil {
		return false
	}
	c.kind = kind
	c.active = true
	c.frames = 0
	c.tick()
	return true
}

// stop cancels the pending frame, drops every particle and clears the
// canvas. Calling it on an inactive session is harmless.
func (c *celebration) stop() {
	if c.frame != 0 {
		c.sched.CancelFrame(c.frame)
		c.frame = 0
	}
	c.active = false
	clear(c.particles)
	c.particles = c.particles[:0]
	if c.canvas != nil {
		c.canvas.Clear()
	}
}

// tick runs one frame: spawn, step, paint, reschedule.
func (c *celebration) tick() {
	c.frame = 0
	if !c.active || c.canvas == nil {
		return
	}
	var t0 time.Time
	if c.debug {
		t0 = time.Now()
	}

	w, h := c.canvas.Size()
	before := len(c.particles)
	c.particles = c.spawner.Spawn(c.particles, c.kind, w, h)
	spawned := len(c.particles) - before
	c.particles = Step(c.particles, h)

	if c.debug {
		c.stats.stepTime = time.Since(t0)
		t0 = time.Now()
	}

	c.renderer.Draw(c.canvas, c.particles)
	c.frames++

	if c.debug {
		c.stats.renderTime = time.Since(t0)
		c.stats.spawned = spawned
		c.stats.live = len(c.particles)
		c.stats.frame = c.frames
		c.stats.log()
	}

	c.frame = c.sched.RequestFrame(c.tick)
}
