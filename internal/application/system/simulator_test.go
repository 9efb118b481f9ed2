package system

import (
	"image/color"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/sidescroller/internal/application/state"
	"github.com/younwookim/sidescroller/internal/domain/entity"
	"github.com/younwookim/sidescroller/internal/domain/geom"
	"github.com/younwookim/sidescroller/internal/domain/world"
	"github.com/younwookim/sidescroller/internal/infrastructure/config"
)

// callLog collects the names of fakes in the order they were called
type callLog struct {
	calls []string
}

func (l *callLog) add(name string) { l.calls = append(l.calls, name) }

type fakeDrawable struct {
	entity.Sprite
	name string
	log  *callLog
}

func (d *fakeDrawable) Draw(*ebiten.Image) { d.log.add(d.name) }

type fakeCollider struct {
	*entity.HitBox
	name string
	log  *callLog
}

func (c *fakeCollider) Draw(*ebiten.Image) { c.log.add(c.name) }

type fakeEntity struct {
	name      string
	log       *callLog
	drawable  entity.Drawable
	hitbox    entity.Collider
	responses []entity.Violation
}

func newFakeEntity(name string, log *callLog, drawable bool, bounds *geom.Box) *fakeEntity {
	e := &fakeEntity{name: name, log: log}
	if drawable {
		e.drawable = &fakeDrawable{name: name, log: log}
	}
	if bounds != nil {
		hb := entity.NewHitBox(bounds.X(), bounds.Y(), bounds.W(), bounds.H())
		e.hitbox = &fakeCollider{HitBox: hb, name: name + ".hitbox", log: log}
	}
	return e
}

func (e *fakeEntity) Update() { e.log.add(e.name) }
func (e *fakeEntity) HasHitbox() bool { return e.hitbox != nil }
func (e *fakeEntity) HitBox() entity.Collider { return e.hitbox }
func (e *fakeEntity) IsDrawable() bool { return e.drawable != nil }
func (e *fakeEntity) Drawable() entity.Drawable { return e.drawable }
func (e *fakeEntity) RespondToInvalidMove(v entity.Violation) {
	e.responses = append(e.responses, v)
}

func boxPtr(x, y, w, h float64) *geom.Box {
	b := geom.NewBox(x, y, w, h)
	return &b
}

// testGrid is a 640x320 map
func testGrid() world.Grid {
	return world.Grid{Rows: 10, Cols: 20, TileSize: geom.Vec(16, 16), Scale: 2}
}

// newPlayerScene places a default player centered on (100, 100): sprite at
// (80, 80), hitbox (88, 88, 32, 32).
func newPlayerScene(obstacles ...*entity.HitBox) (*world.Scene, *entity.Player) {
	scene := world.NewScene(nil, testGrid())
	for _, hb := range obstacles {
		scene.AddStatic(entity.NewStatic(nil, hb))
	}
	player := entity.NewPlayer(100, 100, entity.DefaultPlayerParams())
	scene.AddDynamic(player)
	return scene, player
}

func newRunningSimulator(scene *world.Scene, opts *world.Options, cfg SimulatorConfig) *Simulator {
	sim := NewSimulator(scene, opts, NewStepClock(10*time.Millisecond), cfg, nil)
	sim.Start()
	return sim
}

// floor leaves a 5 unit gap under the default player's hitbox: one
// grounded tick of gravity reaches it, the side strips do not.
func floor() *entity.HitBox {
	return entity.NewHitBox(0, 125, 640, 195)
}

func TestSimulator_StartStopIdempotent(t *testing.T) {
	scene, player := newPlayerScene()
	sim := NewSimulator(scene, nil, NewStepClock(time.Millisecond), SimulatorConfig{}, nil)
	assert.Equal(t, state.Stopped, sim.State())

	sim.Stop()
	assert.Equal(t, state.Stopped, sim.State())

	sim.Update()
	assert.Equal(t, uint64(0), sim.Ticks())
	assert.Equal(t, geom.Vec(80, 80), player.Position())

	sim.Start()
	sim.Start()
	assert.Equal(t, state.Running, sim.State())

	sim.Update()
	assert.Equal(t, uint64(1), sim.Ticks())

	sim.Stop()
	sim.Stop()
	assert.Equal(t, state.Stopped, sim.State())

	pos := player.Position()
	sim.Update()
	assert.Equal(t, uint64(1), sim.Ticks())
	assert.Equal(t, pos, player.Position(), "stopping keeps the last state")
}

func TestSimulator_PauseResume(t *testing.T) {
	scene, _ := newPlayerScene()
	sim := newRunningSimulator(scene, nil, SimulatorConfig{})

	sim.Pause()
	assert.Equal(t, state.Paused, sim.State())
	sim.Update()
	assert.Equal(t, uint64(0), sim.Ticks())

	sim.Pause()
	assert.Equal(t, state.Paused, sim.State())

	sim.Start()
	sim.Update()
	assert.Equal(t, uint64(1), sim.Ticks())

	sim.Stop()
	sim.Pause()
	assert.Equal(t, state.Stopped, sim.State(), "a stopped simulator cannot be paused")
}

func TestSimulator_UpdateOrder(t *testing.T) {
	log := &callLog{}
	scene := world.NewScene(nil, testGrid())
	scene.AddStatic(newFakeEntity("s1", log, false, nil))
	scene.AddStatic(newFakeEntity("s2", log, false, nil))
	scene.AddDynamic(newFakeEntity("d1", log, false, nil))
	scene.AddDynamic(newFakeEntity("d2", log, false, nil))

	sim := newRunningSimulator(scene, nil, SimulatorConfig{})
	sim.Update()

	assert.Equal(t, []string{"d1", "d2", "s1", "s2"}, log.calls)
}

func TestSimulator_DrawOrder(t *testing.T) {
	log := &callLog{}
	bg := newFakeEntity("bg", log, true, boxPtr(0, 0, 640, 320))
	scene := world.NewScene(bg, testGrid())
	scene.AddStatic(newFakeEntity("s1", log, true, boxPtr(0, 300, 640, 20)))
	scene.AddStatic(newFakeEntity("s2", log, true, nil))
	scene.AddDynamic(newFakeEntity("d1", log, true, boxPtr(10, 10, 10, 10)))
	scene.AddDynamic(newFakeEntity("d2", log, false, boxPtr(50, 10, 10, 10)))

	t.Run("without bounds", func(t *testing.T) {
		log.calls = nil
		sim := NewSimulator(scene, world.NewOptions(false, false, false), nil, SimulatorConfig{}, nil)
		sim.Draw(ebiten.NewImage(640, 320))
		assert.Equal(t, []string{"bg", "s1", "s2", "d1"}, log.calls)
	})

	t.Run("with bounds", func(t *testing.T) {
		log.calls = nil
		sim := NewSimulator(scene, world.NewOptions(false, true, false), nil, SimulatorConfig{}, nil)
		sim.Draw(ebiten.NewImage(640, 320))
		assert.Equal(t, []string{"bg", "bg.hitbox", "s1", "s1.hitbox", "s2", "d1", "d1.hitbox"}, log.calls)
	})
}

func TestSimulator_OutOfMapSkipsObstacles(t *testing.T) {
	log := &callLog{}
	scene := world.NewScene(nil, testGrid())
	scene.AddStatic(newFakeEntity("wall", log, false, boxPtr(600, 0, 100, 320)))
	outside := newFakeEntity("outside", log, false, boxPtr(630, 10, 20, 20))
	inside := newFakeEntity("inside", log, false, boxPtr(590, 10, 20, 20))
	scene.AddDynamic(outside)
	scene.AddDynamic(inside)

	sim := newRunningSimulator(scene, nil, SimulatorConfig{})
	sim.Update()

	assert.Equal(t, []entity.Violation{entity.ViolationOutOfBounds}, outside.responses)
	assert.Equal(t, []entity.Violation{entity.ViolationBlocked}, inside.responses)
}

func TestSimulator_EveryObstacleIsChecked(t *testing.T) {
	log := &callLog{}
	scene := world.NewScene(nil, testGrid())
	scene.AddStatic(newFakeEntity("a", log, false, boxPtr(0, 0, 50, 50)))
	scene.AddStatic(newFakeEntity("deco", log, true, nil))
	scene.AddStatic(newFakeEntity("b", log, false, boxPtr(40, 40, 50, 50)))
	actor := newFakeEntity("actor", log, false, boxPtr(45, 45, 2, 2))
	scene.AddDynamic(actor)

	sim := newRunningSimulator(scene, nil, SimulatorConfig{})
	sim.Update()

	assert.Equal(t, []entity.Violation{entity.ViolationBlocked, entity.ViolationBlocked}, actor.responses)
}

func TestSimulator_RestingOnFloor(t *testing.T) {
	scene, player := newPlayerScene(floor())
	sim := newRunningSimulator(scene, nil, SimulatorConfig{})

	for i := 0; i < 10; i++ {
		sim.Update()
		assert.Equal(t, geom.Vec(80, 80), player.Position(), "tick %d", i+1)
		assert.Equal(t, 0.0, player.JumpSpeed())
		assert.Equal(t, entity.MotionIdle, player.State())
	}
}

func TestSimulator_GravityResetAfterLanding(t *testing.T) {
	scene, player := newPlayerScene(floor())
	sim := newRunningSimulator(scene, nil, SimulatorConfig{})

	sim.Update()
	assert.Equal(t, 0.0, player.Gravity(), "landing zeroes gravity for the tick")

	sim.Update()
	assert.Equal(t, 7.0, player.Gravity(), "no collision restores gravity")
}

func TestSimulator_WalkWithoutFloor(t *testing.T) {
	scene, player := newPlayerScene()
	sim := newRunningSimulator(scene, nil, SimulatorConfig{})
	player.SetInput(entity.InputState{Right: true})

	for i := 0; i < 5; i++ {
		sim.Update()
	}

	assert.InDelta(t, 80+10, player.Position().X, 1e-9)
	assert.InDelta(t, 80+35, player.Position().Y, 1e-9)
}

func TestSimulator_LandingKeepsHorizontalMove(t *testing.T) {
	scene, player := newPlayerScene(floor())
	sim := newRunningSimulator(scene, nil, SimulatorConfig{})
	player.SetInput(entity.InputState{Right: true})

	sim.Update()

	assert.Equal(t, "BOTTOM", player.DirectionalHitBox().Hits().String())
	assert.Equal(t, geom.Vec(90, 88), player.HitBox().Bounds().Origin())
	assert.Equal(t, geom.Vec(82, 80), player.Position())
	assert.Equal(t, 0.0, player.Gravity())

	for i := 0; i < 3; i++ {
		sim.Update()
	}
	assert.Equal(t, geom.Vec(88, 80), player.Position(), "walks 2 per tick along the floor")
}

func TestSimulator_BlockedByWall(t *testing.T) {
	wall := entity.NewHitBox(130, 0, 40, 125)
	scene, player := newPlayerScene(floor(), wall)
	sim := newRunningSimulator(scene, nil, SimulatorConfig{})
	player.SetInput(entity.InputState{Right: true})

	for i := 0; i < 20; i++ {
		sim.Update()
	}

	assert.Equal(t, geom.Vec(96, 88), player.HitBox().Bounds().Origin())
	assert.Equal(t, geom.Vec(88, 80), player.Position())
}

func TestSimulator_LeavingMapRollsBackBothAxes(t *testing.T) {
	scene := world.NewScene(nil, testGrid())
	// overlaps the hitbox after the move; must not be consulted
	scene.AddStatic(entity.NewStatic(nil, entity.NewHitBox(600, 110, 40, 40)))
	player := entity.NewPlayer(620, 100, entity.DefaultPlayerParams())
	scene.AddDynamic(player)
	require.Equal(t, 640.0, player.HitBox().Bounds().Right())

	sim := newRunningSimulator(scene, nil, SimulatorConfig{})
	player.SetInput(entity.InputState{Right: true})
	sim.Update()

	assert.Equal(t, geom.Vec(608, 88), player.HitBox().Bounds().Origin())
	assert.Equal(t, geom.Vec(600, 80), player.Position())
	assert.Equal(t, 0.0, player.Gravity())
	assert.True(t, player.DirectionalHitBox().Hits().Empty())
}

func TestSimulator_SideTracking(t *testing.T) {
	// the block only touches the hitbox's top-right corner once the floor
	// has undone the fall, so no side strip reaches it
	block := func() *entity.HitBox { return entity.NewHitBox(121, 60, 10, 30) }

	tests := []struct {
		name     string
		tracking config.SideTracking
		wantBox  geom.Vector2
	}{
		{"accumulate reuses the floor side", config.SideTrackingAccumulate, geom.Vec(90, 88)},
		{"per obstacle falls back to full rollback", config.SideTrackingPerObstacle, geom.Vec(88, 88)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene, player := newPlayerScene(floor(), block())
			sim := newRunningSimulator(scene, nil, SimulatorConfig{SideTracking: tt.tracking})
			player.SetInput(entity.InputState{Right: true})

			sim.Update()
			assert.Equal(t, tt.wantBox, player.HitBox().Bounds().Origin())
		})
	}
}

func TestSimulator_BoundsHighlight(t *testing.T) {
	scene, player := newPlayerScene(floor())
	opts := world.NewOptions(false, true, false)
	sim := newRunningSimulator(scene, opts, SimulatorConfig{})
	hb := player.DirectionalHitBox()

	sim.Update()
	assert.Equal(t, color.Color(ColorHighlight), hb.Side(entity.SideBottom).Stroke())
	assert.Equal(t, color.Color(entity.ColorBounds), hb.Side(entity.SideTop).Stroke())

	sim.Update()
	assert.Equal(t, color.Color(entity.ColorBounds), hb.Side(entity.SideBottom).Stroke(), "reset at the next tick")
}

func TestSimulator_FPS(t *testing.T) {
	scene, _ := newPlayerScene(floor())

	t.Run("enabled", func(t *testing.T) {
		sim := newRunningSimulator(scene, world.NewOptions(true, false, false), SimulatorConfig{})
		for i := 0; i < 51; i++ {
			sim.Update()
		}
		assert.Equal(t, 100, sim.FPS())
	})

	t.Run("disabled", func(t *testing.T) {
		sim := newRunningSimulator(scene, world.NewOptions(false, false, false), SimulatorConfig{})
		for i := 0; i < 101; i++ {
			sim.Update()
		}
		assert.Equal(t, 0, sim.FPS())
	})
}

func TestSimulator_GridBuiltOnce(t *testing.T) {
	scene, _ := newPlayerScene()
	sim := newRunningSimulator(scene, nil, SimulatorConfig{})
	assert.Nil(t, sim.grid)

	g := sim.gridSprite()
	require.NotNil(t, g)
	assert.Same(t, g, sim.gridSprite())
	assert.Equal(t, geom.Vec(16, 16), g.TileSize())
	assert.Equal(t, 2.0, g.Scale())
}

func TestSimulator_Deterministic(t *testing.T) {
	run := func() uint64 {
		scene, player := newPlayerScene(floor(), entity.NewHitBox(300, 0, 40, 125))
		sim := newRunningSimulator(scene, nil, SimulatorConfig{})
		inputs := []entity.InputState{
			{Right: true}, {Right: true, Run: true}, {Jump: true, Right: true}, {}, {Left: true},
		}
		for i := 0; i < 200; i++ {
			player.SetInput(inputs[(i/20)%len(inputs)])
			sim.Update()
		}
		return sim.Digest()
	}

	assert.Equal(t, run(), run())

	scene, _ := newPlayerScene()
	other := NewSimulator(scene, nil, nil, SimulatorConfig{}, nil)
	assert.NotEqual(t, run(), other.Digest())
}
