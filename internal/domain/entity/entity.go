// Package entity defines the things that live in a scene: static obstacles,
// the player, their hitboxes and drawables.
package entity

// Violation is the reason a move was rejected by the simulator
type Violation int

const (
	// ViolationOutOfBounds means the hitbox left the map bounds
	ViolationOutOfBounds Violation = iota
	// ViolationBlocked means the hitbox overlapped an obstacle
	ViolationBlocked
)

// String returns the string representation of the violation
func (v Violation) String() string {
	switch v {
	case ViolationOutOfBounds:
		return "OutOfBounds"
	case ViolationBlocked:
		return "Blocked"
	default:
		return "Unknown"
	}
}

// Entity is a unit the simulator advances every tick.
//
// Drawing and collision are optional capabilities: HitBox and Drawable return
// nil when the entity lacks them.
type Entity interface {
	Update()

	HasHitbox() bool
	HitBox() Collider

	IsDrawable() bool
	Drawable() Drawable

	// RespondToInvalidMove is called after the entity's move this tick was
	// rejected. Inert entities ignore it.
	RespondToInvalidMove(v Violation)
}

// Static is an entity with no behavior of its own: land, platforms,
// decorations and the background.
type Static struct {
	drawable Drawable
	hitbox   Collider
}

// NewStatic creates a static entity. Either capability may be nil.
func NewStatic(drawable Drawable, hitbox Collider) *Static {
	return &Static{drawable: drawable, hitbox: hitbox}
}

// Update does nothing; statics never move
func (s *Static) Update() {}

func (s *Static) HasHitbox() bool { return s.hitbox != nil }
func (s *Static) HitBox() Collider { return s.hitbox }
func (s *Static) IsDrawable() bool { return s.drawable != nil }
func (s *Static) Drawable() Drawable { return s.drawable }
func (s *Static) RespondToInvalidMove(Violation) {}
