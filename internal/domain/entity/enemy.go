package entity

import "fmt"

// EnemyKind is the closed set of enemy identities.
// The renderer maps each kind to its visuals.
type EnemyKind int

const (
	EnemySlime EnemyKind = iota
	EnemyBat
	EnemyKnight
)

// String returns the config name of the enemy kind
func (k EnemyKind) String() string {
	switch k {
	case EnemySlime:
		return "slime"
	case EnemyBat:
		return "bat"
	case EnemyKnight:
		return "knight"
	default:
		return "unknown"
	}
}

// ParseEnemyKind converts a config name into an EnemyKind
func ParseEnemyKind(name string) (EnemyKind, error) {
	switch name {
	case "slime":
		return EnemySlime, nil
	case "bat":
		return EnemyBat, nil
	case "knight":
		return EnemyKnight, nil
	default:
		return EnemySlime, fmt.Errorf("unknown enemy kind %q", name)
	}
}

// Enemy represents a live enemy in the current level
type Enemy struct {
	ID   EntityID
	Kind EnemyKind

	X, Y  float64
	W, H  float64
	Speed float64
	Dir   int // +1 right, -1 left

	PatrolOrigin float64
	PatrolRange  float64

	Health    int
	MaxHealth int
	Alive     bool
}

// Rect returns the enemy's bounding box
func (e *Enemy) Rect() Rect {
	return Rect{X: e.X, Y: e.Y, W: e.W, H: e.H}
}

// Patrol moves the enemy one tick and bounces it at the ends of its range
func (e *Enemy) Patrol() {
	if !e.Alive {
		return
	}
	e.X += e.Speed * float64(e.Dir)
	if e.X < e.PatrolOrigin-e.PatrolRange {
		e.Dir = 1
	}
	if e.X > e.PatrolOrigin+e.PatrolRange {
		e.Dir = -1
	}
}

// Turn reverses the patrol direction
func (e *Enemy) Turn() {
	e.Dir = -e.Dir
}

// TakeDamage applies damage and returns true if this hit killed the enemy
func (e *Enemy) TakeDamage(damage int) bool {
	if !e.Alive {
		return false
	}
	e.Health -= damage
	if e.Health <= 0 {
		e.Alive = false
		return true
	}
	return false
}
