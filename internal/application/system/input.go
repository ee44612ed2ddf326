package system

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/keygate/internal/domain/entity"
)

// TouchButton identifies an on-screen control
type TouchButton int

const (
	TouchLeft TouchButton = iota
	TouchRight
	TouchJump
	TouchAttack
)

// TouchRegion is an on-screen control and the area that activates it
type TouchRegion struct {
	Button TouchButton
	Label  string
	Rect   entity.Rect
}

// InputSystem reads keyboard, mouse and touch input from ebiten
type InputSystem struct {
	regions  []TouchRegion
	touchIDs []ebiten.TouchID
	points   []image.Point
}

// NewInputSystem creates an input system with on-screen controls laid out
// along the bottom of a screen of the given size
func NewInputSystem(screenW, screenH int) *InputSystem {
	return &InputSystem{regions: TouchLayout(float64(screenW), float64(screenH))}
}

// TouchLayout places the four on-screen controls: movement bottom-left,
// actions bottom-right
func TouchLayout(screenW, screenH float64) []TouchRegion {
	const size, gap, margin = 64.0, 12.0, 16.0
	y := screenH - size - margin
	return []TouchRegion{
		{Button: TouchLeft, Label: "<", Rect: entity.Rect{X: margin, Y: y, W: size, H: size}},
		{Button: TouchRight, Label: ">", Rect: entity.Rect{X: margin + size + gap, Y: y, W: size, H: size}},
		{Button: TouchJump, Label: "^", Rect: entity.Rect{X: screenW - margin - 2*size - gap, Y: y, W: size, H: size}},
		{Button: TouchAttack, Label: "X", Rect: entity.Rect{X: screenW - margin - size, Y: y, W: size, H: size}},
	}
}

// Regions returns the on-screen controls for drawing
func (s *InputSystem) Regions() []TouchRegion {
	return s.regions
}

// GetInput reads the current merged input state
func (s *InputSystem) GetInput() InputState {
	return KeyboardInput(ebiten.IsKeyPressed).Merge(PointerInput(s.pointers(), s.regions))
}

// pointers returns every active touch plus the cursor while the left button is held
func (s *InputSystem) pointers() []image.Point {
	s.points = s.points[:0]
	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	for _, id := range s.touchIDs {
		x, y := ebiten.TouchPosition(id)
		s.points = append(s.points, image.Pt(x, y))
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		s.points = append(s.points, image.Pt(x, y))
	}
	return s.points
}

// KeyboardInput maps held keys to intent: arrows or A/D to move,
// Space/W/Up to jump, X or J to attack
func KeyboardInput(pressed func(ebiten.Key) bool) InputState {
	return InputState{
		MoveLeft:  pressed(ebiten.KeyArrowLeft) || pressed(ebiten.KeyA),
		MoveRight: pressed(ebiten.KeyArrowRight) || pressed(ebiten.KeyD),
		Jump:      pressed(ebiten.KeySpace) || pressed(ebiten.KeyW) || pressed(ebiten.KeyArrowUp),
		Attack:    pressed(ebiten.KeyX) || pressed(ebiten.KeyJ),
	}
}

// PointerInput maps pointer positions onto the on-screen controls
func PointerInput(points []image.Point, regions []TouchRegion) InputState {
	var in InputState
	for _, p := range points {
		for _, r := range regions {
			if !contains(r.Rect, float64(p.X), float64(p.Y)) {
				continue
			}
			switch r.Button {
			case TouchLeft:
				in.MoveLeft = true
			case TouchRight:
				in.MoveRight = true
			case TouchJump:
				in.Jump = true
			case TouchAttack:
				in.Attack = true
			}
		}
	}
	return in
}

func contains(r entity.Rect, x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}
