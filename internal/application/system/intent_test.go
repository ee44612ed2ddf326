package system

import (
	"image"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

func TestInputState_HorizontalDir(t *testing.T) {
	tests := []struct {
		name  string
		input InputState
		want  int
	}{
		{"none", InputState{}, 0},
		{"left", InputState{MoveLeft: true}, -1},
		{"right", InputState{MoveRight: true}, 1},
		{"both, right wins", InputState{MoveLeft: true, MoveRight: true}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.input.HorizontalDir())
		})
	}
}

func TestInputState_Merge(t *testing.T) {
	keys := InputState{MoveLeft: true}
	touch := InputState{Attack: true}

	got := keys.Merge(touch)

	assert.Equal(t, InputState{MoveLeft: true, Attack: true}, got)
}

func TestKeyboardInput(t *testing.T) {
	held := map[ebiten.Key]bool{
		ebiten.KeyA:     true,
		ebiten.KeySpace: true,
		ebiten.KeyX:     true,
	}

	got := KeyboardInput(func(k ebiten.Key) bool { return held[k] })

	assert.Equal(t, InputState{MoveLeft: true, Jump: true, Attack: true}, got)
}

func TestPointerInput(t *testing.T) {
	regions := TouchLayout(900, 500)

	center := func(b TouchButton) image.Point {
		for _, r := range regions {
			if r.Button == b {
				return image.Pt(int(r.Rect.X+r.Rect.W/2), int(r.Rect.Y+r.Rect.H/2))
			}
		}
		t.Fatalf("no region for %d", b)
		return image.Point{}
	}

	tests := []struct {
		name   string
		points []image.Point
		want   InputState
	}{
		{"no pointers", nil, InputState{}},
		{"outside controls", []image.Point{image.Pt(450, 100)}, InputState{}},
		{"right", []image.Point{center(TouchRight)}, InputState{MoveRight: true}},
		{"multi touch", []image.Point{center(TouchLeft), center(TouchJump)}, InputState{MoveLeft: true, Jump: true}},
		{"attack", []image.Point{center(TouchAttack)}, InputState{Attack: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PointerInput(tt.points, regions))
		})
	}
}

func TestTouchLayout_NoOverlap(t *testing.T) {
	regions := TouchLayout(900, 500)

	assert.Len(t, regions, 4)
	for i := range regions {
		for j := i + 1; j < len(regions); j++ {
			assert.False(t, rectsTouch(regions[i], regions[j]), "%s and %s overlap", regions[i].Label, regions[j].Label)
		}
	}
}

func rectsTouch(a, b TouchRegion) bool {
	return a.Rect.X < b.Rect.X+b.Rect.W && a.Rect.X+a.Rect.W > b.Rect.X &&
		a.Rect.Y < b.Rect.Y+b.Rect.H && a.Rect.Y+a.Rect.H > b.Rect.Y
}
