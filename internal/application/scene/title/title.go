// Package title provides the start screen.
package title

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/younwookim/keygate/internal/application/scene"
)

const help = `Arrows / A D   move
Space / W      jump
X / J          attack
Esc / P        pause

Touch the key and answer its question,
then reach the door.

Press Enter or tap to start. Esc quits.`

// Title is the start screen. Starting builds the next scene lazily so a
// content error surfaces from Update.
type Title struct {
	name    string
	next    func() (scene.Scene, error)
	face    ebtext.Face
	screenW int
	screenH int
}

// New creates the title screen
func New(name string, screenW, screenH int, next func() (scene.Scene, error)) *Title {
	return &Title{
		name:    name,
		next:    next,
		face:    ebtext.NewGoXFace(basicfont.Face7x13),
		screenW: screenW,
		screenH: screenH,
	}
}

// Update waits for the start or quit key
func (t *Title) Update(_ float64) (scene.Scene, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return nil, scene.ErrQuit
	}
	if startPressed() {
		return t.next()
	}
	return nil, nil
}

func startPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
}

// Draw renders the title and controls
func (t *Title) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)

	op := &ebtext.DrawOptions{}
	op.GeoM.Scale(3, 3)
	op.GeoM.Translate(float64(t.screenW)/2-float64(len(t.name))*10.5, 80)
	op.ColorScale.ScaleWithColor(colornames.Gold)
	ebtext.Draw(screen, t.name, t.face, op)

	op = &ebtext.DrawOptions{}
	op.LineSpacing = 16
	op.GeoM.Translate(float64(t.screenW)/2-140, 170)
	op.ColorScale.ScaleWithColor(colornames.White)
	ebtext.Draw(screen, help, t.face, op)
}

// OnEnter is called when entering this scene
func (t *Title) OnEnter() {}

// OnExit is called when leaving this scene
func (t *Title) OnExit() {}
