package playing

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/keygate/internal/application/sim"
	"github.com/younwookim/keygate/internal/application/state"
	"github.com/younwookim/keygate/internal/domain/entity"
)

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	snap := p.driver.Snapshot()
	p.drawBackground(screen, snap.LevelIndex)

	// shake offsets every world rect; the HUD stays put
	camX, camY := p.shake.Offset()

	p.drawPlatforms(screen, snap.Platforms, camX, camY)
	p.drawKey(screen, snap.Key, camX, camY)
	p.drawDoor(screen, snap.Door, camX, camY)
	p.drawEnemies(screen, snap.Enemies, camX, camY)
	p.drawProjectiles(screen, snap.Projectiles, camX, camY)
	p.drawPlayer(screen, snap, camX, camY)

	p.drawHUD(screen, snap)
	p.drawTouchControls(screen)

	switch snap.Phase {
	case state.StatePlaying:
		if snap.Paused {
			p.drawOverlay(screen, colorPauseBG, "PAUSED\n\nEsc/P: resume   Q: quit")
		}
	case state.StateLevelComplete:
		p.drawOverlay(screen, colorCompleteBG, fmt.Sprintf("%s complete!\n\nPress Enter to continue", snap.LevelName))
	case state.StateGameOver:
		p.drawOverlay(screen, colorGameOverBG, "GAME OVER\n\nPress Enter to restart")
	}

	if p.banner.Visible() {
		p.drawText(screen, p.banner.text, float64(p.screenW)/2-float64(len(p.banner.text))*3.5, 60)
	}

	p.quiz.Draw(screen)
}

func (p *Playing) drawBackground(screen *ebiten.Image, level int) {
	if p.bgImage != nil {
		// stretch to cover the screen
		b := p.bgImage.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(p.screenW)/float64(b.Dx()), float64(p.screenH)/float64(b.Dy()))
		screen.DrawImage(p.bgImage, op)
		return
	}
	bg := colorSky
	if level >= 0 && level < len(p.backgrounds) {
		bg = p.backgrounds[level]
	}
	screen.Fill(bg)
}

func fillRect(screen *ebiten.Image, r entity.Rect, dx, dy float64, c color.Color) {
	vector.DrawFilledRect(screen, float32(r.X+dx), float32(r.Y+dy), float32(r.W), float32(r.H), c, false)
}

func (p *Playing) drawPlatforms(screen *ebiten.Image, platforms []entity.Platform, dx, dy float64) {
	for _, pl := range platforms {
		r := pl.Rect
		fillRect(screen, entity.Rect{X: r.X, Y: r.Y - 8, W: r.W, H: 12}, dx, dy, colorPlatformTop)
		fillRect(screen, entity.Rect{X: r.X, Y: r.Y + 4, W: r.W, H: r.H - 4}, dx, dy, colorPlatformBody)
		vector.StrokeRect(screen, float32(r.X+dx), float32(r.Y-8+dy), float32(r.W), float32(r.H), 1, colorOutline, false)
	}
}

func (p *Playing) drawKey(screen *ebiten.Image, key entity.Key, dx, dy float64) {
	if key.Taken {
		return
	}
	r := key.Rect
	fillRect(screen, r, dx, dy, colorKey)
	fillRect(screen, entity.Rect{X: r.X + 6, Y: r.Y + 6, W: r.W - 12, H: r.H - 12}, dx, dy, colorKeyInner)
}

func (p *Playing) drawDoor(screen *ebiten.Image, door entity.Door, dx, dy float64) {
	r := door.Rect
	fillRect(screen, r, dx, dy, colorDoor)
	fillRect(screen, entity.Rect{X: r.X + 8, Y: r.Y + 10, W: r.W - 16, H: r.H - 20}, dx, dy, colorDoorInner)
}

func (p *Playing) drawEnemies(screen *ebiten.Image, enemies []entity.Enemy, dx, dy float64) {
	for _, e := range enemies {
		if !e.Alive {
			continue
		}
		fillRect(screen, e.Rect(), dx, dy, enemyColor(e.Kind))

		// angry eye on the side it is walking towards
		eyeX := e.X + 8
		if e.Dir > 0 {
			eyeX = e.X + e.W - 16
		}
		fillRect(screen, entity.Rect{X: eyeX, Y: e.Y + 10, W: 8, H: 8}, dx, dy, color.White)
		fillRect(screen, entity.Rect{X: eyeX + 2, Y: e.Y + 12, W: 4, H: 4}, dx, dy, color.Black)

		if e.MaxHealth > 1 {
			ratio := float64(e.Health) / float64(e.MaxHealth)
			fillRect(screen, entity.Rect{X: e.X, Y: e.Y - 6, W: e.W, H: 3}, dx, dy, colorHeartEmpty)
			fillRect(screen, entity.Rect{X: e.X, Y: e.Y - 6, W: e.W * ratio, H: 3}, dx, dy, colorHeart)
		}
	}
}

func (p *Playing) drawProjectiles(screen *ebiten.Image, projectiles []entity.Projectile, dx, dy float64) {
	for _, pr := range projectiles {
		if pr.Active {
			fillRect(screen, pr.Rect(), dx, dy, colorProjectile)
		}
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image, snap sim.Snapshot, dx, dy float64) {
	pl := snap.Player
	c := colorPlayer
	if snap.Invulnerable {
		c = flash(colorPlayer, snap.Tick)
		if c == colorPlayer {
			c = colorPlayerFlash
		}
	}
	fillRect(screen, pl.Rect(), dx, dy, c)
	// small face dot
	fillRect(screen, entity.Rect{X: pl.X + 8, Y: pl.Y + 12, W: 6, H: 6}, dx, dy, color.Black)
}

func (p *Playing) drawHUD(screen *ebiten.Image, snap sim.Snapshot) {
	// HP hearts
	for i := 0; i < snap.Player.MaxHealth; i++ {
		c := colorHeartEmpty
		if i < snap.Player.Health {
			c = colorHeart
		}
		fillRect(screen, entity.Rect{X: 12 + float64(i)*28, Y: 12, W: 22, H: 12}, 0, 0, c)
	}

	// key icon once taken
	if snap.Key.Taken {
		fillRect(screen, entity.Rect{X: 12, Y: 34, W: 18, H: 10}, 0, 0, colorKey)
	}

	label := fmt.Sprintf("%d/%d %s (%s)", snap.LevelIndex+1, snap.LevelCount, snap.LevelName, snap.Attack)
	p.drawText(screen, label, float64(p.screenW)-float64(len(label))*7-12, 12)
}

func (p *Playing) drawTouchControls(screen *ebiten.Image) {
	for _, r := range p.inputSystem.Regions() {
		fillRect(screen, r.Rect, 0, 0, colorTouch)
		p.drawText(screen, r.Label, r.Rect.X+r.Rect.W/2-3.5, r.Rect.Y+r.Rect.H/2-6)
	}
}

func (p *Playing) drawOverlay(screen *ebiten.Image, bg color.Color, msg string) {
	vector.DrawFilledRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), bg, false)
	p.drawText(screen, msg, float64(p.screenW)/2-80, float64(p.screenH)/2-30)
}

// drawText draws msg with a one-pixel shadow
func (p *Playing) drawText(screen *ebiten.Image, msg string, x, y float64) {
	op := &ebtext.DrawOptions{}
	op.LineSpacing = 16
	op.GeoM.Translate(x+1, y+1)
	op.ColorScale.ScaleWithColor(colorTextShadow)
	ebtext.Draw(screen, msg, p.face, op)

	op = &ebtext.DrawOptions{}
	op.LineSpacing = 16
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(colorText)
	ebtext.Draw(screen, msg, p.face, op)
}
