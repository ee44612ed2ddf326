package playing

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/younwookim/keygate/internal/domain/entity"
	"golang.org/x/image/colornames"
)

// Colors for rendering
var (
	colorSky          = colornames.Skyblue
	colorPlatformTop  = color.RGBA{207, 174, 135, 255}
	colorPlatformBody = color.RGBA{139, 95, 59, 255}
	colorOutline      = color.RGBA{0, 0, 0, 64}
	colorKey          = color.RGBA{246, 197, 68, 255}
	colorKeyInner     = color.RGBA{194, 132, 0, 255}
	colorDoor         = color.RGBA{107, 63, 31, 255}
	colorDoorInner    = color.RGBA{223, 168, 107, 255}
	colorPlayer       = color.RGBA{231, 76, 60, 255}
	colorPlayerFlash  = color.RGBA{255, 255, 255, 200}
	colorProjectile   = colornames.Gold
	colorHeart        = color.RGBA{255, 77, 77, 255}
	colorHeartEmpty   = color.RGBA{170, 170, 170, 255}
	colorText         = colornames.White
	colorTextShadow   = color.RGBA{0, 0, 0, 160}
	colorTouch        = color.RGBA{255, 255, 255, 60}
	colorPauseBG      = color.RGBA{0, 0, 0, 128}
	colorGameOverBG   = color.RGBA{100, 0, 0, 180}
	colorCompleteBG   = color.RGBA{0, 60, 0, 160}
)

var enemyColors = map[entity.EnemyKind]color.RGBA{
	entity.EnemySlime:  {198, 40, 40, 255},
	entity.EnemyBat:    colornames.Mediumpurple,
	entity.EnemyKnight: colornames.Slategray,
}

// enemyColor returns the body color for an enemy kind
func enemyColor(kind entity.EnemyKind) color.RGBA {
	if c, ok := enemyColors[kind]; ok {
		return c
	}
	return colornames.Magenta
}

// parseColor accepts "#rrggbb", "#rgb" or an SVG color name.
// Empty strings and unknown names fall back to the sky color.
func parseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return colorSky, nil
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		return colorSky, fmt.Errorf("unknown color %q", s)
	}

	c := color.RGBA{A: 255}
	var err error
	switch len(s) {
	case 7:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B)
	case 4:
		_, err = fmt.Sscanf(s, "#%1x%1x%1x", &c.R, &c.G, &c.B)
		c.R *= 17
		c.G *= 17
		c.B *= 17
	default:
		err = fmt.Errorf("bad length")
	}
	if err != nil {
		return colorSky, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c, nil
}

// flash lightens c toward white on alternating four-tick spans
func flash(c color.RGBA, tick uint64) color.RGBA {
	if tick/4%2 == 0 {
		return c
	}
	return color.RGBA{
		R: uint8((int(c.R) + 255) / 2),
		G: uint8((int(c.G) + 255) / 2),
		B: uint8((int(c.B) + 255) / 2),
		A: c.A,
	}
}
