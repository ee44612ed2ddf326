package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectile_Advance(t *testing.T) {
	p := NewProjectile(128, 380, 16, 6, 9, 1)

	p.Advance()
	p.Advance()

	assert.True(t, p.Active)
	assert.Equal(t, Rect{X: 146, Y: 380, W: 16, H: 6}, p.Rect())
}

func TestProjectile_Deactivate(t *testing.T) {
	p := NewProjectile(0, 0, 16, 6, 9, 1)

	p.Deactivate()
	p.Advance()

	assert.False(t, p.Active)
	assert.Equal(t, 0.0, p.X, "spent projectiles do not move")
}
