package entity

// Projectile is a single-hit shot travelling horizontally
type Projectile struct {
	X, Y   float64
	W, H   float64
	VX     float64
	Damage int
	Active bool
}

// NewProjectile creates an active projectile
func NewProjectile(x, y, w, h, vx float64, damage int) *Projectile {
	return &Projectile{
		X:      x,
		Y:      y,
		W:      w,
		H:      h,
		VX:     vx,
		Damage: damage,
		Active: true,
	}
}

// Advance moves the projectile by one tick of velocity
func (p *Projectile) Advance() {
	if !p.Active {
		return
	}
	p.X += p.VX
}

// Rect returns the projectile's bounding box
func (p *Projectile) Rect() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// Deactivate marks the projectile as spent
func (p *Projectile) Deactivate() {
	p.Active = false
}
