package system

import (
	"time"

	"github.com/younwookim/keygate/internal/domain/entity"
	"github.com/younwookim/keygate/internal/infrastructure/config"
)

// CombatSystem handles enemy patrols, player attacks, projectiles and contact damage
type CombatSystem struct {
	config *config.GameSettings

	// Event callbacks
	OnEnemyHit  func(enemy *entity.Enemy, killed bool)
	OnPlayerHit func(player *entity.Player)
}

// NewCombatSystem creates a new combat system
func NewCombatSystem(cfg *config.GameSettings) *CombatSystem {
	return &CombatSystem{config: cfg}
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

// Patrol advances every live enemy one tick
func (s *CombatSystem) Patrol(enemies []*entity.Enemy) {
	for _, e := range enemies {
		e.Patrol()
	}
}

// Attack issues an attack if one is requested and the cooldown has expired.
// It returns true when an attack was issued.
func (s *CombatSystem) Attack(player *entity.Player, level *entity.Level, attack bool, now time.Duration) bool {
	if !attack || !player.CanAttack(now) {
		return false
	}

	cfg := s.config.Combat
	player.CooldownUntil = now + ms(cfg.AttackCooldownMs)
	player.GrantInvulnerability(now, ms(cfg.AttackInvulnerableMs))

	switch level.Template.Attack {
	case entity.AttackProjectile:
		s.spawnProjectile(player, level)
	default:
		s.melee(player, level)
	}
	return true
}

// MeleeHitbox returns the strike area immediately in front of the player
func (s *CombatSystem) MeleeHitbox(player *entity.Player) entity.Rect {
	cfg := s.config.Combat
	return entity.Rect{
		X: player.X + player.W,
		Y: player.Y + cfg.MeleeInsetTop,
		W: cfg.MeleeReach,
		H: player.H - cfg.MeleeInsetTop - cfg.MeleeInsetBottom,
	}
}

// melee strikes every live enemy inside the hitbox
func (s *CombatSystem) melee(player *entity.Player, level *entity.Level) {
	hitbox := s.MeleeHitbox(player)
	for _, e := range level.Enemies {
		if !e.Alive || !entity.Overlaps(hitbox, e.Rect()) {
			continue
		}
		killed := e.TakeDamage(s.config.Combat.Damage)
		e.Turn()
		s.enemyHit(e, killed)
	}
}

func (s *CombatSystem) spawnProjectile(player *entity.Player, level *entity.Level) {
	pc := s.config.Projectile
	p := entity.NewProjectile(
		player.X+player.W,
		player.Y+player.H/2-pc.Height/2,
		pc.Width, pc.Height,
		pc.Speed,
		s.config.Combat.Damage,
	)
	level.Projectiles = append(level.Projectiles, p)
}

// UpdateProjectiles advances projectiles, resolves hits and drops spent ones.
// A projectile hits at most one enemy: the first live one in list order.
func (s *CombatSystem) UpdateProjectiles(level *entity.Level) {
	limit := s.config.World.Width + s.config.Projectile.DespawnMargin

	kept := level.Projectiles[:0]
	for _, p := range level.Projectiles {
		p.Advance()

		for _, e := range level.Enemies {
			if !e.Alive || !entity.Overlaps(p.Rect(), e.Rect()) {
				continue
			}
			killed := e.TakeDamage(p.Damage)
			p.Deactivate()
			s.enemyHit(e, killed)
			break
		}

		if p.X > limit || p.X+p.W < 0 {
			p.Deactivate()
		}
		if p.Active {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(level.Projectiles); i++ {
		level.Projectiles[i] = nil
	}
	level.Projectiles = kept
	if len(level.Projectiles) == 0 {
		level.Projectiles = nil
	}
}

// CheckContact applies contact damage from the first live enemy touching the
// player. Nothing happens while the player is invulnerable. It returns true
// when the player was hurt.
func (s *CombatSystem) CheckContact(player *entity.Player, level *entity.Level, now time.Duration) bool {
	if player.IsInvulnerable(now) {
		return false
	}

	pr := player.Rect()
	for _, e := range level.Enemies {
		if !e.Alive || !entity.Overlaps(pr, e.Rect()) {
			continue
		}
		player.Health -= s.contactDamage()
		player.GrantInvulnerability(now, ms(s.config.Combat.InvulnerabilityMs))
		if s.OnPlayerHit != nil {
			s.OnPlayerHit(player)
		}
		return true
	}
	return false
}

func (s *CombatSystem) contactDamage() int {
	if s.config.Combat.ContactDamage > 0 {
		return s.config.Combat.ContactDamage
	}
	return 1
}

func (s *CombatSystem) enemyHit(e *entity.Enemy, killed bool) {
	if s.OnEnemyHit != nil {
		s.OnEnemyHit(e, killed)
	}
}
