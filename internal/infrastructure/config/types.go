package config

// GameSettings is the root config for game.json
type GameSettings struct {
	Display    DisplayConfig    `json:"display"`
	World      WorldConfig      `json:"world"`
	Player     PlayerConfig     `json:"player"`
	Combat     CombatConfig     `json:"combat"`
	Projectile ProjectileConfig `json:"projectile"`
	Feedback   FeedbackConfig   `json:"feedback"`
	Levels     []string         `json:"levels"`    // level file names under levels/, in play order
	Questions  string           `json:"questions"` // question pool file
}

type DisplayConfig struct {
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Scale        int    `json:"scale"`
	Framerate    int    `json:"framerate"`
	Title        string `json:"title"`
}

// WorldConfig describes the playfield bounds and gravity.
// Units are pixels and ticks.
type WorldConfig struct {
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Gravity    float64 `json:"gravity"`
	FallMargin float64 `json:"fallMargin"`
}

type PlayerConfig struct {
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Speed       float64 `json:"speed"`
	JumpImpulse float64 `json:"jumpImpulse"`
	MaxHealth   int     `json:"maxHealth"`
}

// CombatConfig durations are in milliseconds
type CombatConfig struct {
	AttackCooldownMs     int     `json:"attackCooldownMs"`
	InvulnerabilityMs    int     `json:"invulnerabilityMs"`
	AttackInvulnerableMs int     `json:"attackInvulnerableMs"`
	MeleeReach           float64 `json:"meleeReach"`
	MeleeInsetTop        float64 `json:"meleeInsetTop"`
	MeleeInsetBottom     float64 `json:"meleeInsetBottom"`
	Damage               int     `json:"damage"`
	ContactDamage        int     `json:"contactDamage"`
}

type ProjectileConfig struct {
	Width         float64 `json:"width"`
	Height        float64 `json:"height"`
	Speed         float64 `json:"speed"`
	DespawnMargin float64 `json:"despawnMargin"`
}

type FeedbackConfig struct {
	ScreenShake ScreenShakeConfig `json:"screenShake"`
}

type ScreenShakeConfig struct {
	Enabled   bool    `json:"enabled"`
	Intensity float64 `json:"intensity"`
	Decay     float64 `json:"decay"`
}
