package entity

// Key gates the door behind a question.
// Taken means a question is open or answered; Collected means it was answered correctly.
// Collected implies Taken.
type Key struct {
	Rect
	Taken     bool
	Collected bool
}

// Take marks the key as triggered so it cannot re-open a question
func (k *Key) Take() {
	k.Taken = true
}

// Collect marks the key as permanently collected for the level
func (k *Key) Collect() {
	k.Taken = true
	k.Collected = true
}

// Release re-arms the key after a wrong answer.
// A collected key stays taken.
func (k *Key) Release() {
	if k.Collected {
		return
	}
	k.Taken = false
}

// Door leads to the next level once the key is collected
type Door struct {
	Rect
}

// EnemyTemplate is the immutable starting data of one enemy
type EnemyTemplate struct {
	Kind        EnemyKind
	Rect        Rect
	Speed       float64
	Health      int
	Dir         int
	PatrolRange float64
}

// LevelTemplate is the immutable definition of a level
type LevelTemplate struct {
	ID        string
	Name      string
	Attack    AttackMode
	SpawnX    float64
	SpawnY    float64
	Platforms []Platform
	Enemies   []EnemyTemplate
	Key       Rect
	Door      Rect
}

// Level is the live, mutable instance of a LevelTemplate
type Level struct {
	Template    *LevelTemplate
	Platforms   []Platform
	Enemies     []*Enemy
	Projectiles []*Projectile
	Key         Key
	Door        Door
}

// Instantiate builds fresh live state from the template.
// Nothing is shared with a previous instance.
func (t *LevelTemplate) Instantiate() *Level {
	lvl := &Level{
		Template:  t,
		Platforms: make([]Platform, len(t.Platforms)),
		Enemies:   make([]*Enemy, 0, len(t.Enemies)),
		Key:       Key{Rect: t.Key},
		Door:      Door{Rect: t.Door},
	}
	copy(lvl.Platforms, t.Platforms)

	for i, et := range t.Enemies {
		lvl.Enemies = append(lvl.Enemies, &Enemy{
			ID:           EntityID(i + 1),
			Kind:         et.Kind,
			X:            et.Rect.X,
			Y:            et.Rect.Y,
			W:            et.Rect.W,
			H:            et.Rect.H,
			Speed:        et.Speed,
			Dir:          et.Dir,
			PatrolOrigin: et.Rect.X,
			PatrolRange:  et.PatrolRange,
			Health:       et.Health,
			MaxHealth:    et.Health,
			Alive:        true,
		})
	}
	return lvl
}

// LiveEnemies returns the number of enemies still alive
func (l *Level) LiveEnemies() int {
	n := 0
	for _, e := range l.Enemies {
		if e.Alive {
			n++
		}
	}
	return n
}

// ClearProjectiles removes every projectile
func (l *Level) ClearProjectiles() {
	l.Projectiles = nil
}

// Clone returns a deep copy of the live state.
// The template pointer is shared since templates are immutable.
func (l *Level) Clone() *Level {
	c := &Level{
		Template:    l.Template,
		Platforms:   make([]Platform, len(l.Platforms)),
		Enemies:     make([]*Enemy, len(l.Enemies)),
		Projectiles: make([]*Projectile, len(l.Projectiles)),
		Key:         l.Key,
		Door:        l.Door,
	}
	copy(c.Platforms, l.Platforms)
	for i, e := range l.Enemies {
		ec := *e
		c.Enemies[i] = &ec
	}
	for i, p := range l.Projectiles {
		pc := *p
		c.Projectiles[i] = &pc
	}
	return c
}
