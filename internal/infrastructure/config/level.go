package config

// LevelConfig is the root config for level JSON files
type LevelConfig struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Attack      string             `json:"attack"`
	Background  BackgroundConfig   `json:"background"`
	PlayerSpawn PositionConfig     `json:"playerSpawn"`
	Platforms   []RectConfig       `json:"platforms"`
	Enemies     []EnemySpawnConfig `json:"enemies"`
	Key         RectConfig         `json:"key"`
	Door        RectConfig         `json:"door"`
}

type BackgroundConfig struct {
	Color string `json:"color"`
}

type PositionConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type RectConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

type EnemySpawnConfig struct {
	Kind        string  `json:"kind"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	W           float64 `json:"w"`
	H           float64 `json:"h"`
	Speed       float64 `json:"speed"`
	Health      int     `json:"hp"`
	Dir         int     `json:"dir"`
	PatrolRange float64 `json:"patrolRange"`
}
