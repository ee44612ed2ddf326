package system

import "github.com/younwookim/keygate/internal/domain/entity"

// Progress is the level trigger reached this tick
type Progress int

const (
	ProgressNone Progress = iota
	ProgressKeyTouched
	ProgressDoorReached
)

// CheckProgress evaluates the key and door triggers for the player's
// current position. The key is evaluated first.
func CheckProgress(player *entity.Player, level *entity.Level) Progress {
	pr := player.Rect()
	if !level.Key.Taken && entity.Overlaps(pr, level.Key.Rect) {
		return ProgressKeyTouched
	}
	if level.Key.Collected && entity.Overlaps(pr, level.Door.Rect) {
		return ProgressDoorReached
	}
	return ProgressNone
}
