package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckProgress(t *testing.T) {
	tests := []struct {
		name      string
		x         float64
		taken     bool
		collected bool
		want      Progress
	}{
		{"nothing nearby", 80, false, false, ProgressNone},
		{"key untaken", 300, false, false, ProgressKeyTouched},
		{"key already taken", 300, true, false, ProgressNone},
		{"door without key", 830, false, false, ProgressNone},
		{"door with quiz pending", 830, true, false, ProgressNone},
		{"door with key", 830, true, true, ProgressDoorReached},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := createTestPlayer()
			p.X = tt.x
			lvl := createTestLevel(0)
			lvl.Key.Taken = tt.taken
			lvl.Key.Collected = tt.collected

			assert.Equal(t, tt.want, CheckProgress(p, lvl))
		})
	}
}
