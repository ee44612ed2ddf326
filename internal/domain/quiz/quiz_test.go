package quiz

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestPool(t *testing.T) *Pool {
	t.Helper()
	pool, err := NewPool([]Question{
		{Prompt: "What is the capital of Indonesia?", Answers: []string{"Jakarta"}},
		{Prompt: "Which planet is the largest in the Solar System?", Answers: []string{"Jupiter"}},
		{Prompt: "What is the tallest mountain on Earth?", Answers: []string{"Everest", "Mount Everest"}},
	})
	require.NoError(t, err)
	return pool
}

func TestQuestion_Check(t *testing.T) {
	q := Question{Prompt: "Tallest?", Answers: []string{"Everest", "Mount Everest"}}

	tests := []struct {
		name   string
		answer string
		want   bool
	}{
		{"exact", "Everest", true},
		{"lower case", "everest", true},
		{"surrounding space", "  EVEREST \n", true},
		{"alternate answer", "mount everest", true},
		{"wrong", "K2", false},
		{"empty", "", false},
		{"whitespace only", "   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, q.Check(tt.answer))
		})
	}
}

func TestQuestion_CheckUnicode(t *testing.T) {
	q := Question{Prompt: "Capital of Iceland?", Answers: []string{"Reykjavík"}}

	// decomposed i + combining acute
	assert.True(t, q.Check("REYKJAVI\u0301K"))
}

func TestNewPool_Empty(t *testing.T) {
	_, err := NewPool(nil)
	assert.ErrorIs(t, err, ErrEmptyPool)
}

func TestPool_PickDeterministic(t *testing.T) {
	pool := createTestPool(t)

	a := rand.New(rand.NewSource(7))
	b := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		assert.Equal(t, pool.Pick(a), pool.Pick(b))
	}
}

func TestPool_PickCoversPool(t *testing.T) {
	pool := createTestPool(t)
	rng := rand.New(rand.NewSource(1))

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		seen[pool.Pick(rng).Prompt] = true
	}

	assert.Len(t, seen, pool.Len())
}
