package quiz

import (
	"errors"
	"math/rand"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// ErrEmptyPool is returned when a pool is built without questions
var ErrEmptyPool = errors.New("question pool is empty")

// Question is one gate question with its accepted answers
type Question struct {
	Prompt  string
	Answers []string
}

// Normalize trims, NFC-normalizes and case-folds an answer.
// A Caser holds state, so each call gets its own.
func Normalize(s string) string {
	return cases.Fold().String(norm.NFC.String(strings.TrimSpace(s)))
}

// Check reports whether answer matches any accepted answer.
// Empty or whitespace-only answers never match.
func (q Question) Check(answer string) bool {
	got := Normalize(answer)
	if got == "" {
		return false
	}
	for _, a := range q.Answers {
		if Normalize(a) == got {
			return true
		}
	}
	return false
}

// Pool is a fixed set of questions
type Pool struct {
	questions []Question
}

// NewPool creates a pool from the given questions
func NewPool(questions []Question) (*Pool, error) {
	if len(questions) == 0 {
		return nil, ErrEmptyPool
	}
	qs := make([]Question, len(questions))
	copy(qs, questions)
	return &Pool{questions: qs}, nil
}

// Len returns the number of questions
func (p *Pool) Len() int {
	return len(p.questions)
}

// Pick selects a question uniformly at random
func (p *Pool) Pick(rng *rand.Rand) Question {
	return p.questions[rng.Intn(len(p.questions))]
}
