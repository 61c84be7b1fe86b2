// Package generator picks randomized question sets.
package generator

import (
	"math/rand"
	"time"

	"github.com/verte-zerg/dogruyaz/internal/bank"
)

// Generator shuffles questions for a game session.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed returns a deterministic Generator.
func NewWithSeed(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Pick returns up to count questions in uniformly random order. The input is
// not modified.
func (g *Generator) Pick(questions []bank.Question, count int) []bank.Question {
	if count <= 0 || len(questions) == 0 {
		return nil
	}
	shuffled := make([]bank.Question, len(questions))
	copy(shuffled, questions)
	g.rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if count > len(shuffled) {
		count = len(shuffled)
	}
	return shuffled[:count]
}
