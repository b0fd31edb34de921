// Package generator builds the word queue for a session.
package generator

import (
	"math/rand"
	"time"
)

// Generator draws words at random from a vocabulary.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed returns a Generator with a fixed seed.
func NewWithSeed(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Queue samples count words uniformly with replacement. Duplicates are
// allowed. An empty vocabulary yields an empty queue.
func (g *Generator) Queue(words []string, count int) []string {
	if len(words) == 0 || count <= 0 {
		return nil
	}
	result := make([]string, 0, count)
	for i := 0; i < count; i++ {
		result = append(result, words[g.rnd.Intn(len(words))])
	}
	return result
}
