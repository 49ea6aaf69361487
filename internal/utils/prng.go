// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService выбирает типы врагов для смешанных волн. Один экземпляр на
// сессию, поэтому фиксированный seed повторяет тот же состав волн.
type PRNGService struct {
	seed int64
	rng  *rand.Rand
}

// NewPRNGService: seed 0 means the wall clock.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{seed: seed, rng: rand.New(rand.NewSource(seed))}
}

// Seed returns the seed actually in use.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Choose picks one id uniformly. It returns "" for an empty set.
func (s *PRNGService) Choose(ids []string) string {
	switch len(ids) {
	case 0:
		return ""
	case 1:
		return ids[0]
	}
	return ids[s.rng.Intn(len(ids))]
}
