package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPRNGService_SeedIsReproducible(t *testing.T) {
	a := NewPRNGService(7)
	b := NewPRNGService(7)
	ids := []string{"BASIC", "FAST", "ARMORED"}

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Choose(ids), b.Choose(ids))
	}
}

func TestPRNGService_ChooseCoversSet(t *testing.T) {
	rng := NewPRNGService(1)
	ids := []string{"BASIC", "FAST"}
	seen := map[string]int{}

	for i := 0; i < 200; i++ {
		seen[rng.Choose(ids)]++
	}
	assert.Len(t, seen, 2)
	assert.Equal(t, "", rng.Choose(nil))
	assert.Equal(t, "BOSS", rng.Choose([]string{"BOSS"}))
}

func TestPRNGService_ZeroSeedUsesClock(t *testing.T) {
	assert.NotZero(t, NewPRNGService(0).Seed())
	assert.Equal(t, int64(42), NewPRNGService(42).Seed())
}
