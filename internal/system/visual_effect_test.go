package system

import (
	"testing"

	"go-path-defense/internal/component"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/types"

	"github.com/stretchr/testify/assert"
)

func TestVisualEffectSystem_ExpiresFlashesAndBlasts(t *testing.T) {
	ecs := entity.NewECS()
	ecs.DamageFlashes[1] = &component.DamageFlash{Timer: 120, Duration: 120}
	ecs.Blasts[2] = &component.Blast{X: 10, Y: 10, MaxRadius: 40, Duration: 250}
	s := NewVisualEffectSystem(ecs)

	s.Update(100)
	assert.Contains(t, ecs.DamageFlashes, types.EntityID(1))
	assert.InDelta(t, 16.0, ecs.Blasts[2].Radius(), 1e-9)

	s.Update(100)
	assert.NotContains(t, ecs.DamageFlashes, types.EntityID(1))
	assert.Contains(t, ecs.Blasts, types.EntityID(2))

	s.Update(50)
	assert.Empty(t, ecs.Blasts)
}
