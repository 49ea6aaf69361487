// internal/defs/types.go
package defs

import "errors"

var (
	ErrUnknownEnemy      = errors.New("unknown enemy type")
	ErrUnknownTower      = errors.New("unknown tower type")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	ErrUnknownMap        = errors.New("unknown map")
	ErrInvalidDefinition = errors.New("invalid definition")
	ErrInvalidPath       = errors.New("invalid path")
)

// TowerKind selects the firing behaviour of a tower.
type TowerKind string

const (
	TowerBasic     TowerKind = "basic"
	TowerAoE       TowerKind = "aoe"
	TowerSlow      TowerKind = "slow"
	TowerMultiShot TowerKind = "multishot"
	TowerSupport   TowerKind = "support"
)

// EnemyKind selects the special ability of an enemy.
type EnemyKind string

const (
	EnemyStandard EnemyKind = "standard"
	EnemyHealer   EnemyKind = "healer"
	EnemyShield   EnemyKind = "shield"
	EnemySplit    EnemyKind = "split"
	EnemyTeleport EnemyKind = "teleport"
)
