// internal/event/types.go
package event

import "go-path-defense/internal/types"

const (
	WaveStarted     EventType = "WaveStarted"
	WaveCompleted   EventType = "WaveCompleted"
	EnemySpawned    EventType = "EnemySpawned"
	EnemyDied       EventType = "EnemyDied"       // kill credited, death sequence finished
	EnemyReachedEnd EventType = "EnemyReachedEnd" // враг дошёл до конца пути
	TowerPlaced     EventType = "TowerPlaced"
	TowerSold       EventType = "TowerSold"
	TowerUpgraded   EventType = "TowerUpgraded"
	GamePaused      EventType = "GamePaused"
	GameResumed     EventType = "GameResumed"
	GameOver        EventType = "GameOver"
)

// AllTypes lists every event the core emits.
var AllTypes = []EventType{
	WaveStarted, WaveCompleted, EnemySpawned, EnemyDied, EnemyReachedEnd,
	TowerPlaced, TowerSold, TowerUpgraded, GamePaused, GameResumed, GameOver,
}

// WaveData is the payload of WaveStarted and WaveCompleted.
type WaveData struct {
	Number int
	Total  int
}

// EnemyData is the payload of EnemySpawned.
type EnemyData struct {
	ID    types.EntityID
	DefID string
	X, Y  float64
}

// EnemyDiedData is the payload of EnemyDied.
type EnemyDiedData struct {
	ID     types.EntityID
	DefID  string
	X, Y   float64
	Reward int
}

// EnemyReachedEndData is the payload of EnemyReachedEnd.
type EnemyReachedEndData struct {
	ID     types.EntityID
	DefID  string
	Damage int
}

// TowerData is the payload of TowerPlaced, TowerSold and TowerUpgraded.
// Amount is the cost paid or the refund received.
type TowerData struct {
	ID     types.EntityID
	DefID  string
	Level  int
	Amount int
}

// GameOverData is the payload of GameOver.
type GameOverData struct {
	Victory    bool
	FinalWave  int
	FinalScore int
}
