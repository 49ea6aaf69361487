package component

// WavePhase is the wave scheduler's state.
type WavePhase int

const (
	WaveIdle WavePhase = iota
	WaveSpawning
	WaveAwaitingClear
	WaveCompleted
)

func (p WavePhase) String() string {
	switch p {
	case WaveSpawning:
		return "spawning"
	case WaveAwaitingClear:
		return "awaiting_clear"
	case WaveCompleted:
		return "completed"
	}
	return "idle"
}

// Wave is the active wave being spawned.
type Wave struct {
	Number    int
	Enemies   []string
	BossWave  bool
	Count     int
	Spawned   int
	Interval  float64
	NextSpawn float64 // game time of the next scheduled spawn
}

// Remaining is the number of scheduled spawns not yet fired.
func (w *Wave) Remaining() int {
	return w.Count - w.Spawned
}
