package defs

// DefaultLibrary returns the built-in game data used when no data
// directory is configured. The returned value is freshly allocated and
// already normalized.
func DefaultLibrary() *Library {
	lib := &Library{
		Towers: map[string]TowerDefinition{
			"BASIC": {
				Name: "Basic Tower", Kind: TowerBasic,
				Cost: 100, Damage: 20, Range: 150, FireRate: 1000, ProjectileSpeed: 300,
			},
			"AOE": {
				Name: "Area Effect Tower", Kind: TowerAoE,
				Cost: 200, Damage: 15, Range: 120, FireRate: 1500, ProjectileSpeed: 250,
				AoeRadius: 50,
			},
			"SLOW": {
				Name: "Slowing Tower", Kind: TowerSlow,
				Cost: 150, Damage: 10, Range: 180, FireRate: 1200, ProjectileSpeed: 350,
				SlowFactor: 0.5, SlowDuration: 2000,
			},
			"MULTISHOT": {
				Name: "Multi-Shot Tower", Kind: TowerMultiShot,
				Cost: 250, Damage: 12, Range: 160, FireRate: 1200, ProjectileSpeed: 320,
				TargetCount: 3,
			},
			"SUPPORT": {
				Name: "Support Tower", Kind: TowerSupport,
				Cost: 175, Range: 120,
				BuffAmount: 0.2, BuffRadius: 120, BuffInterval: 1200,
			},
		},
		TowerOrder: []string{"BASIC", "AOE", "SLOW", "MULTISHOT", "SUPPORT"},
		Enemies: map[string]EnemyDefinition{
			"BASIC":   {Name: "Basic Enemy", Health: 100, Speed: 100, Reward: 20, Damage: 1},
			"FAST":    {Name: "Fast Enemy", Health: 60, Speed: 180, Reward: 15, Damage: 1},
			"ARMORED": {Name: "Armored Enemy", Health: 250, Speed: 70, Reward: 30, Damage: 1, Armor: 0.3},
			"FLYING":  {Name: "Flying Enemy", Health: 80, Speed: 120, Reward: 25, Damage: 1, Flying: true},
			"BOSS":    {Name: "Boss Enemy", Health: 1000, Speed: 50, Reward: 100, Damage: 5, Armor: 0.5},
			"HEALER": {
				Name: "Healer Enemy", Kind: EnemyHealer,
				Health: 120, Speed: 80, Reward: 35, Damage: 1,
				HealRadius: 100, HealAmount: 5, HealInterval: 2000,
			},
			"SHIELD": {
				Name: "Shield Enemy", Kind: EnemyShield,
				Health: 150, Speed: 90, Reward: 40, Damage: 1,
				ShieldDuration: 1500, ShieldCooldown: 3500,
			},
			"SPLIT": {
				Name: "Split Enemy", Kind: EnemySplit,
				Health: 160, Speed: 85, Reward: 35, Damage: 2,
				SplitCount: 2, SplitType: "BASIC",
			},
			"TELEPORT": {
				Name: "Teleport Enemy", Kind: EnemyTeleport,
				Health: 90, Speed: 100, Reward: 40, Damage: 1,
				TeleportInterval: 2500, TeleportDistance: 2,
			},
		},
		Waves: []WaveDefinition{
			{Enemies: []string{"BASIC"}, Count: 10, Interval: 1500},
			{Enemies: []string{"BASIC", "FAST"}, Count: 15, Interval: 1200},
			{Enemies: []string{"BASIC", "FAST", "ARMORED"}, Count: 20, Interval: 1000},
			{Enemies: []string{"FAST", "ARMORED"}, Count: 15, Interval: 900},
			{Enemies: []string{"ARMORED", "FLYING"}, Count: 15, Interval: 1000},
			{Enemies: []string{"FAST", "FLYING"}, Count: 20, Interval: 800},
			{Enemies: []string{"BASIC", "FAST", "ARMORED", "FLYING"}, Count: 25, Interval: 700},
			{Enemies: []string{"ARMORED", "FLYING"}, Count: 20, Interval: 600},
			{Enemies: []string{"FAST", "ARMORED", "FLYING"}, Count: 30, Interval: 500},
			{Enemies: []string{"BOSS"}, Count: 1, Interval: 0, BossWave: true},
		},
		ExtraWaves: []WaveDefinition{
			{Enemies: []string{"HEALER", "ARMORED", "FAST"}, Count: 25, Interval: 600},
			{Enemies: []string{"SHIELD", "FLYING", "BASIC"}, Count: 25, Interval: 550},
			{Enemies: []string{"SPLIT", "TELEPORT", "ARMORED"}, Count: 30, Interval: 500},
			{Enemies: []string{"HEALER", "SHIELD", "SPLIT", "TELEPORT"}, Count: 30, Interval: 450},
			{Enemies: []string{"BOSS", "HEALER"}, Count: 4, Interval: 3000},
		},
		Difficulties: map[string]DifficultyProfile{
			"EASY": {
				Name: "Easy", Tier: 0,
				EnemyHealthMultiplier: 1, EnemySpeedMultiplier: 1,
				EnemyRewardMultiplier: 1, EnemyCountMultiplier: 1,
			},
			"NORMAL": {
				Name: "Normal", Tier: 1,
				EnemyHealthMultiplier: 1.25, EnemySpeedMultiplier: 1.1,
				EnemyRewardMultiplier: 0.9, EnemyCountMultiplier: 1.2,
				WaveCountAdjustment: 2,
				EarlyWaves: map[int][]string{
					1: {"BASIC", "FAST"},
					2: {"BASIC", "FAST", "ARMORED"},
				},
			},
			"HARD": {
				Name: "Hard", Tier: 2,
				EnemyHealthMultiplier: 1.6, EnemySpeedMultiplier: 1.2,
				EnemyRewardMultiplier: 0.8, EnemyCountMultiplier: 1.5,
				WaveCountAdjustment: 5,
				EarlyWaves: map[int][]string{
					1: {"BASIC", "FAST"},
					2: {"BASIC", "FAST", "ARMORED"},
				},
			},
		},
		Maps: map[string]MapDefinition{
			"forest": {
				Name: "Forest Path", Theme: "forest",
				Width: 20, Height: 11, TileSize: 64,
				Paths: [][]Tile{{
					{0, 2}, {5, 2}, {5, 8}, {11, 8}, {11, 3}, {16, 3}, {16, 6}, {19, 6},
				}},
				PlacementRestrictions: []Area{{X: 8, Y: 0, Width: 2, Height: 2}},
			},
			"desert": {
				Name: "Desert Canyon", Theme: "desert",
				Width: 20, Height: 11, TileSize: 64,
				Paths: [][]Tile{{
					{0, 5}, {3, 5}, {3, 1}, {9, 1}, {9, 9}, {14, 9}, {14, 4}, {19, 4},
				}},
				PlacementRestrictions: []Area{{X: 16, Y: 8, Width: 3, Height: 2}},
			},
			"mountain": {
				Name: "Mountain Pass", Theme: "mountain",
				Width: 20, Height: 11, TileSize: 64,
				Paths: [][]Tile{{
					{0, 9}, {4, 9}, {4, 5}, {2, 5}, {2, 1}, {10, 1}, {10, 6}, {15, 6}, {15, 2}, {19, 2},
				}},
				PlacementRestrictions: []Area{
					{X: 6, Y: 3, Width: 2, Height: 2},
					{X: 12, Y: 8, Width: 3, Height: 2},
				},
			},
		},
	}
	lib.normalize()
	return lib
}
