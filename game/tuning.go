package game

import "time"

// Tuning holds the gameplay constants. Speeds are in pixels per frame;
// the game runs a fixed step with no delta-time scaling.
type Tuning struct {
	PlayerSize   int
	PlayerSpeed  int
	BottomMargin int

	DashSpeed    int
	DashDuration time.Duration
	DashCooldown time.Duration

	FireCooldown time.Duration
	BulletWidth  int
	BulletHeight int
	BulletSpeed  int

	EnemyWidth  int
	EnemyHeight int
	EnemySpeed  int
	// SpawnInterval counts frames, not wall-clock time.
	SpawnInterval int

	StartingLives int
}

// DefaultTuning returns the stock game constants.
func DefaultTuning() Tuning {
	return Tuning{
		PlayerSize:   100,
		PlayerSpeed:  10,
		BottomMargin: 10,

		DashSpeed:    60,
		DashDuration: 150 * time.Millisecond,
		DashCooldown: 500 * time.Millisecond,

		FireCooldown: 150 * time.Millisecond,
		BulletWidth:  10,
		BulletHeight: 40,
		BulletSpeed:  50,

		EnemyWidth:    80,
		EnemyHeight:   60,
		EnemySpeed:    2,
		SpawnInterval: 60,

		StartingLives: 3,
	}
}
