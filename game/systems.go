package game

import (
	"math/rand/v2"

	"github.com/plus3/dashshot/ecs"
	"github.com/plus3/dashshot/geom"
)

// RestartSystem handles the restart key and decides whether the rest of
// the frame's gameplay runs. It runs first, including during game over.
type RestartSystem struct {
	State  ecs.Singleton[State]
	Input  ecs.Singleton[Input]
	Screen ecs.Singleton[Screen]
	Tuning ecs.Singleton[Tuning]
	Tally  ecs.Singleton[Tally]
}

func (s *RestartSystem) Execute(frame *ecs.UpdateFrame) {
	st := s.State.Get()
	tally := s.Tally.Get()

	if st.GameOver && s.Input.Get().Restart {
		restart(st, *s.Screen.Get(), *s.Tuning.Get())
		ecs.Clear[Bullet](frame.Storage)
		ecs.Clear[Enemy](frame.Storage)
		tally.Games++
	}

	st.Frozen = st.GameOver
	if !st.Frozen {
		tally.Frames++
	}
}

// DashSystem starts a dash when the dash button is held and the cooldown
// since the previous dash start has passed.
type DashSystem struct {
	State  ecs.Singleton[State]
	Input  ecs.Singleton[Input]
	Tuning ecs.Singleton[Tuning]
	Tally  ecs.Singleton[Tally]
}

func (s *DashSystem) Execute(frame *ecs.UpdateFrame) {
	st := s.State.Get()
	if st.Frozen {
		return
	}

	in := s.Input.Get()
	if st.Dashing || !in.Dash || in.Now-st.LastDash < s.Tuning.Get().DashCooldown {
		return
	}

	st.Dashing = true
	st.DashStart = in.Now
	st.LastDash = in.Now
	s.Tally.Get().Dashes++
}

// MovementSystem moves the player per held direction, ends an expired
// dash and keeps the player inside the screen. Axes are applied
// independently, so diagonals are faster than straight moves.
type MovementSystem struct {
	State  ecs.Singleton[State]
	Input  ecs.Singleton[Input]
	Screen ecs.Singleton[Screen]
	Tuning ecs.Singleton[Tuning]
}

func (s *MovementSystem) Execute(frame *ecs.UpdateFrame) {
	st := s.State.Get()
	if st.Frozen {
		return
	}

	in := s.Input.Get()
	t := s.Tuning.Get()

	speed := t.PlayerSpeed
	if st.Dashing {
		speed = t.DashSpeed
	}

	var dx, dy int
	if in.Left {
		dx -= speed
	}
	if in.Right {
		dx += speed
	}
	if in.Up {
		dy -= speed
	}
	if in.Down {
		dy += speed
	}
	st.Player = st.Player.Translate(dx, dy)

	if st.Dashing && in.Now-st.DashStart >= t.DashDuration {
		st.Dashing = false
	}

	screen := s.Screen.Get()
	st.Player.X = geom.Clamp(st.Player.X, 0, screen.Width-t.PlayerSize)
	st.Player.Y = geom.Clamp(st.Player.Y, 0, screen.Height-t.PlayerSize)
}

// FireSystem spawns a bullet at the player's top edge, centered
// horizontally, at most once per fire cooldown. The bullet goes straight
// into its pool so the rest of the frame moves and collides it.
type FireSystem struct {
	State  ecs.Singleton[State]
	Input  ecs.Singleton[Input]
	Tuning ecs.Singleton[Tuning]
	Tally  ecs.Singleton[Tally]
}

func (s *FireSystem) Execute(frame *ecs.UpdateFrame) {
	st := s.State.Get()
	if st.Frozen {
		return
	}

	in := s.Input.Get()
	t := s.Tuning.Get()
	if !in.Fire || in.Now-st.LastShot < t.FireCooldown {
		return
	}

	ecs.PoolOf[Bullet](frame.Storage).Spawn(Bullet{Body{
		Rect: geom.Rect{
			X: st.Player.X + t.PlayerSize/2 - t.BulletWidth/2,
			Y: st.Player.Y,
			W: t.BulletWidth,
			H: t.BulletHeight,
		},
		Active: true,
	}})
	st.LastShot = in.Now
	s.Tally.Get().ShotsFired++
}

// EnemySpawnSystem drops a new enemy from the top edge every
// SpawnInterval+1 frames at a random column. Like bullets, the enemy
// joins the frame it spawns in.
type EnemySpawnSystem struct {
	State  ecs.Singleton[State]
	Screen ecs.Singleton[Screen]
	Tuning ecs.Singleton[Tuning]
	Tally  ecs.Singleton[Tally]

	// Rand picks spawn columns and must be set; NewWorld seeds it.
	Rand *rand.Rand
}

func (s *EnemySpawnSystem) Execute(frame *ecs.UpdateFrame) {
	st := s.State.Get()
	if st.Frozen {
		return
	}

	t := s.Tuning.Get()
	st.SpawnCounter++
	if st.SpawnCounter <= t.SpawnInterval {
		return
	}

	x := 0
	if span := s.Screen.Get().Width - t.EnemyWidth; span > 0 {
		x = s.Rand.IntN(span)
	}

	ecs.PoolOf[Enemy](frame.Storage).Spawn(Enemy{Body{
		Rect:   geom.Rect{X: x, Y: 0, W: t.EnemyWidth, H: t.EnemyHeight},
		Active: true,
	}})
	st.SpawnCounter = 0
	s.Tally.Get().EnemiesSpawned++
}

// BulletSystem moves bullets up and retires them once fully off screen.
type BulletSystem struct {
	State   ecs.Singleton[State]
	Tuning  ecs.Singleton[Tuning]
	Bullets ecs.Query[Bullet]
}

func (s *BulletSystem) Execute(frame *ecs.UpdateFrame) {
	if s.State.Get().Frozen {
		return
	}

	speed := s.Tuning.Get().BulletSpeed
	for _, bullet := range s.Bullets.Iter() {
		if !bullet.Active {
			continue
		}
		bullet.Rect = bullet.Rect.Translate(0, -speed)
		if bullet.Rect.Bottom() < 0 {
			bullet.Active = false
		}
	}
}

// EnemySystem moves enemies down. An enemy leaving through the bottom
// edge costs a life; running out of lives ends the game.
type EnemySystem struct {
	State   ecs.Singleton[State]
	Screen  ecs.Singleton[Screen]
	Tuning  ecs.Singleton[Tuning]
	Tally   ecs.Singleton[Tally]
	Enemies ecs.Query[Enemy]
}

func (s *EnemySystem) Execute(frame *ecs.UpdateFrame) {
	st := s.State.Get()
	if st.Frozen {
		return
	}

	speed := s.Tuning.Get().EnemySpeed
	height := s.Screen.Get().Height
	for _, enemy := range s.Enemies.Iter() {
		if !enemy.Active {
			continue
		}
		enemy.Rect = enemy.Rect.Translate(0, speed)
		if enemy.Rect.Y > height {
			enemy.Active = false
			st.Lives--
			s.Tally.Get().EnemiesEscaped++
			if st.Lives <= 0 {
				st.GameOver = true
			}
		}
	}
}

// CollisionSystem tests every active bullet against every active enemy
// and deactivates both on contact. A bullet keeps sweeping the remaining
// enemies after its first hit, so one shot can clear overlapping enemies.
type CollisionSystem struct {
	State   ecs.Singleton[State]
	Tally   ecs.Singleton[Tally]
	Bullets ecs.Query[Bullet]
	Enemies ecs.Query[Enemy]
}

func (s *CollisionSystem) Execute(frame *ecs.UpdateFrame) {
	if s.State.Get().Frozen {
		return
	}

	tally := s.Tally.Get()
	for _, bullet := range s.Bullets.Iter() {
		if !bullet.Active {
			continue
		}
		for _, enemy := range s.Enemies.Iter() {
			if !enemy.Active {
				continue
			}
			if geom.Intersects(bullet.Rect, enemy.Rect) {
				bullet.Active = false
				enemy.Active = false
				tally.EnemiesDestroyed++
			}
		}
	}
}

// SweepSystem queues removal of every inactive entity.
type SweepSystem struct {
	Bullets ecs.Query[Bullet]
	Enemies ecs.Query[Enemy]
}

func (s *SweepSystem) Execute(frame *ecs.UpdateFrame) {
	for id, bullet := range s.Bullets.Iter() {
		if !bullet.Active {
			frame.Commands.Delete(id)
		}
	}
	for id, enemy := range s.Enemies.Iter() {
		if !enemy.Active {
			frame.Commands.Delete(id)
		}
	}
}
