package stars

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/star-catcher/internal/config"
	"github.com/vovakirdan/star-catcher/internal/core"
)

func newTestWorld(t *testing.T) *World {
	t.Helper()
	w := NewWorld(config.DefaultStarsConfig(), rand.New(rand.NewSource(42)))
	w.Phase = core.PhaseRunning
	return w
}

// farStars returns n stars in the top-right corner, away from the test player.
func farStars(n int) []Star {
	stars := make([]Star, n)
	for i := range stars {
		stars[i] = Star{X: 700 + float64(i)*10, Y: 100, Radius: 12}
	}
	return stars
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func hasEvent(events []core.Event, kind core.EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func countEvents(events []core.Event, kind core.EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func TestNewWorld(t *testing.T) {
	w := newTestWorld(t)

	if len(w.Stars) != 5 {
		t.Errorf("stars = %d, expected 5", len(w.Stars))
	}
	if len(w.Obstacles) != 3 {
		t.Errorf("obstacles = %d, expected 3", len(w.Obstacles))
	}
	if w.Lives != 3 || w.Level != 1 || w.Score != 0 {
		t.Errorf("counters = lives %d level %d score %d, expected 3/1/0", w.Lives, w.Level, w.Score)
	}
	if w.Player.X != 385 || w.Player.Y != 540 {
		t.Errorf("player at (%f, %f), expected (385, 540)", w.Player.X, w.Player.Y)
	}

	for i, s := range w.Stars {
		if s.X < 15 || s.X >= 785 || s.Y < 50 || s.Y >= 450 {
			t.Errorf("star %d at (%f, %f) outside spawn area", i, s.X, s.Y)
		}
		if s.Collected {
			t.Errorf("star %d starts collected", i)
		}
	}
	for i, o := range w.Obstacles {
		if o.X < 30 || o.X >= 770 || o.Y < 50 || o.Y >= 450 {
			t.Errorf("obstacle %d at (%f, %f) outside spawn area", i, o.X, o.Y)
		}
		if o.SpeedX < -2 || o.SpeedX >= 2 {
			t.Errorf("obstacle %d speed %f outside [-2, 2)", i, o.SpeedX)
		}
		if o.Width != 40 || o.Height != 40 {
			t.Errorf("obstacle %d size %fx%f, expected 40x40", i, o.Width, o.Height)
		}
	}
}

func TestHorizontalMovement(t *testing.T) {
	w := newTestWorld(t)
	w.Obstacles = nil

	w.Update(input(core.ActionLeft))
	if w.Player.SpeedX != -6 {
		t.Errorf("SpeedX = %f after Left, expected -6", w.Player.SpeedX)
	}

	// Left wins when both are held
	w.Update(input(core.ActionLeft, core.ActionRight))
	if w.Player.SpeedX != -6 {
		t.Errorf("SpeedX = %f with both held, expected -6", w.Player.SpeedX)
	}

	w.Update(input(core.ActionRight))
	if w.Player.SpeedX != 6 {
		t.Errorf("SpeedX = %f after Right, expected 6", w.Player.SpeedX)
	}

	w.Update(input())
	if math.Abs(w.Player.SpeedX-5.4) > 1e-9 {
		t.Errorf("SpeedX = %f after release, expected 5.4", w.Player.SpeedX)
	}
}

func TestJump(t *testing.T) {
	tests := []struct {
		name    string
		actions []core.Action
		speedY  float64
	}{
		{"jump", []core.Action{core.ActionJump}, -11.5},
		{"super jump", []core.Action{core.ActionSuperJump}, -17.5},
		{"both held gives normal jump", []core.Action{core.ActionJump, core.ActionSuperJump}, -11.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(t)
			w.Obstacles = nil
			w.Player.Y = w.GroundY() - w.Player.Radius

			w.Update(input(tc.actions...))

			if math.Abs(w.Player.SpeedY-tc.speedY) > 1e-9 {
				t.Errorf("SpeedY = %f, expected %f", w.Player.SpeedY, tc.speedY)
			}
			if !w.Player.Jumping {
				t.Error("player should be jumping")
			}
		})
	}
}

func TestJumpIgnoredWhileAirborne(t *testing.T) {
	w := newTestWorld(t)
	w.Obstacles = nil
	w.Player.Y = w.GroundY() - w.Player.Radius

	w.Update(input(core.ActionJump))
	w.Update(input(core.ActionSuperJump))

	// Second tick only adds gravity
	if math.Abs(w.Player.SpeedY-(-11.0)) > 1e-9 {
		t.Errorf("SpeedY = %f, expected -11", w.Player.SpeedY)
	}
}

func TestPlayerLandsOnGround(t *testing.T) {
	w := newTestWorld(t)
	w.Obstacles = nil

	for range 60 {
		w.Update(input())
	}

	floor := w.GroundY() - w.Player.Radius
	if w.Player.Y != floor {
		t.Errorf("player Y = %f, expected resting at %f", w.Player.Y, floor)
	}
	if w.Player.SpeedY != 0 || w.Player.Jumping {
		t.Errorf("grounded player has SpeedY %f, Jumping %v", w.Player.SpeedY, w.Player.Jumping)
	}
}

func TestPlayerClampedToCanvas(t *testing.T) {
	w := newTestWorld(t)
	w.Obstacles = nil

	w.Player.X = 5
	w.Update(input(core.ActionLeft))
	if w.Player.X != 20 {
		t.Errorf("player X = %f, expected clamp to 20", w.Player.X)
	}

	w.Player.X = 795
	w.Update(input(core.ActionRight))
	if w.Player.X != 780 {
		t.Errorf("player X = %f, expected clamp to 780", w.Player.X)
	}

	w.Player.Y = 25
	w.Player.SpeedY = -30
	w.Update(input())
	if w.Player.Y != 20 || w.Player.SpeedY != 0 {
		t.Errorf("player Y = %f SpeedY = %f, expected clamp to 20 with SpeedY 0", w.Player.Y, w.Player.SpeedY)
	}
}

func TestInvariantsUnderRandomPlay(t *testing.T) {
	w := newTestWorld(t)
	rng := rand.New(rand.NewSource(7))
	actions := []core.Action{core.ActionLeft, core.ActionRight, core.ActionJump, core.ActionSuperJump}

	lastScore := 0
	for tick := 0; tick < 5000 && !w.Over(); tick++ {
		in := core.NewInputFrame()
		for _, a := range actions {
			if rng.Intn(3) == 0 {
				in.Set(a)
			}
		}

		collected := make([]bool, len(w.Stars))
		for i, s := range w.Stars {
			collected[i] = s.Collected
		}
		level := w.Level

		events := w.Update(in)

		p := w.Player
		if p.X < p.Radius || p.X > w.Width()-p.Radius {
			t.Fatalf("tick %d: player X %f out of bounds", tick, p.X)
		}
		if p.Y < p.Radius || p.Y > w.GroundY()-p.Radius {
			t.Fatalf("tick %d: player Y %f out of bounds", tick, p.Y)
		}
		if w.Lives < 0 || w.Lives > 3 {
			t.Fatalf("tick %d: lives %d outside [0, 3]", tick, w.Lives)
		}
		if got := w.Score - lastScore; got != 10*countEvents(events, core.EventStarCollected) {
			t.Fatalf("tick %d: score rose by %d for %d stars", tick, got, countEvents(events, core.EventStarCollected))
		}
		if w.Level == level {
			for i, s := range w.Stars {
				if collected[i] && !s.Collected {
					t.Fatalf("tick %d: star %d became uncollected", tick, i)
				}
			}
		}
		lastScore = w.Score
	}
}

func TestObstacleHit(t *testing.T) {
	w := newTestWorld(t)
	w.Stars = farStars(5)
	w.Player.X, w.Player.Y = 100, 560
	w.Obstacles = []Obstacle{{X: 90, Y: 560, Width: 40, Height: 40, SpeedX: 1}}

	events := w.Update(input())

	if w.Lives != 2 {
		t.Errorf("lives = %d, expected 2", w.Lives)
	}
	if !hasEvent(events, core.EventHit) {
		t.Error("expected a hit event")
	}
	if w.Player.SpeedY != -8 {
		t.Errorf("SpeedY = %f, expected knockback -8", w.Player.SpeedY)
	}
	if w.Player.SpeedX != 2 {
		t.Errorf("SpeedX = %f, expected 2x obstacle speed", w.Player.SpeedX)
	}
	if w.Player.Color != PlayerHit || !w.Flashing() {
		t.Error("player should be flashing after a hit")
	}
}

func TestHitEveryOverlappingTick(t *testing.T) {
	w := newTestWorld(t)
	w.Stars = farStars(5)
	w.Player.X, w.Player.Y = 100, 560
	// Tall enough that knockback never clears it
	w.Obstacles = []Obstacle{{X: 90, Y: 300, Width: 40, Height: 300, SpeedX: 0}}

	hits := 0
	for range 5 {
		hits += countEvents(w.Update(input()), core.EventHit)
	}

	if hits != 3 {
		t.Errorf("hits = %d, expected 3", hits)
	}
	if w.Lives != 0 {
		t.Errorf("lives = %d, expected 0", w.Lives)
	}
	if !w.Over() {
		t.Error("world should be over with no lives")
	}
}

func TestHitFlashExpires(t *testing.T) {
	w := newTestWorld(t)
	w.Stars = farStars(5)
	w.Player.X, w.Player.Y = 100, 560
	w.Obstacles = []Obstacle{{X: 90, Y: 560, Width: 40, Height: 40}}

	w.Update(input())
	if w.Player.Color != PlayerHit {
		t.Fatal("player should be hit")
	}
	w.Obstacles = nil

	dt := 1.0 / 60
	for range 17 {
		w.Time += dt
		w.Update(input())
	}
	if w.Player.Color != PlayerHit {
		t.Errorf("flash ended early at t=%f", w.Time)
	}

	for range 2 {
		w.Time += dt
		w.Update(input())
	}
	if w.Player.Color != PlayerNormal || w.Flashing() {
		t.Errorf("flash still active at t=%f", w.Time)
	}
}

func TestEffectExtends(t *testing.T) {
	var e Effect
	e.Start(0, 0.3)
	e.Start(0.2, 0.3)

	if e.ExpiresAt != 0.5 {
		t.Errorf("ExpiresAt = %f, expected 0.5", e.ExpiresAt)
	}
	if e.Expire(0.35) {
		t.Error("effect expired before the extended deadline")
	}
	if !e.Active() {
		t.Error("effect should still be active")
	}
	if !e.Expire(0.5) {
		t.Error("effect should expire at the deadline")
	}
	if e.Expire(0.6) {
		t.Error("an expired effect should not expire twice")
	}
}

func TestStarPickup(t *testing.T) {
	w := newTestWorld(t)
	w.Obstacles = nil
	w.Player.X, w.Player.Y = 50, 50
	w.Stars = append([]Star{{X: 55, Y: 55, Radius: 12}}, farStars(4)...)

	events := w.Update(input())

	if !w.Stars[0].Collected {
		t.Error("star should be collected")
	}
	if w.Score != 10 {
		t.Errorf("score = %d, expected 10", w.Score)
	}
	if countEvents(events, core.EventStarCollected) != 1 {
		t.Errorf("events = %v, expected one star_collected", events)
	}

	// Collected stars stay collected and are not counted again
	w.Update(input())
	if !w.Stars[0].Collected || w.Score != 10 {
		t.Errorf("after second tick: collected=%v score=%d", w.Stars[0].Collected, w.Score)
	}
}

func TestTouchingStarNotCollected(t *testing.T) {
	w := newTestWorld(t)
	w.Obstacles = nil
	w.Player.X, w.Player.Y = 100, w.GroundY()-20
	w.Stars = append([]Star{{X: 132, Y: w.GroundY() - 20, Radius: 12}}, farStars(4)...)

	w.Update(input())

	if w.Stars[0].Collected {
		t.Error("a star exactly touching the player should not be collected")
	}
}

func TestLevelUp(t *testing.T) {
	tests := []struct {
		name      string
		lives     int
		wantLives int
	}{
		{"gains a life", 2, 3},
		{"capped at max", 3, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(t)
			w.Obstacles = nil
			w.Lives = tc.lives
			w.Player.X, w.Player.Y = 400, 300
			w.Stars = make([]Star, 5)
			for i := range w.Stars {
				w.Stars[i] = Star{X: 400, Y: 300, Radius: 12}
			}

			events := w.Update(input())

			if w.Level != 2 {
				t.Errorf("level = %d, expected 2", w.Level)
			}
			if len(w.Stars) != 7 {
				t.Errorf("stars = %d, expected 7", len(w.Stars))
			}
			if len(w.Obstacles) != 5 {
				t.Errorf("obstacles = %d, expected 5", len(w.Obstacles))
			}
			if w.Lives != tc.wantLives {
				t.Errorf("lives = %d, expected %d", w.Lives, tc.wantLives)
			}
			if w.Score != 50 {
				t.Errorf("score = %d, expected 50", w.Score)
			}
			if countEvents(events, core.EventLevelUp) != 1 {
				t.Error("expected one level_up event")
			}
			for i, s := range w.Stars {
				if s.Collected {
					t.Errorf("new star %d starts collected", i)
				}
			}
			for i, o := range w.Obstacles {
				// Spread at level 2 is 3 + 0.5*2 = 4
				if o.SpeedX < -2 || o.SpeedX >= 2 {
					t.Errorf("obstacle %d speed %f outside [-2, 2)", i, o.SpeedX)
				}
			}
		})
	}
}

func TestScoreAcrossLevels(t *testing.T) {
	w := newTestWorld(t)

	// Level N holds count+N stars after a level-up, worth 10 each
	wantScores := []int{50, 120, 200}
	for i, want := range wantScores {
		w.Obstacles = nil
		w.Player.X, w.Player.Y = 400, 300
		w.Player.SpeedX, w.Player.SpeedY = 0, 0
		for j := range w.Stars {
			w.Stars[j].X, w.Stars[j].Y = 400, 300
		}

		w.Update(input())

		if w.Level != i+2 {
			t.Fatalf("level = %d after clearing level %d, expected %d", w.Level, i+1, i+2)
		}
		if w.Score != want {
			t.Errorf("score = %d after clearing level %d, expected %d", w.Score, i+1, want)
		}
		if got := len(w.Stars); got != 5+w.Level {
			t.Errorf("level %d has %d stars, expected %d", w.Level, got, 5+w.Level)
		}
	}
}

func TestMaxLevelWins(t *testing.T) {
	cfg := config.DefaultStarsConfig()
	cfg.Rules.MaxLevel = 1
	w := NewWorld(cfg, rand.New(rand.NewSource(1)))
	w.Obstacles = nil
	w.Player.X, w.Player.Y = 400, 300
	for i := range w.Stars {
		w.Stars[i].X, w.Stars[i].Y = 400, 300
	}

	events := w.Update(input())

	if !w.Won || !w.Over() {
		t.Error("clearing the last level should win")
	}
	if w.Level != 1 {
		t.Errorf("level = %d, expected 1", w.Level)
	}
	if hasEvent(events, core.EventLevelUp) {
		t.Error("winning should not level up")
	}
}

func TestObstacleBounce(t *testing.T) {
	tests := []struct {
		name      string
		x, speed  float64
		wantSpeed float64
	}{
		{"past left wall", 1, -2, 2},
		{"exactly at left wall", 2, -2, 2},
		{"past right wall", 759, 2, -2},
		{"exactly at right wall", 758, 2, -2},
		{"mid canvas", 400, 2, 2},
		{"near left moving away", 1, 2, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(t)
			w.Obstacles = []Obstacle{{X: tc.x, Y: 100, Width: 40, Height: 40, SpeedX: tc.speed}}

			w.Update(input())

			o := w.Obstacles[0]
			if o.X != tc.x+tc.speed {
				t.Errorf("X = %f, expected %f", o.X, tc.x+tc.speed)
			}
			if o.SpeedX != tc.wantSpeed {
				t.Errorf("SpeedX = %f, expected %f", o.SpeedX, tc.wantSpeed)
			}
		})
	}
}
