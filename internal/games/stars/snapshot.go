package stars

import "math"

// Snapshot is a flat copy of a world's observable state, used to compare runs.
type Snapshot struct {
	Phase    int
	Score    int
	Lives    int
	Level    int
	Time     float64
	GameOver bool
	Won      bool

	PlayerX, PlayerY           float64
	PlayerSpeedX, PlayerSpeedY float64
	PlayerJumping              bool
	PlayerHit                  bool

	// Each star is 3 values: X, Y, Collected (0/1)
	StarData []float64

	// Each obstacle is 3 values: X, Y, SpeedX
	ObstacleData []float64

	FlashExpiresAt float64
}

// Snapshot returns the current world state as a Snapshot.
func (w *World) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:          int(w.Phase),
		Score:          w.Score,
		Lives:          w.Lives,
		Level:          w.Level,
		Time:           w.Time,
		GameOver:       w.GameOver,
		Won:            w.Won,
		PlayerX:        w.Player.X,
		PlayerY:        w.Player.Y,
		PlayerSpeedX:   w.Player.SpeedX,
		PlayerSpeedY:   w.Player.SpeedY,
		PlayerJumping:  w.Player.Jumping,
		PlayerHit:      w.Player.Color == PlayerHit,
		StarData:       make([]float64, 0, len(w.Stars)*3),
		ObstacleData:   make([]float64, 0, len(w.Obstacles)*3),
		FlashExpiresAt: w.hitFlash.ExpiresAt,
	}

	for _, s := range w.Stars {
		collected := 0.0
		if s.Collected {
			collected = 1
		}
		snap.StarData = append(snap.StarData, s.X, s.Y, collected)
	}
	for _, o := range w.Obstacles {
		snap.ObstacleData = append(snap.ObstacleData, o.X, o.Y, o.SpeedX)
	}

	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Phase)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Time)
	h = h*31 + boolBits(snap.GameOver)
	h = h*31 + boolBits(snap.Won)

	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerY)
	h = h*31 + math.Float64bits(snap.PlayerSpeedX)
	h = h*31 + math.Float64bits(snap.PlayerSpeedY)
	h = h*31 + boolBits(snap.PlayerJumping)
	h = h*31 + boolBits(snap.PlayerHit)

	for _, v := range snap.StarData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.ObstacleData {
		h = h*31 + math.Float64bits(v)
	}

	h = h*31 + math.Float64bits(snap.FlashExpiresAt)

	return h
}

func boolBits(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
