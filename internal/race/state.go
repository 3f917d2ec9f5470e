// Package race implements the driving game: world setup and the per-frame
// logic that scrolls the road, recycles obstacles, applies collision damage
// and steers the player car.
package race

// Well-known entity names.
const (
	PlayerName    = "player"
	HealthLabel   = "health_label"
	GameOverLabel = "game_over_label"
)

// GameOverFontSize is the font size of the game-over label.
const GameOverFontSize = 72

// GameState persists across frames.
type GameState struct {
	Score  uint // Obstacles dodged
	Health uint
	Lost   bool
}

// DefaultGameState returns the state a new race starts with.
func DefaultGameState() GameState {
	return GameState{Health: 5}
}
