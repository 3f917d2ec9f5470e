package engine

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Kind tags what role a sprite plays. It is set when the sprite is created,
// so frame logic dispatches on it instead of matching name prefixes.
type Kind int

const (
	KindScenery Kind = iota // Decoration, never touched by logic
	KindPlayer
	KindRoadline
	KindObstacle
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindScenery:
		return "scenery"
	case KindPlayer:
		return "player"
	case KindRoadline:
		return "roadline"
	case KindObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// Sprite is a named drawable with a 2D transform.
// Translation is in world units with the origin at the window centre and y up.
// Rotation is in radians, counter-clockwise.
type Sprite struct {
	Name        string
	Kind        Kind
	Preset      SpritePreset
	Translation cp.Vector
	Rotation    float64
	Scale       float64
	Layer       float64
	Collision   bool
}

// Size returns the sprite's unrotated size in world units.
func (s *Sprite) Size() cp.Vector {
	return s.Preset.Info().Size.Mult(s.Scale)
}

// Bounds returns the axis-aligned box enclosing the rotated sprite.
func (s *Sprite) Bounds() cp.BB {
	size := s.Size()
	hw, hh := size.X/2, size.Y/2
	sin, cos := math.Abs(math.Sin(s.Rotation)), math.Abs(math.Cos(s.Rotation))
	return cp.NewBBForExtents(s.Translation, hw*cos+hh*sin, hw*sin+hh*cos)
}

// DefaultFontSize is the font size of a freshly added text.
const DefaultFontSize = 30.0

// Text is a named label drawn on top of the sprites.
type Text struct {
	Name        string
	Value       string
	FontSize    float64
	Translation cp.Vector
	Layer       float64
}
