package core

// The simulation runs in physics coordinates (Y up, origin at the bottom
// left); terminals draw in presentation coordinates (Y down, origin at the
// top left). FlipY is the only bridge between the two frames and is applied
// exclusively at the render boundary; all game-state math stays unflipped.

// FlipY converts a position between physics and presentation frames for a
// canvas of the given height. It is its own inverse:
// FlipY(FlipY(p, h), h) == p.
func FlipY(p Vec2, canvasHeight float64) Vec2 {
	return Vec2{X: p.X, Y: canvasHeight - p.Y}
}
