// Package view holds the boundary toward rendering and camera code: which
// cells are on screen, and a follow camera over the world grid. Pixel work
// itself lives with the host renderer.
package view

import "math"

// Bounds is the half-open cell range a renderer should draw.
type Bounds struct {
	StartX, EndX int
	StartY, EndY int
}

// VisibleBounds converts a pixel-space camera window into the grid range it
// covers, clamped to the world. This is the sole coupling point to the
// renderer and defines exactly which cells get drawn.
func VisibleBounds(cameraX, cameraY, viewportWidth, viewportHeight, cellSize float64, gridSize int) Bounds {
	if cellSize <= 0 {
		return Bounds{}
	}
	b := Bounds{
		StartX: int(math.Floor(cameraX / cellSize)),
		EndX:   int(math.Ceil((cameraX + viewportWidth) / cellSize)),
		StartY: int(math.Floor(cameraY / cellSize)),
		EndY:   int(math.Ceil((cameraY + viewportHeight) / cellSize)),
	}
	if b.StartX < 0 {
		b.StartX = 0
	}
	if b.StartY < 0 {
		b.StartY = 0
	}
	if b.EndX > gridSize {
		b.EndX = gridSize
	}
	if b.EndY > gridSize {
		b.EndY = gridSize
	}
	return b
}

// Camera is a smoothed viewport over the world grid, in cell coordinates.
// X and Y are the top-left corner of the visible window.
type Camera struct {
	X, Y          int
	Width, Height int
	WorldSize     int

	// Smoothing in (0, 1] eases the camera toward its target; zero snaps.
	Smoothing float64
}

// NewCamera builds a camera with the given viewport over a square world.
func NewCamera(width, height, worldSize int) *Camera {
	return &Camera{Width: width, Height: height, WorldSize: worldSize, Smoothing: 0.2}
}

// Follow recenters the camera on a target cell, easing by the smoothing
// factor and clamping to the world bounds.
func (c *Camera) Follow(targetX, targetY int) {
	desiredX := targetX - c.Width/2
	desiredY := targetY - c.Height/2
	if c.Smoothing > 0 {
		c.X += int(float64(desiredX-c.X) * c.Smoothing)
		c.Y += int(float64(desiredY-c.Y) * c.Smoothing)
	} else {
		c.X = desiredX
		c.Y = desiredY
	}
	c.clamp()
}

// Pan moves the camera by a cell delta and clamps to the world bounds.
func (c *Camera) Pan(dx, dy int) {
	c.X += dx
	c.Y += dy
	c.clamp()
}

func (c *Camera) clamp() {
	maxX := c.WorldSize - c.Width
	maxY := c.WorldSize - c.Height
	if maxX < 0 {
		maxX = 0
	}
	if maxY < 0 {
		maxY = 0
	}
	c.X = clamp(c.X, 0, maxX)
	c.Y = clamp(c.Y, 0, maxY)
}

// WorldToScreen converts world cell coordinates to viewport coordinates.
// The second result reports whether the cell is inside the viewport.
func (c *Camera) WorldToScreen(worldX, worldY int) (int, int, bool) {
	sx := worldX - c.X
	sy := worldY - c.Y
	return sx, sy, c.IsVisible(worldX, worldY)
}

// ScreenToWorld converts viewport coordinates back to world cells.
func (c *Camera) ScreenToWorld(screenX, screenY int) (int, int) {
	return screenX + c.X, screenY + c.Y
}

// IsVisible reports whether a world cell falls inside the viewport.
func (c *Camera) IsVisible(worldX, worldY int) bool {
	return worldX >= c.X && worldX < c.X+c.Width &&
		worldY >= c.Y && worldY < c.Y+c.Height
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
