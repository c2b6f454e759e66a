// Package pitch provides the static spatial value grid used to price ball
// progression.
//
// The grid is Karun Singh's 12x8 expected-threat surface laid out in
// provider coordinates: 12 columns along the pitch length (x 0-120), 8 rows
// across its width (y 0-80). Values increase monotonically toward the
// attacking goal.
package pitch

import "github.com/coachos/pitchpilot/internal/domain/event"

// Pitch dimensions and the goal-center coordinate in provider units.
const (
	Length = 120.0
	Width  = 80.0

	GoalCenterX = 120.0
	GoalCenterY = 40.0
)

const (
	gridCols = 12
	gridRows = 8
	cellSize = 10.0
)

// threatGrid[col][row]; values preserved exactly from the published surface.
var threatGrid = [gridCols][gridRows]float64{
	{0.006, 0.007, 0.008, 0.009, 0.011, 0.012, 0.013, 0.014},
	{0.007, 0.008, 0.009, 0.010, 0.012, 0.014, 0.015, 0.016},
	{0.008, 0.009, 0.011, 0.013, 0.015, 0.018, 0.021, 0.024},
	{0.009, 0.010, 0.012, 0.014, 0.018, 0.022, 0.024, 0.028},
	{0.010, 0.011, 0.014, 0.017, 0.023, 0.029, 0.035, 0.039},
	{0.011, 0.013, 0.016, 0.021, 0.031, 0.040, 0.046, 0.057},
	{0.012, 0.014, 0.017, 0.024, 0.036, 0.048, 0.061, 0.076},
	{0.013, 0.015, 0.019, 0.026, 0.039, 0.052, 0.073, 0.098},
	{0.014, 0.016, 0.021, 0.028, 0.044, 0.060, 0.086, 0.124},
	{0.014, 0.017, 0.024, 0.032, 0.052, 0.075, 0.108, 0.169},
	{0.015, 0.019, 0.027, 0.037, 0.062, 0.092, 0.146, 0.245},
	{0.015, 0.021, 0.030, 0.045, 0.068, 0.110, 0.170, 0.283},
}

// Cell maps a continuous pitch coordinate to its grid cell. Coordinates on
// the far edges (x=120, y=80) clamp to the last cell.
func Cell(x, y float64) (col, row int) {
	col = int(x / cellSize)
	if col > gridCols-1 {
		col = gridCols - 1
	}
	if col < 0 {
		col = 0
	}
	row = int(y / cellSize)
	if row > gridRows-1 {
		row = gridRows - 1
	}
	if row < 0 {
		row = 0
	}
	return col, row
}

// CellValue returns the threat value at the discretized coordinate.
func CellValue(x, y float64) float64 {
	col, row := Cell(x, y)
	return threatGrid[col][row]
}

// Delta returns the threat gained by moving the ball from start to end,
// or 0 when either endpoint is missing.
func Delta(start, end *event.Location) float64 {
	if start == nil || end == nil {
		return 0.0
	}
	return CellValue(end.X, end.Y) - CellValue(start.X, start.Y)
}
