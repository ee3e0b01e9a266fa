package pbf

import (
	"errors"
	"fmt"
	"math"

	"github.com/natevvv/grid-path-search/pkg/grid"
	"github.com/paulmach/orb"
)

var ErrNoObstacles = errors.New("no obstacles to rasterize")

// Bounds returns the bounding box of all obstacles.
func Bounds(obstacles []Obstacle) (orb.Bound, error) {
	if len(obstacles) == 0 {
		return orb.Bound{}, ErrNoObstacles
	}
	bound := obstacles[0].Line.Bound()
	for _, obstacle := range obstacles[1:] {
		bound = bound.Union(obstacle.Line.Bound())
	}
	return bound, nil
}

// raster maps coordinates inside a bound to cells. North is row 0, west is column 0.
type raster struct {
	bound      orb.Bound
	rows, cols int
}

func (r raster) cell(p orb.Point) (int, int) {
	height, width := r.extent()
	row := scale(r.bound.Top()-p.Lat(), height, r.rows)
	col := scale(p.Lon()-r.bound.Left(), width, r.cols)
	return row, col
}

func scale(offset, extent float64, cells int) int {
	if extent <= 0 {
		return 0
	}
	i := int(math.Floor(offset / extent * float64(cells)))
	return min(max(i, 0), cells-1)
}

func (r raster) extent() (float64, float64) {
	return r.bound.Top() - r.bound.Bottom(), r.bound.Right() - r.bound.Left()
}

// Rasterize creates a rows x cols grid covering bound in which every cell touched by an
// obstacle is blocked.
func Rasterize(obstacles []Obstacle, bound orb.Bound, rows, cols int) (*grid.Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("invalid raster size %dx%d", rows, cols)
	}
	r := raster{bound: bound, rows: rows, cols: cols}

	cells := make([][]grid.Cell, rows)
	for row := range cells {
		cells[row] = make([]grid.Cell, cols)
	}
	block := func(p orb.Point) {
		if !bound.Contains(p) {
			return
		}
		row, col := r.cell(p)
		cells[row][col] = grid.Blocked
	}

	height, width := r.extent()
	step := math.Inf(1)
	if height > 0 {
		step = math.Min(step, height/float64(rows)/2)
	}
	if width > 0 {
		step = math.Min(step, width/float64(cols)/2)
	}

	for _, obstacle := range obstacles {
		line := obstacle.Line
		if len(line) == 0 {
			continue
		}
		block(line[0])
		for i := 1; i < len(line); i++ {
			from, to := line[i-1], line[i]
			length := math.Hypot(to.Lon()-from.Lon(), to.Lat()-from.Lat())
			samples := 1
			if !math.IsInf(step, 1) {
				samples = int(math.Ceil(length/step)) + 1
			}
			for s := 1; s <= samples; s++ {
				t := float64(s) / float64(samples)
				block(orb.Point{from.Lon() + t*(to.Lon()-from.Lon()), from.Lat() + t*(to.Lat()-from.Lat())})
			}
		}
	}
	return grid.NewGrid(cells)
}
