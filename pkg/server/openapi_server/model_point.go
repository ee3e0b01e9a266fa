// SPDX-License-Identifier: MIT

package openapi_server

import "github.com/natevvv/grid-path-search/pkg/grid"

// Point is a cell of the grid.
type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func NewPoint(p grid.Position) Point {
	return Point{Row: p.Row, Col: p.Col}
}

func (p Point) Position() grid.Position {
	return grid.MakePosition(p.Row, p.Col)
}

func NewPoints(positions []grid.Position) []Point {
	points := make([]Point, 0, len(positions))
	for _, p := range positions {
		points = append(points, NewPoint(p))
	}
	return points
}
