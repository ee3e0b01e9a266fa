// SPDX-License-Identifier: MIT

package openapi_server

type Path struct {
	Length    int     `json:"length"`
	Waypoints []Point `json:"waypoints"`
}

type RouteResult struct {
	Algorithm   string `json:"algorithm"`
	Origin      Point  `json:"origin"`
	Destination Point  `json:"destination"`
	Reachable   bool   `json:"reachable"`
	Path        *Path  `json:"path,omitempty"`
	Expansions  int    `json:"expansions"`
}

type RoutesResponse struct {
	Routes []RouteResult `json:"routes"`
}
