// SPDX-License-Identifier: MIT

package openapi_server

type RouteRequest struct {
	Origin      *Point `json:"origin"`
	Destination *Point `json:"destination"`
	// BFS, DFS, A* or ALL. The navigator of the service is used if empty.
	Mode string `json:"mode,omitempty"`
}

// AssertRouteRequestRequired checks if the required fields are not zero-ed
func AssertRouteRequestRequired(obj RouteRequest) error {
	elements := map[string]interface{}{
		"origin":      obj.Origin,
		"destination": obj.Destination,
	}
	for name, el := range elements {
		if isZero := IsZeroValue(el); isZero {
			return &RequiredError{Field: name}
		}
	}
	return nil
}
