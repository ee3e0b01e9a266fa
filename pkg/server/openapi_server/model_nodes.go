// SPDX-License-Identifier: MIT

package openapi_server

type Nodes struct {
	Waypoints []Point `json:"waypoints"`
}
