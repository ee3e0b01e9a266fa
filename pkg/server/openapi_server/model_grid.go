// SPDX-License-Identifier: MIT

package openapi_server

type GridResponse struct {
	Rows    int     `json:"rows"`
	Cols    int     `json:"cols"`
	Blocked []Point `json:"blocked"`
}
