package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/natevvv/grid-path-search/pkg/grid"
	"github.com/natevvv/grid-path-search/pkg/routing"
)

const NotFound = "Could not find a path."

// FormatPath renders positions as [(r, c), (r, c)].
func FormatPath(positions []grid.Position) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, p := range positions {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// WriteRoute prints the path and the expansion count of a found route to out,
// or the not found message to errOut.
func WriteRoute(out, errOut io.Writer, route routing.Route) {
	if !route.Exists {
		fmt.Fprintln(errOut, NotFound)
		return
	}
	fmt.Fprintf(out, "Path: %s\n", FormatPath(route.Waypoints))
	fmt.Fprintf(out, "Traversed: %d\n", route.Expansions)
}

// WriteRoutes prints all routes in order, each preceded by a header line naming its
// algorithm if headers is set. Returns whether every route exists.
func WriteRoutes(out, errOut io.Writer, routes []routing.Route, headers bool) bool {
	allFound := true
	for _, route := range routes {
		if headers {
			fmt.Fprintf(out, "== %v ==\n", route.Algorithm)
		}
		WriteRoute(out, errOut, route)
		allFound = allFound && route.Exists
	}
	return allFound
}
