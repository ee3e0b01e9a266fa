package routing

import (
	"fmt"
	"strings"

	"github.com/natevvv/grid-path-search/pkg/grid/path"
)

// Mode selects which strategies a Router runs.
type Mode string

const (
	ModeBFS   Mode = "BFS"
	ModeDFS   Mode = "DFS"
	ModeAStar Mode = "A*"
	ModeAll   Mode = "ALL"
)

// Modes lists all accepted modes in their canonical spelling.
var Modes = []Mode{ModeBFS, ModeDFS, ModeAStar, ModeAll}

// ParseMode accepts the canonical names case insensitively, and "astar" for A*.
func ParseMode(name string) (Mode, error) {
	if strings.EqualFold(strings.TrimSpace(name), string(ModeAll)) {
		return ModeAll, nil
	}
	if algorithm, ok := path.ParseAlgorithm(name); ok {
		return Mode(algorithm.String()), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// Algorithms returns the strategies of the mode in the order they are run.
func (m Mode) Algorithms() []path.Algorithm {
	if m == ModeAll {
		return path.Algorithms
	}
	algorithm, ok := path.ParseAlgorithm(string(m))
	if !ok {
		return nil
	}
	return []path.Algorithm{algorithm}
}

func (m Mode) String() string { return string(m) }
