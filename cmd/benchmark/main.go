package main

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"runtime/pprof"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/natevvv/grid-path-search/pkg/grid"
	"github.com/natevvv/grid-path-search/pkg/grid/path"
	"github.com/spf13/cobra"
)

// target: origin row, origin col, destination row, destination col, reference length (-1 if unreachable)
type target [5]int

func (t target) origin() grid.Position      { return grid.MakePosition(t[0], t[1]) }
func (t target) destination() grid.Position { return grid.MakePosition(t[2], t[3]) }
func (t target) length() int                { return t[4] }

type benchmarkOptions struct {
	input         string
	targetFile    string
	random        bool
	amountTargets int
	seed          int64
	store         bool
	algorithm     string
	cpuProfile    string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &benchmarkOptions{}
	cmd := &cobra.Command{
		Use:   "benchmark --input FILE [--random -n N | --targets FILE] --search BFS|DFS|A*",
		Short: "Compare a search strategy against breadth first search",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBenchmark(cmd.OutOrStdout(), opts)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&opts.input, "input", "i", "", "grid file")
	flags.StringVar(&opts.targetFile, "targets", "", "targets file (default: <input>.targets)")
	flags.BoolVar(&opts.random, "random", false, "Create (new) random targets")
	flags.IntVarP(&opts.amountTargets, "n", "n", 100, "How many new targets should get created")
	flags.Int64Var(&opts.seed, "seed", 0, "seed of the random targets (default: current time)")
	flags.BoolVar(&opts.store, "store", false, "Store targets (when newly generated)")
	flags.StringVar(&opts.algorithm, "search", "A*", "Select the search algorithm")
	flags.StringVar(&opts.cpuProfile, "cpu", "", "write cpu profile to file")
	return cmd
}

func runBenchmark(out io.Writer, opts *benchmarkOptions) error {
	if opts.input == "" {
		return fmt.Errorf("no grid file given (--input)")
	}
	algorithm, ok := path.ParseAlgorithm(opts.algorithm)
	if !ok {
		return fmt.Errorf("search algorithm %q not supported", opts.algorithm)
	}
	if opts.amountTargets < 0 {
		return fmt.Errorf("invalid number of targets %d", opts.amountTargets)
	}
	if opts.targetFile == "" {
		opts.targetFile = opts.input + ".targets"
	}

	start := time.Now()
	g, err := grid.NewGridFromFile(opts.input)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "[TIME-Import] = %s\n", time.Since(start))

	var targets []target
	if opts.random {
		seed := opts.seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		targets = createTargets(g, opts.amountTargets, rand.New(rand.NewSource(seed)))
		if opts.store {
			if err := writeTargets(targets, opts.targetFile); err != nil {
				return err
			}
		}
	} else {
		file, err := os.Open(opts.targetFile)
		if err != nil {
			return err
		}
		targets, err = readTargets(file, g)
		file.Close()
		if err != nil {
			return err
		}
		if opts.amountTargets < len(targets) {
			targets = targets[0:opts.amountTargets]
		}
	}
	if len(targets) == 0 {
		return fmt.Errorf("no targets")
	}

	if opts.cpuProfile != "" {
		f, err := os.Create(opts.cpuProfile)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}

	b := newBenchmark(path.NewNavigator(algorithm, g), targets)

	// catch interrupt to still show already calculated results
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(c)
	go func() {
		if _, ok := <-c; ok {
			b.showResults(out)
			os.Exit(0)
		}
	}()

	b.run(out)
	// normal termination, show results
	b.showResults(out)
	return nil
}

// readTargets parses one target per line and rejects targets which are no query on g.
func readTargets(r io.Reader, g *grid.Grid) ([]target, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanLines)

	targets := make([]target, 0)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if len(line) < 1 {
			// skip empty lines
			continue
		} else if line[0] == '#' {
			// skip comments
			continue
		}
		var t target
		if _, err := fmt.Sscanf(line, "%d %d %d %d %d", &t[0], &t[1], &t[2], &t[3], &t[4]); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNumber, err)
		}
		if err := checkTarget(g, t); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNumber, err)
		}
		targets = append(targets, t)
	}
	return targets, scanner.Err()
}

func checkTarget(g *grid.Grid, t target) error {
	if err := g.CheckPosition(t.origin()); err != nil {
		return fmt.Errorf("origin: %w", err)
	}
	if err := g.CheckPosition(t.destination()); err != nil {
		return fmt.Errorf("destination: %w", err)
	}
	if t.origin() == t.destination() {
		return fmt.Errorf("origin and destination are both %v", t.origin())
	}
	return nil
}

// createTargets draws n pairs of distinct free cells and computes their reference length
// with breadth first search.
func createTargets(g *grid.Grid, n int, rng *rand.Rand) []target {
	free := make([]grid.Position, 0)
	for i := 0; i < g.CellCount(); i++ {
		if p := g.PositionAt(i); g.IsFree(p) {
			free = append(free, p)
		}
	}
	if len(free) < 2 {
		return nil
	}

	reference := path.NewBreadthFirstSearch(g)
	targets := make([]target, n)
	for i := 0; i < n; i++ {
		origin := free[rng.Intn(len(free))]
		destination := free[rng.Intn(len(free))]
		for destination == origin {
			destination = free[rng.Intn(len(free))]
		}
		length := reference.ComputeShortestPath(origin, destination)
		targets[i] = target{origin.Row, origin.Col, destination.Row, destination.Col, length}
	}
	return targets
}

func writeTargets(targets []target, targetFile string) error {
	var sb strings.Builder
	for _, t := range targets {
		sb.WriteString(fmt.Sprintf("%v %v %v %v %v\n", t[0], t[1], t[2], t[3], t[4]))
	}
	return os.WriteFile(targetFile, []byte(sb.String()), 0644)
}

type benchmark struct {
	navigator path.Navigator
	targets   []target

	mu             sync.Mutex
	runtime        time.Duration
	expansions     int
	completed      int
	invalidResults []int    // wrong reachability or malformed path
	invalidLengths [][3]int // case, length, reference length
}

func newBenchmark(navigator path.Navigator, targets []target) *benchmark {
	return &benchmark{
		navigator:      navigator,
		targets:        targets,
		invalidResults: make([]int, 0),
		invalidLengths: make([][3]int, 0),
	}
}

// Run benchmarks on the provided grid and targets
func (b *benchmark) run(out io.Writer) {
	for i, t := range b.targets {
		origin, destination := t.origin(), t.destination()

		start := time.Now()
		length := b.navigator.ComputeShortestPath(origin, destination)
		elapsed := time.Since(start)
		expansions := b.navigator.GetExpansions()
		p := b.navigator.GetPath()

		fmt.Fprintf(out, "[%3v TIME-Navigate, Expansions, Length] = %12s, %7d, %5d\n", i, elapsed, expansions, length)

		b.mu.Lock()
		if (length < 0) != (t.length() < 0) || (length >= 0 && (p[0] != origin || p[len(p)-1] != destination)) {
			b.invalidResults = append(b.invalidResults, i)
		} else if length != t.length() {
			b.invalidLengths = append(b.invalidLengths, [3]int{i, length, t.length()})
		}
		b.runtime += elapsed
		b.expansions += expansions
		b.completed++
		b.mu.Unlock()
	}
}

func (b *benchmark) showResults(out io.Writer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.completed == 0 {
		fmt.Fprintln(out, "No target completed.")
		return
	}

	fmt.Fprintf(out, "Algorithm: %v\n", b.navigator.Algorithm())
	fmt.Fprintf(out, "Average runtime: %.3fms\n", float64(b.runtime.Nanoseconds())/float64(b.completed)/1000000)
	fmt.Fprintf(out, "Average expansions: %d\n", b.expansions/b.completed)

	fmt.Fprintf(out, "%v/%v invalid Result (source/target).\n", len(b.invalidResults), b.completed)
	for i, result := range b.invalidResults {
		t := b.targets[result]
		fmt.Fprintf(out, "%v: Case %v (%v -> %v) has invalid result\n", i, result, t.origin(), t.destination())
	}

	fmt.Fprintf(out, "%v/%v invalid path lengths.\n", len(b.invalidLengths), b.completed)
	for i, lengths := range b.invalidLengths {
		testcase := lengths[0]
		actualLength := lengths[1]
		referenceLength := lengths[2]
		t := b.targets[testcase]
		fmt.Fprintf(out, "%v: Case %v (%v -> %v) has invalid length. Has: %v, Reference: %v, Difference: %v\n", i, testcase, t.origin(), t.destination(), actualLength, referenceLength, actualLength-referenceLength)
	}
}
