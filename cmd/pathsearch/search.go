package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/natevvv/grid-path-search/internal/config"
	"github.com/natevvv/grid-path-search/internal/logging"
	"github.com/natevvv/grid-path-search/internal/report"
	"github.com/natevvv/grid-path-search/pkg/grid"
	"github.com/natevvv/grid-path-search/pkg/routing"
	"github.com/spf13/cobra"
)

type searchOptions struct {
	configFile string
	input      string
	start      string
	goal       string
	search     string
	debugLevel int
}

func newRootCmd() *cobra.Command {
	opts := &searchOptions{}
	cmd := &cobra.Command{
		Use:   "pathsearch --input FILE --start R,C --goal R,C --search BFS|DFS|A*|ALL",
		Short: "Find a path between two cells of an obstacle grid",
		Long: `Find a path between two cells of an obstacle grid.

The grid file holds one row per line, 0 marks a free cell and 1 an obstacle.
Cells may be separated by commas. Moves go down, right, up or left.

Examples:
  pathsearch --input maze.txt --start 0,0 --goal 2,2 --search BFS
  pathsearch --input maze.txt --start 0,0 --goal 2,2 --search ALL`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.input, "input", "i", "", "grid file")
	flags.StringVar(&opts.start, "start", "", "start cell as ROW,COL")
	flags.StringVar(&opts.goal, "goal", "", "goal cell as ROW,COL")
	flags.StringVar(&opts.search, "search", "", "search mode: BFS, DFS, A* or ALL")
	flags.IntVar(&opts.debugLevel, "debug", 0, "trace the search (0 = off, 1 = summary, 2 = every expansion)")
	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "YAML config file")
	return cmd
}

func runSearch(cmd *cobra.Command, opts *searchOptions) error {
	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return failure(err)
	}
	if opts.input == "" {
		opts.input = cfg.Grid.File
	}
	if opts.search == "" {
		opts.search = cfg.Search.Mode
	}
	if !cmd.Flags().Changed("debug") {
		opts.debugLevel = cfg.Search.DebugLevel
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	if err != nil {
		return failure(err)
	}
	slog.SetDefault(logger)

	if opts.input == "" {
		return errors.New("no grid file given (--input)")
	}
	start, err := parseCell("start", opts.start)
	if err != nil {
		return err
	}
	goal, err := parseCell("goal", opts.goal)
	if err != nil {
		return err
	}

	g, err := grid.NewGridFromFile(opts.input)
	if err != nil {
		return failure(err)
	}

	router := routing.NewRouter(g, routing.WithLogger(logger), routing.WithDebugLevel(opts.debugLevel))
	mode, err := routing.ParseMode(opts.search)
	if err != nil {
		return failure(err)
	}
	router.SetMode(mode.String())

	routes, err := router.ComputeRoutes(start, goal)
	if err != nil {
		return failure(err)
	}
	if !report.WriteRoutes(cmd.OutOrStdout(), cmd.ErrOrStderr(), routes, mode == routing.ModeAll) {
		return &exitError{code: exitFailure}
	}
	return nil
}

func parseCell(name, value string) (grid.Position, error) {
	if value == "" {
		return grid.Position{}, fmt.Errorf("no %s cell given (--%s)", name, name)
	}
	p, err := grid.ParsePosition(value)
	if err != nil {
		return grid.Position{}, fmt.Errorf("--%s: %w", name, err)
	}
	return p, nil
}
