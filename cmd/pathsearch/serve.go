package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/natevvv/grid-path-search/internal/config"
	"github.com/natevvv/grid-path-search/internal/logging"
	"github.com/natevvv/grid-path-search/pkg/grid"
	"github.com/natevvv/grid-path-search/pkg/routing"
	"github.com/natevvv/grid-path-search/pkg/server/openapi_server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type serveOptions struct {
	addr     string
	gridFile string
}

func newServeCmd() *cobra.Command {
	opts := &serveOptions{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the route api for a grid",
		Long: `Serve the route api for a grid.

Endpoints:
  POST /routes       compute routes between two cells
  GET  /grid         dimensions and obstacles of the grid
  GET  /searchSpace  cells expanded by the previous computation
  POST /navigator    select the default search mode
  GET  /metrics      prometheus metrics, if enabled`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			configFile, _ := cmd.Flags().GetString("config")
			return runServe(cmd.Context(), configFile, opts)
		},
	}
	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().StringVar(&opts.gridFile, "grid", "", "grid file")
	return cmd
}

func runServe(ctx context.Context, configFile string, opts *serveOptions) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return failure(err)
	}
	if opts.addr != "" {
		cfg.Server.Addr = opts.addr
	}
	if opts.gridFile != "" {
		cfg.Grid.File = opts.gridFile
	}
	if cfg.Grid.File == "" {
		return errors.New("no grid file given (--grid)")
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	if err != nil {
		return failure(err)
	}
	slog.SetDefault(logger)

	g, err := grid.NewGridFromFile(cfg.Grid.File)
	if err != nil {
		return failure(err)
	}
	logger.Info("grid loaded", "file", cfg.Grid.File, "rows", g.Rows(), "cols", g.Cols())

	routerOpts := []routing.Option{routing.WithLogger(logger), routing.WithDebugLevel(cfg.Search.DebugLevel)}
	apiRouters := make([]openapi_server.Router, 0, 2)
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		routerOpts = append(routerOpts, routing.WithMetrics(routing.NewMetrics(reg)))
		apiRouters = append(apiRouters, openapi_server.NewMetricsController(reg))
	}

	router := routing.NewRouter(g, routerOpts...)
	if !router.SetMode(cfg.Search.Mode) {
		return failure(routing.ErrUnknownMode)
	}
	service := openapi_server.NewDefaultApiService(router)
	apiRouters = append(apiRouters, openapi_server.NewDefaultApiController(service))

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      openapi_server.NewRouter(apiRouters...),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		logger.Info("listening", "addr", server.Addr, "mode", router.Mode().String())
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		return failure(err)
	}
	return nil
}
