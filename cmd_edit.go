package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"nodegraph/canvas"
	"nodegraph/config"
	"nodegraph/editor"
	"nodegraph/generator"
	"nodegraph/logging"
	"nodegraph/metrics"
	"nodegraph/terminal"
)

// ErrNotTerminal is returned when the editor is started without a terminal
// attached to stdin and stdout.
var ErrNotTerminal = errors.New("edit needs an interactive terminal")

// newScreen is replaced in tests with a simulation screen.
var newScreen = terminalScreen

func terminalScreen() (tcell.Screen, error) {
	for _, f := range []*os.File{os.Stdin, os.Stdout} {
		if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
			return nil, ErrNotTerminal
		}
	}
	return tcell.NewScreen()
}

func newEditCmd(configPath *string) *cobra.Command {
	var seedNodes int

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Open the interactive editor",
		Long: `Open the interactive editor.

In fill mode a left click places a node. In select mode click one node and
then another to connect them both ways. Undo and redo apply to the current
mode only.

Keys: tab/m toggle mode, u/ctrl+z undo, r/ctrl+y redo, q/esc/ctrl+c quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath, nil)
			if err != nil {
				return err
			}
			if seedNodes < 0 {
				return fmt.Errorf("--seed-nodes must not be negative")
			}
			return runEdit(cmd.Context(), cfg, seedNodes)
		},
	}
	cmd.Flags().IntVar(&seedNodes, "seed-nodes", 0,
		"Start with this many random, randomly connected nodes (at least 2)")
	return cmd
}

func runEdit(ctx context.Context, cfg config.Config, seedNodes int) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := logging.New(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	opts := []editor.Option{
		editor.WithStyle(cfg.EditorStyle()),
		editor.WithLogger(logger),
	}

	var reg *prometheus.Registry
	if cfg.Metrics.Addr != "" {
		reg = prometheus.NewRegistry()
		rec, err := metrics.NewRecorder(reg)
		if err != nil {
			return err
		}
		opts = append(opts, editor.WithObserver(rec))
	}

	screen, err := newScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	surface, err := canvas.NewScreen(screen, cfg.Scale(), terminal.StatusRows)
	if err != nil {
		return err
	}
	session := editor.NewSession(surface, opts...)

	if seedNodes > 0 {
		if err := seedSession(session, surface, cfg, seedNodes); err != nil {
			return err
		}
	}

	// Leaving the editor stops the metrics server; a failing metrics server
	// stops the editor.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	if reg != nil {
		g.Go(func() error {
			return metrics.ListenAndServe(gctx, cfg.Metrics.Addr, reg, logger)
		})
	}
	g.Go(func() error {
		defer cancel()
		return terminal.Run(gctx, screen, session, surface, logger)
	})
	return g.Wait()
}

// seedSession fills the visible canvas with a generated graph. The
// connection range is narrowed to what n nodes can supply.
func seedSession(session *editor.Session, surface *canvas.Screen, cfg config.Config, n int) error {
	cols, rows := surface.CanvasSize()
	sc := surface.Scale()

	p := cfg.GeneratorParams()
	p.Nodes = n
	p.Width = float64(cols) * sc.CellWidth
	p.Height = float64(rows) * sc.CellHeight
	p.Connections.Max = min(p.Connections.Max, n-1)
	p.Connections.Min = min(p.Connections.Min, p.Connections.Max)

	g, err := generator.New(p, newRand(cfg.Generator.Seed))
	if err != nil {
		return fmt.Errorf("seed graph: %w", err)
	}
	return session.Seed(g.Nodes, g.Edges)
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = rand.Int63()
	}
	return rand.New(rand.NewSource(seed))
}
