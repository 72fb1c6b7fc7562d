package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/kardel/brep2graph/pkg/config"
	"github.com/kardel/brep2graph/pkg/convert"
	"github.com/kardel/brep2graph/pkg/hetero"
	"github.com/kardel/brep2graph/pkg/logging"
	"github.com/kardel/brep2graph/pkg/model"
	"github.com/kardel/brep2graph/pkg/output"
	"github.com/kardel/brep2graph/pkg/watcher"
	"github.com/kardel/brep2graph/pkg/web"
)

func main() {
	f := pflag.NewFlagSet("brep2graph", pflag.ExitOnError)
	f.String("scene", "", "Path to the scene document (JSON)")
	f.String("out", "", "Write the converted graph as JSON to this file")
	f.Bool("web", false, "Serve the converted graph over HTTP instead of printing")
	f.Int("port", 8080, "Port for the web server (only used with --web)")
	f.Bool("watch", false, "Watch the scene file and re-convert on change")
	f.CountP("verbose", "v", "Increase verbosity (-v for debug)")
	f.String("verbosity", "", "Explicit log level (debug, info, warn, error)")
	_ = f.Parse(os.Args[1:])

	cfg, err := config.Load(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	configureLogging(cfg)

	if cfg.Scene == "" {
		fmt.Fprintln(os.Stderr, "Error: --scene is required")
		f.PrintDefaults()
		os.Exit(1)
	}

	if cfg.WebMode {
		runWeb(cfg)
		return
	}

	emit := func() error {
		g, err := convertScene(cfg.Scene)
		if err != nil {
			return err
		}
		if cfg.Out != "" {
			if err := writeGraph(cfg.Out, g); err != nil {
				return err
			}
			logging.Info("wrote graph", "path", cfg.Out)
			return nil
		}
		output.PrintSummary(cfg.Scene, g)
		return nil
	}

	if err := emit(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !cfg.Watch {
		return
	}

	// Watch mode without --web: re-convert and re-emit on every scene
	// change until interrupted.
	err = watchScene(context.Background(), cfg.Scene, func() {
		if err := emit(); err != nil {
			logging.Error("conversion failed", "scene", cfg.Scene, "error", err)
		}
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// convertScene runs the full pipeline for one scene file
func convertScene(scene string) (*hetero.Graph, error) {
	doc, err := model.LoadDocument(scene)
	if err != nil {
		return nil, err
	}
	shape, err := doc.BuildShape()
	if err != nil {
		return nil, err
	}
	return convert.Convert(shape)
}

func writeGraph(path string, g *hetero.Graph) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer out.Close()

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(g)
}

func runWeb(cfg *config.Config) {
	server := web.NewServer()

	_ = server.PublishStatus("loading", "loading scene", cfg.Scene)

	// Serve in the background; conversion results are pushed as they
	// arrive.
	go func() {
		if err := server.Start(cfg.Port); err != nil {
			logging.Error("web server failed", "error", err)
			os.Exit(1)
		}
	}()

	reconvert := func() {
		_ = server.PublishStatus("converting", "converting scene", cfg.Scene)
		g, err := convertScene(cfg.Scene)
		if err != nil {
			logging.Error("conversion failed", "scene", cfg.Scene, "error", err)
			_ = server.PublishStatus("failed", err.Error(), cfg.Scene)
			return
		}
		server.SetGraph(cfg.Scene, g)
		_ = server.PublishStatus("ready", "conversion complete", cfg.Scene)
		logging.Info("conversion complete",
			"scene", cfg.Scene,
			"vertices", g.NumNodes(hetero.KindVertex),
			"edges", g.NumNodes(hetero.KindEdge),
			"faces", g.NumNodes(hetero.KindFace))
	}
	reconvert()

	if !cfg.Watch {
		select {}
	}

	if err := watchScene(context.Background(), cfg.Scene, reconvert); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// watchScene invokes onChange for every debounced batch of changes to
// the scene file. It returns when ctx is cancelled.
func watchScene(ctx context.Context, scene string, onChange func()) error {
	sw, err := watcher.NewSceneWatcher(scene)
	if err != nil {
		return err
	}
	if err := sw.Start(ctx); err != nil {
		sw.Stop()
		return err
	}

	deb := watcher.NewDebouncer(sw.Events(), 200*time.Millisecond, 2*time.Second)
	deb.Start(ctx)

	for range deb.Output() {
		onChange()
	}
	return nil
}

func configureLogging(cfg *config.Config) {
	level := slog.LevelInfo
	switch cfg.Verbosity {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		if cfg.VerboseCnt > 0 {
			level = slog.LevelDebug
		}
	}
	logging.SetLevel(level)
}
