package hello

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/helloproject/hello/core"
)

const shutdownTimeout = 5 * time.Second

type RuntimeConfig struct {
	Env         string
	EnableCache bool
	Port        int
	ConfigPath  string
}

var Exit = os.Exit

// ListenAndServe serves handler on addr until SIGINT or SIGTERM, then shuts
// the server down gracefully.
var ListenAndServe = func(addr string, handler http.Handler) error {
	srv := &http.Server{Addr: addr, Handler: handler}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sig)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-sig:
	}

	fmt.Println("🛑 Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(ctx)
}

var Start = func(cfg RuntimeConfig) {
	fmt.Println("Starting HelloProject in", cfg.Env, "mode...")

	addr, handler, cleanup, err := BuildServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Server setup failed: %v\n", err)
		Exit(1)
		return
	}
	defer cleanup()

	fmt.Printf("✅ HelloProject running at http://localhost:%d\n", cfg.Port)
	if err := ListenAndServe(addr, handler); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Server failed: %v\n", err)
		Exit(1)
	}
}

// BuildServer loads the config and wires every route. The returned cleanup
// stops background work and unmounts views still waiting for a browser.
func BuildServer(cfg RuntimeConfig) (string, http.Handler, func(), error) {
	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = core.DefaultConfigPath
	}

	config := core.LoadConfig(configPath)
	config.CacheEnabled = cfg.EnableCache

	handler, cleanup, err := NewHandler(config, cfg.Env)
	if err != nil {
		return "", nil, nil, err
	}

	return fmt.Sprintf(":%d", cfg.Port), handler, cleanup, nil
}

func NewHandler(config *core.Config, env string) (http.Handler, func(), error) {
	renderer, err := core.NewRenderer(env, config)
	if err != nil {
		return nil, nil, err
	}

	registry := core.NewRegistry(time.Duration(config.ViewTTLSeconds) * time.Second)
	registry.Debug = config.DebugLogs
	registry.Start()
	cleanups := []func(){registry.Stop}

	mux := http.NewServeMux()

	if env == "dev" {
		setupDevStaticRoutes(mux, config.PublicDir)
	} else {
		setupProdStaticRoutes(mux, config.PublicDir, filepath.Join(config.OutputDir, "static"))
	}

	page := &pageHandler{
		config:   config,
		renderer: renderer,
		fetcher:  newFetcher(config),
		registry: registry,
	}

	stream := core.NewViewStream(registry, renderer)
	stream.Debug = config.DebugLogs
	if config.DebugLogs {
		stream.OnResolved = func(s core.State) {
			log.Printf("[page] view settled: %s", core.PhaseOf(s))
		}
	}
	mux.HandleFunc(core.ViewStreamPath, stream.Handler)

	if env == "dev" {
		reloader := core.NewLiveReloader()
		mux.HandleFunc(core.ReloadPath, reloader.Handler)

		stop, err := core.WatchDir(config.PublicDir, reloader.BroadcastReload)
		if err != nil {
			log.Printf("[server] live reload watcher disabled: %v", err)
		} else {
			cleanups = append(cleanups, func() { _ = stop() })
		}
	}

	mux.Handle("/", page)

	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	return mux, cleanup, nil
}

var newFetcher = func(config *core.Config) core.Fetcher {
	return core.NewAPIClient(config.APIBase, nil)
}
