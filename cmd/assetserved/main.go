// Command assetserved is a small static-asset server built on the assets
// dispatcher: it serves files from a configured root directory, falls back
// to a "public" directory next to the binary, and finally to the embedded
// asset classes compiled into it.
package main

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/assetkit/assetkit/core/assets"
	"github.com/assetkit/assetkit/core/config"
	"github.com/assetkit/assetkit/core/handler"
	"github.com/assetkit/assetkit/core/logger"
	"github.com/assetkit/assetkit/middleware"
)

//go:embed assets
var embedded embed.FS

type serverConfig struct {
	Addr            string        `env:"ADDR" envDefault:":8080"`
	Root            string        `env:"ASSETS_ROOT" envDefault:"./public"`
	DefaultClass    string        `env:"ASSETS_CLASS" envDefault:"default"`
	LogLevel        slog.Level    `env:"LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

func main() {
	var cfg serverConfig
	config.MustLoad(&cfg)

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(log)

	lib, err := embeddedLibrary()
	if err != nil {
		log.Error("failed to build embedded library", logger.Error(err))
		os.Exit(1)
	}

	dispatcher := assets.New(
		assets.WithRoot(cfg.Root),
		assets.WithLibrary(lib),
		assets.WithDefaultClass(cfg.DefaultClass),
		assets.WithClassEnv("ASSETS_CLASS_OVERRIDE"),
		assets.WithLogger(log),
	)

	metrics := middleware.NewHTTPMetrics(prometheus.DefaultRegisterer, "assetserved")
	chain := handler.Chain(
		assets.Files[*appContext](dispatcher),
		middleware.RequestID[*appContext](),
		middleware.LoggingWithConfig[*appContext](middleware.LoggingConfig{
			Logger: log,
			Skip: func(ctx handler.Context) bool {
				return ctx.Request().URL.Path == "/metrics"
			},
		}),
		middleware.Metrics[*appContext](metrics),
	)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", toHTTP(chain, log))

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("listening", slog.String("addr", cfg.Addr), logger.Path(cfg.Root))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", logger.Error(err))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", logger.Error(err))
	}
	log.Info("stopped")
}

// embeddedLibrary registers every subdirectory of the embedded assets tree
// as its own class.
func embeddedLibrary() (*assets.Library, error) {
	lib := assets.NewLibrary()

	entries, err := fs.ReadDir(embedded, "assets")
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		sub, err := fs.Sub(embedded, "assets/"+e.Name())
		if err != nil {
			return nil, err
		}
		lib.Add(e.Name(), sub)
	}
	return lib, nil
}
