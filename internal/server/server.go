// Package server exposes a leaderboard data file over HTTP so the ui, or any browser,
// can fetch it by URL.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/cors"
	"github.com/gorilla/mux"
	"github.com/klauspost/compress/gzhttp"
	"github.com/leighmacdonald/lb-tui/internal/config"
	"github.com/leighmacdonald/lb-tui/internal/elo"
	"github.com/leighmacdonald/lb-tui/internal/leaderboard"
	"github.com/leighmacdonald/lb-tui/internal/source"
	"golang.org/x/sync/errgroup"
)

var (
	ErrServe    = errors.New("failed to serve http")
	ErrShutdown = errors.New("failed to shutdown http server")
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

type Server struct {
	dataFile      string
	listenAddress string
	loader        *source.Loader
	handler       http.Handler
}

// New creates a server for the configured data file. With DeriveRatings enabled,
// players without a rating are rated by replaying their record with elo.
func New(conf config.Config) *Server {
	var opts []leaderboard.NormalizeOption
	if conf.DeriveRatings {
		opts = append(opts, leaderboard.WithRatingFallback(elo.New(conf.KFactor).RatingFromRecord))
	}

	server := &Server{
		dataFile:      conf.DataFile,
		listenAddress: conf.ListenAddress,
		loader:        source.NewLoader(http.DefaultClient, leaderboard.NewRanker(conf.Tag()), opts...),
	}

	router := mux.NewRouter()
	router.Use(requestIDMiddleware, loggingMiddleware, recoveryMiddleware)
	router.HandleFunc("/health", server.onHealth).Methods(http.MethodGet)
	router.HandleFunc("/sample_players.json", server.onDataFile).Methods(http.MethodGet)
	router.HandleFunc("/players", server.onPlayers).Methods(http.MethodGet)
	router.HandleFunc("/player/{name}", server.onPlayer).Methods(http.MethodGet)
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "Not found")
	})

	server.handler = gzhttp.GzipHandler(cors.Handler(cors.Options{
		AllowedOrigins: conf.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         300,
	})(router))

	return server
}

func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run listens until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.listenAddress,
		Handler:           s.handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	tasks, taskCtx := errgroup.WithContext(ctx)
	tasks.Go(func() error {
		slog.Info("Serving leaderboard", slog.String("address", s.listenAddress), slog.String("data_file", s.dataFile))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Join(err, ErrServe)
		}

		return nil
	})
	tasks.Go(func() error {
		<-taskCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil { //nolint:contextcheck
			return errors.Join(err, ErrShutdown)
		}

		return nil
	})

	return tasks.Wait()
}
