package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rocketscienceinc/tictactoe-solo/internal/usecase"
)

const shutdownTimeout = 5 * time.Second

// NewRouter - routes of the local front-end. The event feed is mounted on /ws.
func NewRouter(logger *slog.Logger, gameUseCase usecase.GameUseCase, feed http.Handler) http.Handler {
	h := &handlers{
		logger:      logger.With("component", "rest"),
		gameUseCase: gameUseCase,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(h.logger))
	r.Use(middleware.Recoverer)

	r.Get("/ping", pingHandler)
	r.Handle("/ws", feed)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.SetHeader("Content-Type", "application/json"))

		r.Route("/game", func(r chi.Router) {
			r.Get("/", h.currentGame)
			r.Post("/", h.startGame)
			r.Delete("/", h.clearGame)
			r.Post("/turn", h.makeTurn)
			r.Post("/bot-turn", h.makeBotTurn)
			r.Delete("/scores", h.resetScores)
		})

		r.Get("/leaderboard", h.leaderboard)
		r.Delete("/leaderboard", h.resetLeaderboard)

		r.Get("/settings", h.settings)
		r.Put("/settings", h.updateSettings)
		r.Delete("/settings", h.resetSettings)
	})

	return r
}

// Start - serves handler on port until ctx is canceled.
func Start(ctx context.Context, port string, handler http.Handler) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server stopped: %w", err)
	}

	return nil
}
