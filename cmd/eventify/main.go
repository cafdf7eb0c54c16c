package main

import (
	"context"
	"errors"
	"eventify/internal/backend"
	"eventify/internal/config"
	"eventify/internal/http-server/handlers/auth/forgotPassword"
	"eventify/internal/http-server/handlers/auth/login"
	"eventify/internal/http-server/handlers/auth/signup"
	"eventify/internal/http-server/handlers/auth/verifyAccount"
	"eventify/internal/http-server/handlers/events/listEvents"
	"eventify/internal/http-server/handlers/events/listEventTypes"
	"eventify/internal/http-server/handlers/pages"
	"eventify/internal/http-server/handlers/wizard/getDraft"
	"eventify/internal/http-server/handlers/wizard/moveStep"
	"eventify/internal/http-server/handlers/wizard/startDraft"
	"eventify/internal/http-server/handlers/wizard/submitEvent"
	"eventify/internal/http-server/handlers/wizard/tickets"
	"eventify/internal/http-server/handlers/wizard/updateDetails"
	"eventify/internal/http-server/handlers/wizard/updateSchedule"
	"eventify/internal/http-server/handlers/wizard/uploadPoster"
	"eventify/internal/http-server/middleware/mwauth"
	"eventify/internal/http-server/middleware/mwlogger"
	"eventify/internal/lib/logger/handlers/slogpretty"
	"eventify/internal/lib/logger/sl"
	"eventify/internal/wizard"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting eventify", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	api := backend.New(cfg.Backend.URL, cfg.Backend.Timeout)
	drafts := wizard.NewStore(cfg.Wizard.DraftTTL)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	fs := http.FileServer(http.Dir("./static/"))
	router.Handle("/static/*", http.StripPrefix("/static/", fs))

	shell := pages.New(log)
	for _, route := range pages.Routes() {
		router.Get(route, shell)
	}

	router.Route("/api/ui", func(r chi.Router) {
		r.Post("/auth/login", login.New(log, api))
		r.Post("/auth/signup", signup.New(log, api))
		r.Post("/auth/forgot-password", forgotPassword.NewRequestCode(log, api))
		r.Post("/auth/forgot-password/verify", forgotPassword.NewVerifyCode(log, api))
		r.Post("/auth/forgot-password/reset", forgotPassword.NewResetPassword(log, api))

		r.Group(func(r chi.Router) {
			r.Use(mwauth.New(log))

			r.Post("/auth/verify", verifyAccount.New(log, api))

			r.Get("/events", listEvents.New(log, api, cfg.Events.PageSize))
			r.Get("/events/types", listEventTypes.New(log, api))

			r.Post("/wizard", startDraft.New(log, drafts))
			r.Get("/wizard", getDraft.New(log, drafts))
			r.Post("/wizard/step", moveStep.New(log, drafts))
			r.Put("/wizard/details", updateDetails.New(log, drafts))
			r.Put("/wizard/schedule", updateSchedule.New(log, drafts))
			r.Post("/wizard/tickets", tickets.NewAdd(log, drafts))
			r.Put("/wizard/tickets/{index}", tickets.NewUpdate(log, drafts))
			r.Delete("/wizard/tickets/{index}", tickets.NewRemove(log, drafts))
			r.Post("/wizard/poster", uploadPoster.New(log, drafts, cfg.Wizard.MaxPosterSize))
			r.Post("/wizard/submit", submitEvent.New(log, drafts, api))
		})
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	done := make(chan struct{})

	go func() {
		ticker := time.NewTicker(cfg.Wizard.SweepInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if swept := drafts.SweepExpired(time.Now()); swept > 0 {
					log.Debug("expired drafts swept", slog.Int("count", swept))
				}
			case <-done:
				return
			}
		}
	}()

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop
	close(done)

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.Timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
