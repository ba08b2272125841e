package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/mdobak/go-xerrors"
)

func (app *application) serve() error {
	server := &http.Server{
		Addr:         app.config.Addr,
		Handler:      app.routes(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app.doInBackground(func() {
		if err := app.carousel.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			app.logger.Error("Carousel stopped", "error", err)
		}
	})

	serverErr := make(chan error, 1)
	go func() {
		app.logger.Info("Server is listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err, ok := <-serverErr:
		stop()
		app.wg.Wait()
		if ok {
			return xerrors.New(err)
		}
		return nil
	case <-ctx.Done():
	}

	app.logger.Info("Server is shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return xerrors.New(err)
	}

	app.wg.Wait()
	app.logger.Info("Server stopped")
	return nil
}
