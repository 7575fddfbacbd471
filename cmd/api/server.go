package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// serve will create and run a server for our application.
func (app *application) serve() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", app.config.Port),
		Handler:      app.routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		// Route the server's own log output through our JSON logger at the ERROR level.
		ErrorLog: log.New(app.logger, "", 0),
	}

	shutdownError := make(chan error)

	// Spin up a goroutine that will just listen for OS signals.
	// This goroutine will intercept the SIGINT and SIGTERM signals and start a graceful shutdown.
	go func() {
		quit := make(chan os.Signal, 1)

		// Listen for the given signals.
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		// This line will block until a signal is received.
		s := <-quit

		app.logger.PrintInfo("shutting down server", map[string]string{
			"signal": s.String(),
		})

		// Give in-flight requests 20 seconds to complete.
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()

		shutdownError <- srv.Shutdown(ctx)
	}()

	app.logger.PrintInfo("starting server", map[string]string{
		"addr": srv.Addr,
		"env":  app.config.Env,
	})

	// Shutdown() causes ListenAndServe() to return ErrServerClosed immediately,
	// so that error means the shutdown path is in control.
	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	if err := <-shutdownError; err != nil {
		return err
	}

	app.logger.PrintInfo("stopped server", map[string]string{
		"addr": srv.Addr,
	})

	return nil
}
