// Filmovi API is a small CRUD service over a Postgres-backed movie catalog.
//
//	@title			Filmovi API
//	@version		1.0
//	@description	CRUD service for the filmovi movie catalog, with generated API documentation under /api-docs.
//	@BasePath		/
package main

import (
	"context"
	"database/sql"
	"expvar"
	"os"
	"runtime"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/lib/pq"

	_ "github.com/stefanovic/filmovi/docs"
	"github.com/stefanovic/filmovi/internal/config"
	"github.com/stefanovic/filmovi/internal/data"
	"github.com/stefanovic/filmovi/internal/jsonlog"
)

const version = "1.0.0"

// application holds the dependencies for the HTTP handlers, helpers and
// middleware. Everything is injected here once at startup; there is no
// package-global state.
type application struct {
	config   *config.Config
	logger   *jsonlog.Logger
	models   data.Models
	validate *validator.Validate
}

func main() {
	logger := jsonlog.New(os.Stdout, jsonlog.LevelInfo)

	cfg, err := config.Load()
	if err != nil {
		logger.PrintFatal(err, nil)
	}

	db, err := openDB(cfg)
	if err != nil {
		logger.PrintFatal(err, nil)
	}
	defer db.Close()

	logger.PrintInfo("database connection pool established", nil)

	expvar.NewString("version").Set(version)
	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))
	expvar.Publish("database", expvar.Func(func() any {
		return db.Stats()
	}))
	expvar.Publish("timestamp", expvar.Func(func() any {
		return time.Now().Unix()
	}))

	app := &application{
		config:   cfg,
		logger:   logger,
		models:   data.NewModels(db),
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}

	if err := app.serve(); err != nil {
		logger.PrintFatal(err, nil)
	}
}

// openDB opens the bounded connection pool and verifies it with a ping
// before the server starts accepting requests.
func openDB(cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	db.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	db.SetConnMaxIdleTime(cfg.DB.MaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
