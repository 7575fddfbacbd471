package main

import (
	"expvar"
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (app *application) routes() http.Handler {
	router := httprouter.New()

	// Route our own envelopes for the router's built-in failure modes.
	router.NotFound = http.HandlerFunc(app.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedResponse)

	router.HandlerFunc(http.MethodGet, "/", app.healthcheckHandler)

	router.HandlerFunc(http.MethodGet, "/filmovi", app.listMoviesHandler)
	router.HandlerFunc(http.MethodPost, "/filmovi", app.createMovieHandler)
	router.HandlerFunc(http.MethodGet, "/filmovi/:id", app.showMovieHandler)
	router.HandlerFunc(http.MethodPut, "/filmovi/:id", app.updateMovieHandler)
	router.HandlerFunc(http.MethodDelete, "/filmovi/:id", app.deleteMovieHandler)

	router.HandlerFunc(http.MethodGet, "/swagger.json", app.swaggerJSONHandler)
	router.HandlerFunc(http.MethodGet, "/api-docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/api-docs/index.html", http.StatusMovedPermanently)
	})
	router.Handler(http.MethodGet, "/api-docs/*filepath", app.apiDocsHandler())

	router.Handler(http.MethodGet, "/debug/vars", expvar.Handler())

	return app.metrics(app.recoverPanic(app.rateLimit(router)))
}
