package main

import (
	"fmt"
	"net/http"
)

// healthcheckHandler is the plain-text liveness endpoint at the root path.
//
// @Summary Liveness check
// @Produce plain
// @Success 200 {string} string "Filmovi API radi"
// @Router / [get]
func (app *application) healthcheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "Filmovi API radi (env: %s, version: %s)\n", app.config.Env, version)
}
