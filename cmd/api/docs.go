package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"github.com/swaggo/swag"
)

// swaggerJSONHandler serves the generated OpenAPI document registered by the
// docs package.
func (app *application) swaggerJSONHandler(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc()
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(doc))
}

// apiDocsHandler serves the interactive viewer under /api-docs/. The
// swagger.json path is carved out so the document is available both here
// and at the root, with the viewer configured to read it from this prefix.
func (app *application) apiDocsHandler() http.Handler {
	ui := httpSwagger.Handler(httpSwagger.URL("/api-docs/swagger.json"))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if httprouter.ParamsFromContext(r.Context()).ByName("filepath") == "/swagger.json" {
			app.swaggerJSONHandler(w, r)
			return
		}
		ui.ServeHTTP(w, r)
	})
}
