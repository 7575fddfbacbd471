package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/stefanovic/filmovi/internal/data"
)

// listMoviesHandler returns the full catalog as a bare JSON array.
//
// @Summary List movies
// @Description Returns every movie in the catalog. Ordering is not specified.
// @Tags filmovi
// @Produce json
// @Success 200 {array} data.Movie
// @Failure 500 {object} main.errorEnvelope "Internal server error"
// @Router /filmovi [get]
func (app *application) listMoviesHandler(w http.ResponseWriter, r *http.Request) {
	movies, err := app.models.Movies.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusOK, movies, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// showMovieHandler returns a single movie by id.
//
// @Summary Get a movie
// @Tags filmovi
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} data.Movie
// @Failure 404 {object} main.errorEnvelope "Movie not found"
// @Failure 500 {object} main.errorEnvelope "Internal server error"
// @Router /filmovi/{id} [get]
func (app *application) showMovieHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	movie, err := app.models.Movies.Get(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	if err := app.writeJSON(w, http.StatusOK, movie, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// createMovieHandler inserts a new movie. naslov is validated up front
// rather than left to the NOT NULL constraint, so a missing title never
// reaches the database.
//
// @Summary Create a movie
// @Tags filmovi
// @Accept json
// @Produce json
// @Param movie body data.MovieInput true "Movie fields (naslov required)"
// @Success 201 {object} data.Movie
// @Failure 400 {object} main.errorEnvelope "Malformed request body"
// @Failure 422 {object} main.validationEnvelope "Validation failure"
// @Failure 500 {object} main.errorEnvelope "Internal server error"
// @Router /filmovi [post]
func (app *application) createMovieHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Naslov *string `json:"naslov" validate:"required,min=1"`
		Godina *int32  `json:"godina"`
		Zanr   *string `json:"zanr"`
	}

	if err := app.readJSON(w, r, &input); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if failures := app.checkInput(input); failures != nil {
		app.failedValidationResponse(w, r, failures)
		return
	}

	movie := &data.Movie{
		Naslov: *input.Naslov,
		Godina: input.Godina,
		Zanr:   input.Zanr,
	}

	if err := app.models.Movies.Insert(r.Context(), movie); err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/filmovi/%d", movie.ID))

	if err := app.writeJSON(w, http.StatusCreated, movie, headers); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// updateMovieHandler partially updates a movie. Fields that are absent or
// null in the body are left unchanged.
//
// @Summary Update a movie
// @Tags filmovi
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Param movie body data.MovieInput true "Fields to change"
// @Success 200 {object} data.Movie
// @Failure 400 {object} main.errorEnvelope "Malformed request body"
// @Failure 404 {object} main.errorEnvelope "Movie not found"
// @Failure 422 {object} main.validationEnvelope "Validation failure"
// @Failure 500 {object} main.errorEnvelope "Internal server error"
// @Router /filmovi/{id} [put]
func (app *application) updateMovieHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	var input struct {
		Naslov *string `json:"naslov" validate:"omitempty,min=1"`
		Godina *int32  `json:"godina"`
		Zanr   *string `json:"zanr"`
	}

	if err := app.readJSON(w, r, &input); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if failures := app.checkInput(input); failures != nil {
		app.failedValidationResponse(w, r, failures)
		return
	}

	movie, err := app.models.Movies.Update(r.Context(), id, data.MovieInput{
		Naslov: input.Naslov,
		Godina: input.Godina,
		Zanr:   input.Zanr,
	})
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	if err := app.writeJSON(w, http.StatusOK, movie, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// deleteMovieHandler removes a movie. Success is a bare 204.
//
// @Summary Delete a movie
// @Tags filmovi
// @Param id path int true "Movie ID"
// @Success 204 "Deleted"
// @Failure 404 {object} main.errorEnvelope "Movie not found"
// @Failure 500 {object} main.errorEnvelope "Internal server error"
// @Router /filmovi/{id} [delete]
func (app *application) deleteMovieHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	if err := app.models.Movies.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
