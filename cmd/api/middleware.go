package main

import (
	"expvar"
	"fmt"
	"net/http"
	"strconv"

	"github.com/felixge/httpsnoop"
	"golang.org/x/time/rate"
)

func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// When a panic occurs and the runtime unwinds the stack, this function will be called.
		defer func() {
			// Under normal circumstances, this function will be called, so make sure a panic has actually occurred.
			if err := recover(); err != nil {
				// If a panic was detected, we will close our HTTP connection.
				w.Header().Set("Connection", "close")
				// Return the error with response code 500.
				app.serverErrorResponse(w, r, fmt.Errorf("%s", err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (app *application) rateLimit(next http.Handler) http.Handler {
	// One global token bucket shared by all clients, refilled at the
	// configured rate.
	limiter := rate.NewLimiter(rate.Limit(app.config.Limiter.RPS), app.config.Limiter.Burst)

	// All calls to this function will pull from the above rate limiter.
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Check if there are enough tokens to perform an event, returning a 429 Too Many Requests response if there aren't.
		if app.config.Limiter.Enabled && !limiter.Allow() {
			app.rateLimitExceededResponse(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Registered once at package level; expvar panics on duplicate names.
var (
	totalRequestsReceived           = expvar.NewInt("total_requests_received")
	totalResponsesSent              = expvar.NewInt("total_responses_sent")
	totalProcessingTimeMicroseconds = expvar.NewInt("total_processing_time_us")
	totalResponsesSentByStatus      = expvar.NewMap("total_responses_sent_by_status")
)

// metrics records per-request counters and emits one structured log line per
// request. httpsnoop captures the status code and duration without us having
// to wrap the ResponseWriter ourselves.
func (app *application) metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		totalRequestsReceived.Add(1)

		m := httpsnoop.CaptureMetrics(next, w, r)

		totalResponsesSent.Add(1)
		totalProcessingTimeMicroseconds.Add(m.Duration.Microseconds())
		totalResponsesSentByStatus.Add(strconv.Itoa(m.Code), 1)

		app.logger.PrintInfo("request", map[string]string{
			"method":   r.Method,
			"url":      r.URL.String(),
			"status":   strconv.Itoa(m.Code),
			"duration": m.Duration.String(),
		})
	})
}
