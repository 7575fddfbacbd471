package main

import (
	"net/http"
	"strings"
	"testing"
)

func TestHealthcheck(t *testing.T) {
	app := newTestApplication(t, newMockMovieStore())
	ts := newTestServer(t, app.routes())

	status, header, body := ts.get(t, "/")

	if status != http.StatusOK {
		t.Errorf("got status %d; want %d", status, http.StatusOK)
	}
	if ct := header.Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("got content type %q; want text/plain", ct)
	}
	if !strings.Contains(body, "Filmovi API radi") {
		t.Errorf("got body %q; want the liveness message", body)
	}
}
