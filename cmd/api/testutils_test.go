package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/stefanovic/filmovi/internal/config"
	"github.com/stefanovic/filmovi/internal/data"
	"github.com/stefanovic/filmovi/internal/jsonlog"
)

// mockMovieStore is an in-memory data.MovieStore so handler tests run
// without a database. Setting failErr makes every operation fail with that
// error, standing in for a lost connection or a malformed query.
type mockMovieStore struct {
	mu      sync.Mutex
	nextID  int64
	movies  map[int64]data.Movie
	failErr error
}

func newMockMovieStore() *mockMovieStore {
	return &mockMovieStore{
		nextID: 1,
		movies: map[int64]data.Movie{},
	}
}

func (s *mockMovieStore) GetAll(ctx context.Context) ([]data.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failErr != nil {
		return nil, s.failErr
	}

	movies := []data.Movie{}
	for _, movie := range s.movies {
		movies = append(movies, movie)
	}
	return movies, nil
}

func (s *mockMovieStore) Get(ctx context.Context, id int64) (*data.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failErr != nil {
		return nil, s.failErr
	}

	movie, ok := s.movies[id]
	if !ok {
		return nil, data.ErrRecordNotFound
	}
	return &movie, nil
}

func (s *mockMovieStore) Insert(ctx context.Context, movie *data.Movie) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failErr != nil {
		return s.failErr
	}

	movie.ID = s.nextID
	movie.CreatedAt = time.Now().UTC().Truncate(time.Second)
	s.nextID++
	s.movies[movie.ID] = *movie
	return nil
}

func (s *mockMovieStore) Update(ctx context.Context, id int64, input data.MovieInput) (*data.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failErr != nil {
		return nil, s.failErr
	}

	movie, ok := s.movies[id]
	if !ok {
		return nil, data.ErrRecordNotFound
	}

	if input.Naslov != nil {
		movie.Naslov = *input.Naslov
	}
	if input.Godina != nil {
		movie.Godina = input.Godina
	}
	if input.Zanr != nil {
		movie.Zanr = input.Zanr
	}

	s.movies[id] = movie
	return &movie, nil
}

func (s *mockMovieStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failErr != nil {
		return s.failErr
	}

	if _, ok := s.movies[id]; !ok {
		return data.ErrRecordNotFound
	}
	delete(s.movies, id)
	return nil
}

func (s *mockMovieStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.movies)
}

func newTestApplication(t *testing.T, store data.MovieStore) *application {
	t.Helper()

	return &application{
		config: &config.Config{
			Port: 3000,
			Env:  "testing",
			Limiter: config.Limiter{
				RPS:     100,
				Burst:   100,
				Enabled: false,
			},
		},
		logger:   jsonlog.New(io.Discard, jsonlog.LevelOff),
		models:   data.Models{Movies: store},
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

type testServer struct {
	*httptest.Server
}

func newTestServer(t *testing.T, h http.Handler) *testServer {
	t.Helper()

	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return &testServer{ts}
}

// request issues a method/path/body triple against the test server and
// returns the status, headers and body.
func (ts *testServer) request(t *testing.T, method, urlPath, body string) (int, http.Header, string) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, ts.URL+urlPath, reader)
	if err != nil {
		t.Fatal(err)
	}

	rs, err := ts.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer rs.Body.Close()

	respBody, err := io.ReadAll(rs.Body)
	if err != nil {
		t.Fatal(err)
	}

	return rs.StatusCode, rs.Header, string(respBody)
}

func (ts *testServer) get(t *testing.T, urlPath string) (int, http.Header, string) {
	return ts.request(t, http.MethodGet, urlPath, "")
}
