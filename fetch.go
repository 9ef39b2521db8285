package aoc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
)

// Fetcher retrieves puzzle pages and inputs from adventofcode.com.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// HTTPFetcher fetches URLs with the user's session cookie.
type HTTPFetcher struct {
	Session string
	Client  *http.Client // nil means http.DefaultClient
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if f.Session == "" {
		return nil, errors.New("no session cookie configured")
	}
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: f.Session})
	c := f.Client
	if c == nil {
		c = http.DefaultClient
	}
	res, err := c.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != 200 {
		return nil, fmt.Errorf("bad status fetching %s: %v", url, res.Status)
	}
	return io.ReadAll(res.Body)
}

// InputStore serves puzzle inputs from a directory cache, falling back to
// a Fetcher and caching what it fetches.
type InputStore struct {
	Dir     string
	Fetcher Fetcher
}

// Input returns the input for the given day.
func (s *InputStore) Input(ctx context.Context, year, day int) ([]byte, error) {
	return s.fileOrFetch(ctx,
		filepath.Join(s.Dir, fmt.Sprint(year), fmt.Sprintf("%d.input", day)),
		fmt.Sprintf("https://adventofcode.com/%d/day/%d/input", year, day))
}

// Description returns the puzzle page for the given day.
func (s *InputStore) Description(ctx context.Context, year, day int) ([]byte, error) {
	return s.fileOrFetch(ctx,
		filepath.Join(s.Dir, fmt.Sprint(year), fmt.Sprintf("%d.html", day)),
		fmt.Sprintf("https://adventofcode.com/%d/day/%d", year, day))
}

func (s *InputStore) fileOrFetch(ctx context.Context, filename, url string) ([]byte, error) {
	f, err := os.ReadFile(filename)
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	if s.Fetcher == nil {
		return nil, fmt.Errorf("%s not found and no fetcher configured", filename)
	}
	slog.DebugContext(ctx, "fetching", "url", url, "cache", filename)
	body, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0700); err != nil {
		return nil, err
	}
	if err := os.WriteFile(filename, body, 0644); err != nil {
		return nil, err
	}
	return body, nil
}
