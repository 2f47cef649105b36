package scrape

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"nitterlens/internal/metrics"
)

type fakeRenderer struct {
	nodes   []ItemNode
	err     error
	lastURL string
}

func (f *fakeRenderer) Render(_ context.Context, url string, _ time.Duration) ([]ItemNode, error) {
	f.lastURL = url
	return f.nodes, f.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFetchProfileURL(t *testing.T) {
	r := &fakeRenderer{}
	s := New(r, "https://nitter.net/", 10*time.Second, testLogger())

	if _, err := s.FetchProfile(context.Background(), "@somebody", 10); err != nil {
		t.Fatal(err)
	}
	if r.lastURL != "https://nitter.net/somebody" {
		t.Errorf("url = %q", r.lastURL)
	}
}

func TestFetchProfileFailure(t *testing.T) {
	r := &fakeRenderer{err: errors.New("timeline never appeared")}
	s := New(r, "https://nitter.net", 10*time.Second, testLogger())

	posts, err := s.FetchProfile(context.Background(), "somebody", 10)
	if !errors.Is(err, ErrFetchFailed) {
		t.Fatalf("err = %v, want ErrFetchFailed", err)
	}
	if len(posts) != 0 {
		t.Errorf("got %d records on failure", len(posts))
	}
}

func TestFetchProfileEmptyTimeline(t *testing.T) {
	// A rendered page with zero posts is a valid empty result, not a
	// fetch failure.
	r := &fakeRenderer{nodes: []ItemNode{}}
	s := New(r, "https://nitter.net", 10*time.Second, testLogger())

	posts, err := s.FetchProfile(context.Background(), "quietuser", 10)
	if err != nil {
		t.Fatalf("err = %v, want nil", err)
	}
	if len(posts) != 0 {
		t.Errorf("got %d records, want 0", len(posts))
	}
}

func TestFetchProfileAssembles(t *testing.T) {
	reshare := validNode("boosted")
	reshare.Header = "Retweeted"

	r := &fakeRenderer{nodes: []ItemNode{validNode("a"), reshare, validNode("b")}}
	s := New(r, "https://nitter.net", 10*time.Second, testLogger())

	posts, err := s.FetchProfile(context.Background(), "somebody", 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(posts) != 2 {
		t.Fatalf("got %d records, want 2", len(posts))
	}
	if posts[0].Content != "a" || posts[1].Content != "b" {
		t.Errorf("contents = %q, %q", posts[0].Content, posts[1].Content)
	}
}

func TestFetchProfileCountsSkips(t *testing.T) {
	reshare := validNode("boosted")
	reshare.Header = "Retweeted"
	undated := validNode("undated")
	undated.Date = nil

	r := &fakeRenderer{nodes: []ItemNode{validNode("a"), reshare, undated}}
	s := New(r, "https://nitter.net", 10*time.Second, testLogger())

	reshares := testutil.ToFloat64(metrics.ItemsSkipped.WithLabelValues(string(SkipReshare)))
	noDates := testutil.ToFloat64(metrics.ItemsSkipped.WithLabelValues(string(SkipNoDate)))

	if _, err := s.FetchProfile(context.Background(), "somebody", 5); err != nil {
		t.Fatal(err)
	}

	got := testutil.ToFloat64(metrics.ItemsSkipped.WithLabelValues(string(SkipReshare)))
	if got != reshares+1 {
		t.Errorf("reshare skips = %v, want %v", got, reshares+1)
	}
	got = testutil.ToFloat64(metrics.ItemsSkipped.WithLabelValues(string(SkipNoDate)))
	if got != noDates+1 {
		t.Errorf("missing date skips = %v, want %v", got, noDates+1)
	}
}
