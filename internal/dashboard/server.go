// Package dashboard serves the web UI: per-profile analytics pages and a
// multi-profile comparison view over the stored record batches.
package dashboard

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"nitterlens/internal/analyze"
	"nitterlens/internal/app"
	"nitterlens/internal/store"
	"nitterlens/internal/types"
)

// Server is the dashboard HTTP server.
type Server struct {
	app       *app.App
	store     *store.Store
	staticDir string
	dataDir   string
	log       *slog.Logger

	httpServer *http.Server

	indexTmpl   *template.Template
	userTmpl    *template.Template
	compareTmpl *template.Template
}

// NewServer creates a dashboard server listening on addr.
func NewServer(addr string, a *app.App, st *store.Store, staticDir, dataDir string, log *slog.Logger) (*Server, error) {
	s := &Server{
		app:       a,
		store:     st,
		staticDir: staticDir,
		dataDir:   dataDir,
		log:       log,
	}

	var err error
	if s.indexTmpl, err = template.New("index").Parse(indexTemplate); err != nil {
		return nil, fmt.Errorf("parse index template: %w", err)
	}
	if s.userTmpl, err = template.New("user").Parse(userTemplate); err != nil {
		return nil, fmt.Errorf("parse user template: %w", err)
	}
	if s.compareTmpl, err = template.New("compare").Parse(compareTemplate); err != nil {
		return nil, fmt.Errorf("parse compare template: %w", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /analyze", s.handleAnalyze)
	mux.HandleFunc("GET /user/{handle}", s.handleUser)
	mux.HandleFunc("GET /compare/{handles}", s.handleCompare)
	mux.HandleFunc("POST /delete/{handle}", s.handleDelete)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      withLogging(log, mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 5 * time.Minute, // analyze runs a live scrape
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for HTTP requests. It blocks until the server is
// shut down or an error occurs.
func (s *Server) Start() error {
	s.log.Info("starting dashboard", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the route table, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "ok")
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	handles, err := s.store.Handles()
	if err != nil {
		s.log.Error("failed to list handles", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s.render(w, s.indexTmpl, struct{ Handles []string }{Handles: handles})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	raw := r.FormValue("usernames")
	var handles []string
	for _, h := range strings.Split(raw, ",") {
		if h = app.NormalizeHandle(h); h != "" {
			handles = append(handles, h)
		}
	}
	if len(handles) == 0 {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	_, failures := s.app.AnalyzeProfiles(r.Context(), handles)
	for h, err := range failures {
		s.log.Error("analysis failed", "handle", h, "error", err)
	}

	if len(handles) > 1 {
		http.Redirect(w, r, "/compare/"+strings.Join(handles, ","), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/user/"+handles[0], http.StatusSeeOther)
}

// userPage is the template data for a single profile dashboard.
type userPage struct {
	Handle    string
	Summary   analyze.Summary
	DateRange string
	BestTime  string
	Recent    []types.Post
	Heatmap   string
	WordCloud string
}

func (s *Server) handleUser(w http.ResponseWriter, r *http.Request) {
	handle := app.NormalizeHandle(r.PathValue("handle"))

	posts, err := s.store.GetPosts(handle)
	if err != nil {
		s.log.Error("failed to load posts", "handle", handle, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if len(posts) == 0 {
		http.Error(w, fmt.Sprintf("No data for @%s", handle), http.StatusNotFound)
		return
	}

	summary, err := s.app.SummaryFor(handle)
	if err != nil {
		s.log.Error("failed to summarize", "handle", handle, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	page := userPage{
		Handle:    handle,
		Summary:   summary,
		DateRange: formatRange(summary),
		Recent:    posts,
	}
	if len(page.Recent) > 10 {
		page.Recent = page.Recent[:10]
	}
	if summary.HasTimes {
		page.BestTime = fmt.Sprintf("%s at %02d:00", summary.BestDay, summary.BestHour)
	} else {
		page.BestTime = "N/A"
	}
	page.Heatmap = s.staticImage(handle + "_heatmap.png")
	page.WordCloud = s.staticImage(handle + "_wordcloud.png")

	s.render(w, s.userTmpl, page)
}

// comparePage is the template data for the comparison view.
type comparePage struct {
	Profiles     []compareEntry
	ByEngagement []compareEntry
	ByActivity   []compareEntry
	ByMediaUsage []compareEntry
}

type compareEntry struct {
	Handle    string
	Summary   analyze.Summary
	DateRange string
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var entries []compareEntry
	for _, h := range strings.Split(r.PathValue("handles"), ",") {
		h = app.NormalizeHandle(h)
		if h == "" {
			continue
		}

		posts, err := s.store.GetPosts(h)
		if err != nil {
			s.log.Error("failed to load posts", "handle", h, "error", err)
			continue
		}
		if len(posts) == 0 {
			continue
		}

		summary, err := s.app.SummaryFor(h)
		if err != nil {
			s.log.Error("failed to summarize", "handle", h, "error", err)
			continue
		}
		entries = append(entries, compareEntry{
			Handle:    h,
			Summary:   summary,
			DateRange: formatRange(summary),
		})
	}

	page := comparePage{
		Profiles:     entries,
		ByEngagement: rankBy(entries, func(e compareEntry) float64 { return e.Summary.AvgEngagement }),
		ByActivity:   rankBy(entries, func(e compareEntry) float64 { return float64(e.Summary.TotalPosts) }),
		ByMediaUsage: rankBy(entries, func(e compareEntry) float64 { return e.Summary.MediaPct }),
	}

	s.render(w, s.compareTmpl, page)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	handle := app.NormalizeHandle(r.PathValue("handle"))

	if err := s.store.DeleteHandle(handle); err != nil {
		s.log.Error("failed to delete records", "handle", handle, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	for _, path := range []string{
		filepath.Join(s.dataDir, handle+".csv"),
		filepath.Join(s.staticDir, handle+"_heatmap.png"),
		filepath.Join(s.staticDir, handle+"_wordcloud.png"),
	} {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			s.log.Warn("failed to remove file", "path", path, "error", err)
		}
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// staticImage returns the image filename when it exists under the static
// dir, else "".
func (s *Server) staticImage(name string) string {
	if _, err := os.Stat(filepath.Join(s.staticDir, name)); err != nil {
		return ""
	}
	return name
}

func (s *Server) render(w http.ResponseWriter, tmpl *template.Template, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		s.log.Error("template render failed", "template", tmpl.Name(), "error", err)
	}
}

func formatRange(s analyze.Summary) string {
	if !s.RangeValid {
		return "N/A"
	}
	return s.RangeFrom.Format("2006-01-02") + " to " + s.RangeTo.Format("2006-01-02")
}

// rankBy returns entries sorted by key descending without mutating the input.
func rankBy(entries []compareEntry, key func(compareEntry) float64) []compareEntry {
	ranked := make([]compareEntry, len(entries))
	copy(ranked, entries)
	sort.SliceStable(ranked, func(i, j int) bool { return key(ranked[i]) > key(ranked[j]) })
	return ranked
}

func withLogging(log *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Info("request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}
