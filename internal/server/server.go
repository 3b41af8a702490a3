// Package server serves the site dynamically, resolving slugs per request.
package server

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/Bitlatte/portfolio/internal/blog"
	"github.com/Bitlatte/portfolio/internal/config"
	"github.com/Bitlatte/portfolio/internal/content"
	"github.com/Bitlatte/portfolio/internal/model"
	"github.com/Bitlatte/portfolio/internal/render"
	"github.com/Bitlatte/portfolio/internal/site"
)

// Server is the HTTP front end. Catalogs are fixed for its lifetime; blog
// posts can be swapped with SetPosts.
type Server struct {
	cfg      config.Config
	renderer *render.Renderer
	logger   *zap.Logger
	router   chi.Router

	mu    sync.RWMutex
	posts []model.Post
}

// New creates a server for s with the given initial posts.
func New(s *site.Site, cfg config.Config, posts []model.Post, logger *zap.Logger) (*Server, error) {
	renderer, err := render.New(s, cfg)
	if err != nil {
		return nil, err
	}
	srv := &Server{
		cfg:      cfg,
		renderer: renderer,
		logger:   logger,
		posts:    posts,
	}
	srv.setupRoutes()
	return srv, nil
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(middleware.StripSlashes)

	if s.cfg.StaticDir != "" {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(s.cfg.StaticDir))))
	}

	r.Get("/", s.handlePage(func(*http.Request) site.Route {
		return site.Route{Path: "/", Kind: site.KindHome}
	}))
	r.Get("/about", s.handlePage(func(*http.Request) site.Route {
		return site.Route{Path: site.AboutPath, Kind: site.KindAbout}
	}))
	r.Get("/contact", s.handlePage(func(*http.Request) site.Route {
		return site.Route{Path: site.ContactPath, Kind: site.KindContact}
	}))
	r.Get("/talks", s.handlePage(func(*http.Request) site.Route {
		return site.Route{Path: "/talks/", Kind: site.KindTalks}
	}))
	r.Get("/talks/{slug}", s.handlePage(func(r *http.Request) site.Route {
		slug := chi.URLParam(r, "slug")
		return site.Route{Path: site.TalkPath(slug), Kind: site.KindTalk, Slug: slug}
	}))
	r.Get("/projects", s.handlePage(func(*http.Request) site.Route {
		return site.Route{Path: "/projects/", Kind: site.KindProjects}
	}))
	r.Get("/projects/{slug}", s.handlePage(func(r *http.Request) site.Route {
		slug := chi.URLParam(r, "slug")
		return site.Route{Path: site.ProjectPath(slug), Kind: site.KindProject, Slug: slug}
	}))
	r.Get("/blog", s.handlePage(func(*http.Request) site.Route {
		return site.Route{Path: "/blog/", Kind: site.KindBlog, Page: 1}
	}))
	r.Get("/blog/page/{page}", s.handlePage(func(r *http.Request) site.Route {
		n := blogPageNumber(chi.URLParam(r, "page"))
		return site.Route{Path: site.BlogPagePath(n), Kind: site.KindBlog, Page: n}
	}))
	r.Get("/blog/{slug}", s.handlePage(func(r *http.Request) site.Route {
		slug := chi.URLParam(r, "slug")
		return site.Route{Path: site.PostPath(slug), Kind: site.KindPost, Slug: slug}
	}))
	r.Get("/feed.xml", s.handlePage(func(*http.Request) site.Route {
		return site.Route{Path: "/feed.xml", Kind: site.KindFeed}
	}))
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.notFound(w, r)
	})

	s.router = r
}

// blogPageNumber parses the canonical form of a listing page number, or
// returns -1. Page 1 lives at /blog/ and "02" is not "2".
func blogPageNumber(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 2 || strconv.Itoa(n) != raw {
		return -1
	}
	return n
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// SetPosts replaces the posts served from now on.
func (s *Server) SetPosts(posts []model.Post) {
	s.mu.Lock()
	s.posts = posts
	s.mu.Unlock()
}

// Posts returns the current posts.
func (s *Server) Posts() []model.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.posts
}

// ListenAndServe serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpSrv := &http.Server{Addr: addr, Handler: s.router}
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Server starting", zap.String("addr", addr))
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("Server shutting down")
		if err := httpSrv.Shutdown(context.Background()); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) handlePage(route func(*http.Request) site.Route) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rt := route(r)
		var buf bytes.Buffer
		err := s.renderer.Render(&buf, rt, s.Posts())
		switch {
		case errors.Is(err, content.ErrNotFound), errors.Is(err, blog.ErrPageOutOfRange):
			s.notFound(w, r)
			return
		case err != nil:
			s.logger.Error("Render failed", zap.String("path", r.URL.Path), zap.Error(err))
			http.Error(w, "Render error", http.StatusInternalServerError)
			return
		}
		if rt.Kind == site.KindFeed {
			w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
		} else {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
		}
		_, _ = buf.WriteTo(w)
	}
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := s.renderer.NotFound(&buf, r.URL.Path); err != nil {
		s.logger.Error("Render not-found page failed", zap.Error(err))
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_, _ = buf.WriteTo(w)
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("Request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.String("requestID", middleware.GetReqID(r.Context())))
	})
}
