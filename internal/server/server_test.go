package server

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/Bitlatte/portfolio/internal/config"
	"github.com/Bitlatte/portfolio/internal/model"
	"github.com/Bitlatte/portfolio/internal/site"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newServer(t *testing.T, posts []model.Post) (*Server, *site.Site) {
	t.Helper()
	s, err := site.Default()
	require.NoError(t, err)
	cfg := config.Defaults()
	cfg.StaticDir = t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(cfg.StaticDir, "robots.txt"), []byte("User-agent: *"), 0o644))
	srv, err := New(s, cfg, posts, zap.NewNop())
	require.NoError(t, err)
	return srv, s
}

func get(t *testing.T, srv *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestEveryEnumeratedRouteServes(t *testing.T) {
	posts := []model.Post{{Title: "Hi", Slug: "hi", Date: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)}}
	srv, s := newServer(t, posts)
	for _, route := range s.Routes(posts) {
		rec := get(t, srv, route.Path)
		assert.Equal(t, http.StatusOK, rec.Code, route.Path)
	}
}

func TestTalkDetail(t *testing.T) {
	srv, _ := newServer(t, nil)
	rec := get(t, srv, "/talks/why-soft-skills-are-important-in-your-career")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "Why soft skills are important in your career ?")
}

func TestUnknownSlugs404(t *testing.T) {
	srv, _ := newServer(t, nil)
	for _, path := range []string{
		"/talks/does-not-exist",
		"/projects/does-not-exist/",
		"/blog/nothing-here",
		"/blog/page/1",
		"/blog/page/9",
		"/blog/page/abc",
		"/blog/page/+2",
		"/what",
	} {
		rec := get(t, srv, path)
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
		assert.Contains(t, rec.Body.String(), "404", path)
	}
}

func TestBlogPage_CanonicalNumberOnly(t *testing.T) {
	posts := make([]model.Post, site.PostsPerPage+1)
	for i := range posts {
		posts[i] = model.Post{Title: "P", Slug: fmt.Sprintf("p-%d", i)}
	}
	srv, _ := newServer(t, posts)
	assert.Equal(t, http.StatusOK, get(t, srv, "/blog/page/2").Code)
	assert.Equal(t, http.StatusNotFound, get(t, srv, "/blog/page/02").Code)
	assert.Equal(t, http.StatusNotFound, get(t, srv, "/blog/page/002/").Code)
}

func TestBlogPageNumber(t *testing.T) {
	assert.Equal(t, 2, blogPageNumber("2"))
	assert.Equal(t, 12, blogPageNumber("12"))
	for _, raw := range []string{"1", "0", "-3", "02", "+2", "x", ""} {
		assert.Equal(t, -1, blogPageNumber(raw), raw)
	}
}

func TestAboutAndContactPages(t *testing.T) {
	srv, _ := newServer(t, nil)

	about := get(t, srv, "/about/")
	require.Equal(t, http.StatusOK, about.Code)
	assert.Contains(t, about.Body.String(), ">Spring Boot</span>")

	home := get(t, srv, "/")
	require.Equal(t, http.StatusOK, home.Code)
	assert.Contains(t, home.Body.String(), `href="/about/"`)
	assert.Contains(t, home.Body.String(), `href="/contact/"`)

	contactPage := get(t, srv, "/contact")
	require.Equal(t, http.StatusOK, contactPage.Code)
	assert.Contains(t, contactPage.Body.String(), "https://calendly.com/miliariadnane")
	assert.Contains(t, contactPage.Body.String(), "https://github.com/miliariadnane")
}

func TestFeedContentType(t *testing.T) {
	srv, _ := newServer(t, nil)
	rec := get(t, srv, "/feed.xml")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/rss+xml")
	f, err := gofeed.NewParser().ParseString(rec.Body.String())
	require.NoError(t, err)
	assert.Len(t, f.Items, 3)
}

func TestStatic(t *testing.T) {
	srv, _ := newServer(t, nil)
	rec := get(t, srv, "/static/robots.txt")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "User-agent: *", rec.Body.String())
}

func TestSetPosts(t *testing.T) {
	srv, _ := newServer(t, nil)
	assert.Equal(t, http.StatusNotFound, get(t, srv, "/blog/fresh").Code)

	srv.SetPosts([]model.Post{{Title: "Fresh", Slug: "fresh"}})
	assert.Equal(t, http.StatusOK, get(t, srv, "/blog/fresh").Code)
}

func TestConcurrentRequests(t *testing.T) {
	srv, s := newServer(t, nil)
	slugs := s.Talks.Slugs()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%5 == 0 {
				srv.SetPosts([]model.Post{{Title: "P", Slug: "p"}})
			}
			rec := get(t, srv, site.TalkPath(slugs[i%len(slugs)]))
			assert.Equal(t, http.StatusOK, rec.Code)
		}(i)
	}
	wg.Wait()
}

func TestWatchPosts_Reloads(t *testing.T) {
	srv, _ := newServer(t, nil)
	contentDir := t.TempDir()
	blogDir := filepath.Join(contentDir, "blog")
	require.NoError(t, os.MkdirAll(blogDir, 0o755))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.WatchPosts(ctx, contentDir, 10*time.Millisecond) }()
	t.Cleanup(func() {
		cancel()
		require.NoError(t, <-done)
	})

	// Give the watcher a moment to register before writing.
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(blogDir, "new-post.md"),
		[]byte("---\ntitle: New Post\ndate: 2024-06-01\n---\nhello\n"), 0o644))

	require.Eventually(t, func() bool {
		return len(srv.Posts()) == 1
	}, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, http.StatusOK, get(t, srv, "/blog/new-post").Code)
}

func TestWatchPosts_MissingDir(t *testing.T) {
	srv, _ := newServer(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, srv.WatchPosts(ctx, t.TempDir(), time.Millisecond))
}
