// Package render turns site data into HTML pages.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"hash/fnv"
	"html/template"
	"io"
	"time"

	"github.com/Bitlatte/portfolio/internal/blog"
	"github.com/Bitlatte/portfolio/internal/config"
	"github.com/Bitlatte/portfolio/internal/content"
	"github.com/Bitlatte/portfolio/internal/feed"
	"github.com/Bitlatte/portfolio/internal/model"
	"github.com/Bitlatte/portfolio/internal/palette"
	"github.com/Bitlatte/portfolio/internal/site"
	"github.com/Bitlatte/portfolio/internal/stack"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTemplates = map[site.Kind]string{
	site.KindHome:     "home.html",
	site.KindAbout:    "about.html",
	site.KindContact:  "contact.html",
	site.KindTalks:    "talks.html",
	site.KindTalk:     "talk.html",
	site.KindProjects: "projects.html",
	site.KindProject:  "project.html",
	site.KindBlog:     "blog.html",
	site.KindPost:     "post.html",
}

const notFoundTemplate = "notfound.html"

var funcs = template.FuncMap{
	"longDate":    content.LongDate,
	"isoDate":     func(t time.Time) string { return t.Format(content.DateLayout) },
	"aboutPath":   func() string { return site.AboutPath },
	"contactPath": func() string { return site.ContactPath },
	"blogPage":    site.BlogPagePath,
	"postPath":    site.PostPath,
	"projectPath": site.ProjectPath,
	"talkPath":    site.TalkPath,
}

// Renderer renders every page kind. It holds no mutable state.
type Renderer struct {
	site  *site.Site
	cfg   config.Config
	pages map[site.Kind]*template.Template
	miss  *template.Template
}

// New parses the embedded templates.
func New(s *site.Site, cfg config.Config) (*Renderer, error) {
	base, err := template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	r := &Renderer{site: s, cfg: cfg, pages: make(map[site.Kind]*template.Template, len(pageTemplates))}
	for kind, name := range pageTemplates {
		t, err := parsePage(base, name)
		if err != nil {
			return nil, err
		}
		r.pages[kind] = t
	}
	if r.miss, err = parsePage(base, notFoundTemplate); err != nil {
		return nil, err
	}
	return r, nil
}

func parsePage(base *template.Template, name string) (*template.Template, error) {
	clone, err := base.Clone()
	if err != nil {
		return nil, fmt.Errorf("clone layout for %s: %w", name, err)
	}
	t, err := clone.ParseFS(templatesFS, "templates/"+name)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	return t, nil
}

// Render writes the page for route. Unknown talk or project slugs return
// an error wrapping content.ErrNotFound and an out of range blog page
// returns blog.ErrPageOutOfRange; nothing is written in either case.
func (r *Renderer) Render(w io.Writer, route site.Route, posts []model.Post) error {
	if route.Kind == site.KindFeed {
		out, err := feed.Build(r.site, posts, feed.Options{
			Title:       r.cfg.SiteTitle,
			Description: r.cfg.Description,
			BaseURL:     r.cfg.BaseURL,
		})
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	}

	data, err := r.pageData(route, posts)
	if err != nil {
		return err
	}
	t, ok := r.pages[route.Kind]
	if !ok {
		return fmt.Errorf("no template for route kind %q", route.Kind)
	}
	return execute(w, t, data)
}

// NotFound writes the not-found page for path.
func (r *Renderer) NotFound(w io.Writer, path string) error {
	return execute(w, r.miss, r.envelope("Not Found", path, NotFoundView{Path: path}))
}

func execute(w io.Writer, t *template.Template, data model.PageData) error {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("execute template for %s: %w", data.Path, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

func (r *Renderer) envelope(title, path string, body any) model.PageData {
	return model.PageData{
		SiteTitle:   r.cfg.SiteTitle,
		PageTitle:   title,
		Description: r.cfg.Description,
		BaseURL:     r.cfg.BaseURL,
		Path:        path,
		Body:        body,
	}
}

func (r *Renderer) pageData(route site.Route, posts []model.Post) (model.PageData, error) {
	switch route.Kind {
	case site.KindHome:
		about, contactColor := palette.HighlightPair(seed(r.cfg.Author.Shortname))
		return r.envelope(r.cfg.SiteTitle, route.Path, HomeView{
			Author:       r.cfg.Author,
			AboutColor:   about,
			ContactColor: contactColor,
			Posts:        blog.Latest(posts, LatestPostCount),
			Contacts:     r.site.Contact.Enabled(),
		}), nil

	case site.KindAbout:
		return r.envelope("About", route.Path, AboutView{
			Author:    r.cfg.Author,
			WorkStack: content.ProjectBadges(stack.WorkStack()),
		}), nil

	case site.KindContact:
		c := r.site.Contact
		return r.envelope("Contact", route.Path, ContactView{
			Handle:   c.Handle,
			Site:     c.Site,
			Calendly: c.Calendly,
			Links:    c.Enabled(),
		}), nil

	case site.KindTalks:
		var cards []TalkCard
		for _, t := range r.site.Talks.All() {
			card, err := talkCard(t)
			if err != nil {
				return model.PageData{}, err
			}
			cards = append(cards, card)
		}
		return r.envelope("Talks", route.Path, cards), nil

	case site.KindTalk:
		t, err := r.site.Talks.Resolve(route.Slug)
		if err != nil {
			return model.PageData{}, err
		}
		view, err := talkView(t)
		if err != nil {
			return model.PageData{}, err
		}
		data := r.envelope(t.Title, route.Path, view)
		data.Description = t.Description
		data.ImageURL = t.Banner
		return data, nil

	case site.KindProjects:
		var cards []ProjectCard
		for _, p := range r.site.Projects.All() {
			cards = append(cards, projectCard(p))
		}
		return r.envelope("Projects", route.Path, cards), nil

	case site.KindProject:
		p, err := r.site.Projects.Resolve(route.Slug)
		if err != nil {
			return model.PageData{}, err
		}
		data := r.envelope(p.Title, route.Path, projectView(p))
		data.Description = p.Description
		data.ImageURL = p.Banner
		return data, nil

	case site.KindBlog:
		n := route.Page
		if n == 0 {
			n = 1
		}
		page, err := blog.Paginate(posts, n, site.PostsPerPage)
		if err != nil {
			return model.PageData{}, err
		}
		return r.envelope("Blog", route.Path, BlogView{Page: page}), nil

	case site.KindPost:
		for _, p := range posts {
			if p.Slug == route.Slug {
				data := r.envelope(p.Title, route.Path, p)
				if p.Summary != "" {
					data.Description = p.Summary
				}
				return data, nil
			}
		}
		return model.PageData{}, fmt.Errorf("post %q: %w", route.Slug, content.ErrNotFound)
	}
	return model.PageData{}, fmt.Errorf("unknown route kind %q", route.Kind)
}

func seed(s string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return int(h.Sum32() & 0x7fffffff)
}
