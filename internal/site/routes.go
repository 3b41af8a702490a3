package site

import (
	"fmt"

	"github.com/Bitlatte/portfolio/internal/model"
)

// Kind says which page template a route uses.
type Kind string

const (
	KindHome     Kind = "home"
	KindAbout    Kind = "about"
	KindContact  Kind = "contact"
	KindTalks    Kind = "talks"
	KindTalk     Kind = "talk"
	KindProjects Kind = "projects"
	KindProject  Kind = "project"
	KindBlog     Kind = "blog"
	KindPost     Kind = "post"
	KindFeed     Kind = "feed"
)

// Route is one statically generated page.
type Route struct {
	Path string `yaml:"path"`
	Kind Kind   `yaml:"kind"`
	Slug string `yaml:"slug,omitempty"`
	Page int    `yaml:"page,omitempty"`
}

const (
	AboutPath   = "/about/"
	ContactPath = "/contact/"
)

func TalkPath(slug string) string    { return "/talks/" + slug + "/" }
func ProjectPath(slug string) string { return "/projects/" + slug + "/" }
func PostPath(slug string) string    { return "/blog/" + slug + "/" }

// BlogPagePath is the listing page n, counted from 1.
func BlogPagePath(n int) string {
	if n <= 1 {
		return "/blog/"
	}
	return fmt.Sprintf("/blog/page/%d/", n)
}

// BlogPages is the number of listing pages for total posts. An empty blog
// still has one (empty) page.
func BlogPages(total int) int {
	if total <= 0 {
		return 1
	}
	return (total + PostsPerPage - 1) / PostsPerPage
}

// Routes enumerates every page of the site. Talk and project routes
// follow the catalog order.
func (s *Site) Routes(posts []model.Post) []Route {
	routes := []Route{
		{Path: "/", Kind: KindHome},
		{Path: AboutPath, Kind: KindAbout},
		{Path: ContactPath, Kind: KindContact},
		{Path: "/talks/", Kind: KindTalks},
	}
	for _, slug := range s.Talks.Slugs() {
		routes = append(routes, Route{Path: TalkPath(slug), Kind: KindTalk, Slug: slug})
	}
	routes = append(routes, Route{Path: "/projects/", Kind: KindProjects})
	for _, slug := range s.Projects.Slugs() {
		routes = append(routes, Route{Path: ProjectPath(slug), Kind: KindProject, Slug: slug})
	}
	for n := 1; n <= BlogPages(len(posts)); n++ {
		routes = append(routes, Route{Path: BlogPagePath(n), Kind: KindBlog, Page: n})
	}
	for _, p := range posts {
		routes = append(routes, Route{Path: PostPath(p.Slug), Kind: KindPost, Slug: p.Slug})
	}
	return append(routes, Route{Path: "/feed.xml", Kind: KindFeed})
}

// CheckRoutes resolves every talk and project route. A failure means
// enumeration and resolution disagree.
func (s *Site) CheckRoutes(routes []Route) error {
	for _, r := range routes {
		var err error
		switch r.Kind {
		case KindTalk:
			_, err = s.Talks.Resolve(r.Slug)
		case KindProject:
			_, err = s.Projects.Resolve(r.Slug)
		}
		if err != nil {
			return fmt.Errorf("route %s: %w", r.Path, err)
		}
	}
	return nil
}
