package render

import (
	"github.com/Bitlatte/portfolio/internal/blog"
	"github.com/Bitlatte/portfolio/internal/contact"
	"github.com/Bitlatte/portfolio/internal/content"
	"github.com/Bitlatte/portfolio/internal/model"
	"github.com/Bitlatte/portfolio/internal/palette"
	"github.com/Bitlatte/portfolio/internal/site"
)

// LatestPostCount is how many posts the home page lists.
const LatestPostCount = 4

type HomeView struct {
	Author       model.Author
	AboutColor   palette.Color
	ContactColor palette.Color
	Posts        []model.Post
	Contacts     []contact.Link
}

type AboutView struct {
	Author    model.Author
	WorkStack []content.Badge
}

type ContactView struct {
	Handle   string
	Site     string
	Calendly string
	Links    []contact.Link
}

type TalkCard struct {
	Title       string
	Path        string
	Date        string
	LongDate    string
	Description string
	Banner      string
	Badges      []content.Badge
}

type TalkView struct {
	TalkCard
	Slides    string
	Recorded  bool
	WatchTalk string
	Demos     []content.DemoLink
}

type ProjectCard struct {
	Title            string
	Path             string
	Banner           string
	ShortDescription string
	Badges           []content.Badge
}

type ProjectView struct {
	ProjectCard
	Description string
	Website     string
	Repository  string
	Deployment  content.Deployment
	Size        content.Dimensions
	Screenshots []string
	SubProjects []content.SubProject
}

type BlogView struct {
	blog.Page
}

type NotFoundView struct {
	Path string
}

func talkCard(t content.Talk) (TalkCard, error) {
	long, err := content.FormatLongDate(t.Date)
	if err != nil {
		return TalkCard{}, err
	}
	return TalkCard{
		Title:       t.Title,
		Path:        site.TalkPath(t.Slug),
		Date:        t.Date,
		LongDate:    long,
		Description: t.Description,
		Banner:      t.Banner,
		Badges:      content.TalkBadges(t.Tags),
	}, nil
}

func talkView(t content.Talk) (TalkView, error) {
	card, err := talkCard(t)
	if err != nil {
		return TalkView{}, err
	}
	return TalkView{
		TalkCard:  card,
		Slides:    t.Slides,
		Recorded:  t.HasRecording(),
		WatchTalk: t.WatchTalk,
		Demos:     t.Demos(),
	}, nil
}

func projectCard(p content.Project) ProjectCard {
	short := p.ShortDescription
	if short == "" {
		short = p.Description
	}
	return ProjectCard{
		Title:            p.Title,
		Path:             site.ProjectPath(p.Slug),
		Banner:           p.Banner,
		ShortDescription: short,
		Badges:           content.ProjectBadges(p.Stack),
	}
}

func projectView(p content.Project) ProjectView {
	return ProjectView{
		ProjectCard: projectCard(p),
		Description: p.Description,
		Website:     p.Website,
		Repository:  p.Repository,
		Deployment:  p.Deployment,
		Size:        p.Size(),
		Screenshots: p.Screenshots,
		SubProjects: p.SubProjects,
	}
}
